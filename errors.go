// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// errors.go — sentinel error variables returned by the public sgdata API,
// covering the deliberately unsupported decode/flatten paths and violations
// of the canonical wire envelope.

// Package sgdata provides a zero-copy abstraction over scatter-gather byte
// payloads: a single value type unifying a contiguous buffer, an owned list
// of buffers, a caller-owned vectored-I/O descriptor array, and a list of
// region/zero-run elements behind one canonical wire form.
package sgdata

import "errors"

// Unsupported-operation errors. These mark programming errors, not data
// errors: the operations are intentionally unimplemented because no safe
// implementation exists. Decoding into a List or an Element would require
// fabricating externally-owned memory, and flattening a List or an element
// payload would require copying memory the library does not own.
var (
	ErrDecodeList      = errors.New("sgdata: a scatter-gather list cannot be decoded from wire data")
	ErrDecodeElement   = errors.New("sgdata: an element cannot be decoded from wire data")
	ErrFlattenList     = errors.New("sgdata: a list payload cannot be flattened into owned buffers")
	ErrFlattenElements = errors.New("sgdata: an element payload cannot be flattened into owned buffers")
)

// Wire-format errors
var (
	ErrEnvelope = errors.New("sgdata: malformed wire envelope")
	ErrWireTag  = errors.New("sgdata: unknown wire tag")
)
