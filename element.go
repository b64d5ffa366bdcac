// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// element.go — the Element segment type: either a virtual run of zero bytes
// with no backing memory, or a non-owning reference to externally managed
// bytes, streamed without copying by the wire and digest paths.

package sgdata

import (
	"fmt"
	"io"
	"unsafe"
)

// elementKind discriminates the two Element variants.
type elementKind uint8

const (
	elemZero elementKind = iota
	elemRegion
)

// Element is one logical segment of a scatter-gather payload: a zero-run of
// N bytes, or a (pointer, length) region of memory the library does not own.
//
// Element is a comparable value type. Two zero-runs are equal iff their
// sizes match; two regions are equal iff base pointer and size both match
// (pointer identity, not content); a zero-run never equals a region, even
// when the region's bytes happen to be all zero.
type Element struct {
	kind elementKind
	base unsafe.Pointer // region base; nil for zero-runs
	size uint64
}

// Zero returns an Element representing size zero bytes. No memory backs the
// run, at construction or when it is serialized: the bytes are synthesized
// on the fly.
func Zero(size uint64) Element {
	return Element{kind: elemZero, size: size}
}

// Region returns an Element referencing size bytes of externally managed
// memory starting at base. The referenced bytes must stay live and unchanged
// for as long as any operation runs against the Element; the library never
// checks. Memory on the Go heap stays reachable through the stored pointer,
// memory allocated elsewhere remains entirely the caller's obligation.
func Region(base unsafe.Pointer, size uint64) Element {
	return Element{kind: elemRegion, base: base, size: size}
}

// IsZero reports whether e is a zero-run.
func (e Element) IsZero() bool { return e.kind == elemZero }

// Size returns the logical length of the segment in bytes.
func (e Element) Size() uint64 { return e.size }

// view returns a no-copy byte window over a region element. Zero-runs have
// no backing memory and must go through writeTo instead.
func (e Element) view() []byte {
	if e.size == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(e.base), e.size)
}

// writeTo streams the segment's bytes to w: region bytes through the no-copy
// view, zero-runs in chunks of the shared zero block. It never allocates a
// buffer sized to the segment.
func (e Element) writeTo(w io.Writer) error {
	if e.kind == elemZero {
		return writeZeros(w, e.size)
	}
	_, err := w.Write(e.view())
	return err
}

// String returns a concise debug form, e.g. "Zero(5)" or "Region(0xc0000140a0, 5)".
func (e Element) String() string {
	if e.kind == elemZero {
		return fmt.Sprintf("Zero(%d)", e.size)
	}
	return fmt.Sprintf("Region(%p, %d)", e.base, e.size)
}
