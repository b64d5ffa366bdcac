// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// digest.go — content digesting over payload bytes, independent of the
// representation the bytes live in.

package sgdata

import "github.com/opencontainers/go-digest"

// Digest returns the canonical digest of the payload content, read in
// place. Two payloads with identical bytes share a digest even when their
// kinds differ, so a caller-owned payload can be fingerprinted before
// transport and checked against the owned result after decoding.
func (d Data) Digest() digest.Digest {
	dig := digest.Canonical.Digester()
	h := dig.Hash()
	switch d.kind {
	case KindBytes:
		_, _ = h.Write(d.buf)
	case KindBuffers:
		for _, b := range d.bufs {
			_, _ = h.Write(b)
		}
	case KindList:
		for i := 0; i < d.list.count; i++ {
			_ = d.list.at(i).writeTo(h)
		}
	default:
		for _, e := range d.elems {
			_ = e.writeTo(h)
		}
	}
	return dig.Digest()
}
