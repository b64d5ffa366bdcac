package sgdata

import (
	"bytes"
	"fmt"
	"iter"
	"slices"
)

// ────────────────────────────────────────────────────────────────────────────
// Kind
// ────────────────────────────────────────────────────────────────────────────

// Kind identifies which representation a Data value carries.
type Kind uint8

const (
	// KindBytes is a single owned contiguous buffer. The zero Data is an
	// empty KindBytes payload.
	KindBytes Kind = iota
	// KindBuffers is an owned list of buffers.
	KindBuffers
	// KindList is a caller-owned vectored-I/O descriptor array.
	KindList
	// KindElements is a list of region and zero-run elements.
	KindElements
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindBytes:
		return "bytes"
	case KindBuffers:
		return "buffers"
	case KindList:
		return "list"
	case KindElements:
		return "elements"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ────────────────────────────────────────────────────────────────────────────
// Data
// ────────────────────────────────────────────────────────────────────────────

// Data is a scatter-gather byte payload in one of four representations:
// a single owned buffer (KindBytes), an owned list of buffers (KindBuffers),
// a caller-owned descriptor array (KindList), or a list of region and
// zero-run elements (KindElements).
//
// Owned kinds hold ordinary Go slices with ordinary lifetimes. For KindList
// and KindElements the caller guarantees every referenced byte range stays
// live and unchanged while the Data is in use; the library never copies or
// frees that memory.
//
// The zero Data is an empty single buffer, ready to use.
type Data struct {
	kind  Kind
	buf   []byte
	bufs  [][]byte
	list  List
	elems []Element
}

// ────────────────────────────────────────────────────────────────────────────
// Constructors
// ────────────────────────────────────────────────────────────────────────────

// FromBytes wraps one contiguous buffer. The Data takes ownership of b.
func FromBytes(b []byte) Data {
	return Data{kind: KindBytes, buf: b}
}

// FromBuffers wraps a list of buffers. The Data takes ownership of bufs and
// of every buffer in it.
func FromBuffers(bufs [][]byte) Data {
	return Data{kind: KindBuffers, bufs: bufs}
}

// FromList wraps a caller-owned descriptor array. See List for the lifetime
// contract.
func FromList(l List) Data {
	return Data{kind: KindList, list: l}
}

// FromElements builds an element payload. Region elements carry the same
// caller-owned lifetime contract as List.
func FromElements(elems ...Element) Data {
	return Data{kind: KindElements, elems: elems}
}

// Collect drains an element sequence into an element payload. It is the
// iterator-shaped counterpart of FromElements.
func Collect(seq iter.Seq[Element]) Data {
	return Data{kind: KindElements, elems: slices.Collect(seq)}
}

// ────────────────────────────────────────────────────────────────────────────
// Accessors
// ────────────────────────────────────────────────────────────────────────────

// Kind reports which representation d carries.
func (d Data) Kind() Kind { return d.kind }

// Bytes returns the single buffer and true when d is KindBytes.
func (d Data) Bytes() ([]byte, bool) {
	return d.buf, d.kind == KindBytes
}

// Buffers returns the buffer list and true when d is KindBuffers.
func (d Data) Buffers() ([][]byte, bool) {
	return d.bufs, d.kind == KindBuffers
}

// List returns the descriptor list and true when d is KindList.
func (d Data) List() (List, bool) {
	return d.list, d.kind == KindList
}

// Elements returns the element list and true when d is KindElements.
func (d Data) Elements() ([]Element, bool) {
	return d.elems, d.kind == KindElements
}

// Size returns the total payload length in bytes.
func (d Data) Size() uint64 {
	switch d.kind {
	case KindBytes:
		return uint64(len(d.buf))
	case KindBuffers:
		var n uint64
		for _, b := range d.bufs {
			n += uint64(len(b))
		}
		return n
	case KindList:
		return d.list.Size()
	default:
		var n uint64
		for _, e := range d.elems {
			n += e.size
		}
		return n
	}
}

// Segments returns the number of buffers, descriptors or elements the
// payload is split into. A KindBytes payload is always one segment.
func (d Data) Segments() int {
	switch d.kind {
	case KindBytes:
		return 1
	case KindBuffers:
		return len(d.bufs)
	case KindList:
		return d.list.Count()
	default:
		return len(d.elems)
	}
}

// ────────────────────────────────────────────────────────────────────────────
// Flatten
// ────────────────────────────────────────────────────────────────────────────

// Flatten exposes an owned payload as a list of buffers without copying:
// KindBytes yields a one-buffer list and KindBuffers yields its buffers
// directly. The returned slices alias the payload's memory.
//
// The caller-owned kinds cannot be flattened. KindList fails with
// ErrFlattenList and KindElements with ErrFlattenElements: handing the
// referenced memory out as ordinary slices would silently drop the lifetime
// contract.
func (d Data) Flatten() ([][]byte, error) {
	switch d.kind {
	case KindBytes:
		return [][]byte{d.buf}, nil
	case KindBuffers:
		return d.bufs, nil
	case KindList:
		return nil, ErrFlattenList
	default:
		return nil, ErrFlattenElements
	}
}

// ────────────────────────────────────────────────────────────────────────────
// Comparison and debug
// ────────────────────────────────────────────────────────────────────────────

// Equal reports whether two payloads have the same kind and the same
// per-kind value: byte content for the owned kinds, (pointer, count)
// identity for descriptor lists, and element-wise identity for element
// payloads. Payloads of different kinds are never equal, even when they
// would serialize to the same wire bytes.
func (d Data) Equal(o Data) bool {
	if d.kind != o.kind {
		return false
	}
	switch d.kind {
	case KindBytes:
		return bytes.Equal(d.buf, o.buf)
	case KindBuffers:
		return slices.EqualFunc(d.bufs, o.bufs, bytes.Equal)
	case KindList:
		return d.list == o.list
	default:
		return slices.Equal(d.elems, o.elems)
	}
}

// String returns a concise debug form naming the kind and the sizes
// involved. Payload bytes are never printed.
func (d Data) String() string {
	switch d.kind {
	case KindBytes:
		return fmt.Sprintf("Bytes(%d)", len(d.buf))
	case KindBuffers:
		return fmt.Sprintf("Buffers(%d, %dB)", len(d.bufs), d.Size())
	case KindList:
		return d.list.String()
	default:
		return fmt.Sprintf("Elements(%d, %dB)", len(d.elems), d.Size())
	}
}
