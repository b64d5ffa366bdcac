package sgdata

import (
	"fmt"
	"unsafe"
)

// iovecWord is the width of one descriptor field. Platform vectored-I/O
// descriptors are {base void*, len size_t}: two machine words.
const iovecWord = unsafe.Sizeof(uintptr(0))

// List is a caller-owned vectored-I/O descriptor array ("scatter-gather
// list"): iov addresses the first of count {base, len} descriptors. The
// library stores only the pointer and the count; it never copies the
// descriptor array nor takes ownership of the memory each descriptor
// references.
//
// The descriptor array and every referenced byte range must stay live and
// unchanged for the entire lifetime of the List. Violating that is undefined
// behavior, not a reportable error: nothing here can check it.
//
// List values compare with == by (pointer, count) identity.
type List struct {
	iov   unsafe.Pointer
	count int
}

// NewList wraps a caller-owned descriptor array without validating it.
// Negative counts are treated as empty.
func NewList(iov unsafe.Pointer, count int) List {
	if count < 0 {
		count = 0
	}
	return List{iov: iov, count: count}
}

// Count returns the number of descriptors.
func (l List) Count() int { return l.count }

// at returns descriptor i as a region element, read in place from the
// caller's array.
func (l List) at(i int) Element {
	d := unsafe.Add(l.iov, uintptr(i)*2*iovecWord)
	base := *(*unsafe.Pointer)(d)
	size := *(*uintptr)(unsafe.Add(d, iovecWord))
	return Element{kind: elemRegion, base: base, size: uint64(size)}
}

// Size returns the total byte length across all descriptors.
func (l List) Size() uint64 {
	var n uint64
	for i := 0; i < l.count; i++ {
		n += l.at(i).size
	}
	return n
}

// String returns a concise debug form, e.g. "List(0x7f21c4000b60, 5)".
func (l List) String() string {
	return fmt.Sprintf("List(%p, %d)", l.iov, l.count)
}
