//go:build unix

package sgdata

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// FromIovec wraps one vectored-I/O descriptor as a region element. The
// memory contract is the caller's, exactly as with Region.
func FromIovec(iov unix.Iovec) Element {
	return Element{kind: elemRegion, base: unsafe.Pointer(iov.Base), size: uint64(iov.Len)}
}

// Iovec converts a region element into a descriptor for readv/writev style
// calls. Zero-run elements have no backing memory and report false.
func (e Element) Iovec() (unix.Iovec, bool) {
	if e.kind != elemRegion {
		return unix.Iovec{}, false
	}
	var iov unix.Iovec
	iov.Base = (*byte)(e.base)
	iov.SetLen(int(e.size))
	return iov, true
}

// NewListFromIovecs wraps a descriptor slice as a List. The slice is the
// caller-owned array: it must stay live, unmoved and unchanged while the
// List is in use.
func NewListFromIovecs(iovs []unix.Iovec) List {
	if len(iovs) == 0 {
		return List{}
	}
	return List{iov: unsafe.Pointer(&iovs[0]), count: len(iovs)}
}
