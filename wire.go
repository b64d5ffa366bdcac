// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// wire.go — canonical MessagePack wire form: every payload encodes as a
// two-item [tag, payload] envelope, and decoding always produces an owned
// payload regardless of the kind that was encoded.

package sgdata

import (
	"bytes"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// Wire tags. KindBuffers, KindList and KindElements all encode under
// tagBuffers: their payload is a sequence of buffers either way, and the
// receiving side cannot reconstruct borrowed memory, so the distinction
// would be dead weight on the wire. Only the single-buffer shape gets its
// own tag.
const (
	tagBuffers = 1
	tagBytes   = 2
)

// zeroBlock backs zero-run streaming. Zero-runs are encoded by repeatedly
// writing slices of this block, so a run of any length costs no allocation.
var zeroBlock [4096]byte

func writeZeros(w io.Writer, n uint64) error {
	for n > 0 {
		chunk := uint64(len(zeroBlock))
		if n < chunk {
			chunk = n
		}
		if _, err := w.Write(zeroBlock[:chunk]); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}

// Marshal encodes d into its canonical wire form.
func Marshal(d Data) ([]byte, error) {
	return msgpack.Marshal(d)
}

// Unmarshal decodes canonical wire bytes into an owned payload: a buffer
// sequence becomes KindBuffers and a single buffer becomes KindBytes, no
// matter which kind produced the bytes.
func Unmarshal(b []byte) (Data, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(b))

	// The decoder consumes a top-level nil and zeroes the target before
	// DecodeMsgpack ever runs, which would turn a bare nil into the zero
	// Data. Reject it here, where it is still visible.
	code, err := dec.PeekCode()
	if err != nil {
		return Data{}, err
	}
	if code == msgpcode.Nil {
		return Data{}, fmt.Errorf("%w: nil payload", ErrEnvelope)
	}

	var d Data
	if err := dec.Decode(&d); err != nil {
		return Data{}, err
	}
	return d, nil
}

// encodeBuf writes one buffer as a msgpack bin value without copying it
// through the encoder.
func encodeBuf(enc *msgpack.Encoder, b []byte) error {
	if err := enc.EncodeBytesLen(len(b)); err != nil {
		return err
	}
	_, err := enc.Writer().Write(b)
	return err
}

// EncodeMsgpack implements msgpack.CustomEncoder. Region and list memory is
// read in place; zero-runs are streamed from zeroBlock.
func (d Data) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	switch d.kind {
	case KindBytes:
		if err := enc.EncodeUint(tagBytes); err != nil {
			return err
		}
		return encodeBuf(enc, d.buf)
	case KindBuffers:
		if err := enc.EncodeUint(tagBuffers); err != nil {
			return err
		}
		if err := enc.EncodeArrayLen(len(d.bufs)); err != nil {
			return err
		}
		for _, b := range d.bufs {
			if err := encodeBuf(enc, b); err != nil {
				return err
			}
		}
		return nil
	case KindList:
		if err := enc.EncodeUint(tagBuffers); err != nil {
			return err
		}
		return d.list.EncodeMsgpack(enc)
	default:
		if err := enc.EncodeUint(tagBuffers); err != nil {
			return err
		}
		if err := enc.EncodeArrayLen(len(d.elems)); err != nil {
			return err
		}
		for _, e := range d.elems {
			if err := e.EncodeMsgpack(enc); err != nil {
				return err
			}
		}
		return nil
	}
}

// DecodeMsgpack implements msgpack.CustomDecoder. Every buffer is a fresh
// allocation owned by the result.
func (d *Data) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return fmt.Errorf("%w: envelope of %d items", ErrEnvelope, n)
	}
	tag, err := dec.DecodeUint64()
	if err != nil {
		return err
	}
	switch tag {
	case tagBuffers:
		n, err := dec.DecodeArrayLen()
		if err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("%w: nil buffer sequence", ErrEnvelope)
		}
		// Cap the initial allocation; a corrupt header can claim any count.
		bufs := make([][]byte, 0, min(n, 1024))
		for i := 0; i < n; i++ {
			b, err := dec.DecodeBytes()
			if err != nil {
				return err
			}
			bufs = append(bufs, b)
		}
		*d = FromBuffers(bufs)
		return nil
	case tagBytes:
		b, err := dec.DecodeBytes()
		if err != nil {
			return err
		}
		*d = FromBytes(b)
		return nil
	default:
		return fmt.Errorf("%w %d", ErrWireTag, tag)
	}
}

// EncodeMsgpack implements msgpack.CustomEncoder. An Element encodes as one
// bare bin value, the exact form it takes inside a Data envelope.
func (e Element) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeBytesLen(int(e.size)); err != nil {
		return err
	}
	return e.writeTo(enc.Writer())
}

// DecodeMsgpack always fails with ErrDecodeElement: wire data holds content,
// not the addresses an Element would need.
func (*Element) DecodeMsgpack(*msgpack.Decoder) error {
	return ErrDecodeElement
}

// EncodeMsgpack implements msgpack.CustomEncoder. A List encodes as a bare
// buffer sequence, indistinguishable from the equivalent owned buffers.
func (l List) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(l.count); err != nil {
		return err
	}
	for i := 0; i < l.count; i++ {
		if err := l.at(i).EncodeMsgpack(enc); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack always fails with ErrDecodeList: decoding materializes owned
// buffers, never a caller-owned descriptor array.
func (*List) DecodeMsgpack(*msgpack.Decoder) error {
	return ErrDecodeList
}
