// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// json.go — JSON rendition of the wire form, externally tagged; primarily
// used in tests and when human-readable transport values are preferred.

package sgdata

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
)

// writeBase64 writes one segment as a quoted base64 string, streaming
// whatever write produces straight through the encoder. Zero-runs therefore
// cost no buffer even here.
func writeBase64(out *bytes.Buffer, write func(io.Writer) error) error {
	out.WriteByte('"')
	b64 := base64.NewEncoder(base64.StdEncoding, out)
	if err := write(b64); err != nil {
		return err
	}
	if err := b64.Close(); err != nil {
		return err
	}
	out.WriteByte('"')
	return nil
}

func bufWriter(b []byte) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := w.Write(b)
		return err
	}
}

// MarshalJSON renders the same two envelope shapes as the canonical codec:
// {"bytes":"<base64>"} for a single buffer, {"buffers":["<base64>", ...]}
// for everything else.
func (d Data) MarshalJSON() ([]byte, error) {
	var out bytes.Buffer
	switch d.kind {
	case KindBytes:
		out.WriteString(`{"bytes":`)
		if err := writeBase64(&out, bufWriter(d.buf)); err != nil {
			return nil, err
		}
	case KindBuffers:
		out.WriteString(`{"buffers":[`)
		for i, b := range d.bufs {
			if i > 0 {
				out.WriteByte(',')
			}
			if err := writeBase64(&out, bufWriter(b)); err != nil {
				return nil, err
			}
		}
		out.WriteByte(']')
	case KindList:
		out.WriteString(`{"buffers":[`)
		for i := 0; i < d.list.count; i++ {
			if i > 0 {
				out.WriteByte(',')
			}
			if err := writeBase64(&out, d.list.at(i).writeTo); err != nil {
				return nil, err
			}
		}
		out.WriteByte(']')
	default:
		out.WriteString(`{"buffers":[`)
		for i, e := range d.elems {
			if i > 0 {
				out.WriteByte(',')
			}
			if err := writeBase64(&out, e.writeTo); err != nil {
				return nil, err
			}
		}
		out.WriteByte(']')
	}
	out.WriteByte('}')
	return out.Bytes(), nil
}

// UnmarshalJSON accepts the two envelope shapes and always produces an owned
// payload, mirroring the canonical codec.
func (d *Data) UnmarshalJSON(data []byte) error {
	var env map[string]json.RawMessage
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	if len(env) != 1 {
		return fmt.Errorf("%w: envelope of %d keys", ErrEnvelope, len(env))
	}
	for key, raw := range env {
		switch key {
		case "buffers":
			var bufs [][]byte
			if err := json.Unmarshal(raw, &bufs); err != nil {
				return err
			}
			*d = FromBuffers(bufs)
		case "bytes":
			var buf []byte
			if err := json.Unmarshal(raw, &buf); err != nil {
				return err
			}
			*d = FromBytes(buf)
		default:
			return fmt.Errorf("%w %q", ErrWireTag, key)
		}
	}
	return nil
}

// MarshalJSON renders the bare buffer sequence: a JSON array of base64
// strings, exactly what the List contributes inside a Data envelope.
func (l List) MarshalJSON() ([]byte, error) {
	var out bytes.Buffer
	out.WriteByte('[')
	for i := 0; i < l.count; i++ {
		if i > 0 {
			out.WriteByte(',')
		}
		if err := writeBase64(&out, l.at(i).writeTo); err != nil {
			return nil, err
		}
	}
	out.WriteByte(']')
	return out.Bytes(), nil
}

// UnmarshalJSON always fails with ErrDecodeList.
func (*List) UnmarshalJSON([]byte) error { return ErrDecodeList }

// MarshalJSON renders the element as one base64 string.
func (e Element) MarshalJSON() ([]byte, error) {
	var out bytes.Buffer
	if err := writeBase64(&out, e.writeTo); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// UnmarshalJSON always fails with ErrDecodeElement.
func (*Element) UnmarshalJSON([]byte) error { return ErrDecodeElement }
