// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

// Package wire provides bounds-checked, byte-order-parameterized cursors
// over raw pdu bytes. The byte order is chosen once per message and
// threaded through every read and write; it is never global state.
package wire

import (
	"encoding/binary"
	"errors"
)

// ErrTruncated is returned when fewer bytes remain than a read requires.
// A caller streaming from a transport may retry once more bytes arrived.
var ErrTruncated = errors.New("truncated packet")

// Reader is a position-tracked view over an immutable input buffer.
// The position advances only on successful reads.
type Reader struct {
	data  []byte
	pos   int
	order binary.ByteOrder
}

// NewReader returns a reader over data using the provided byte order.
func NewReader(data []byte, order binary.ByteOrder) *Reader {
	return &Reader{data: data, order: order}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Consumed returns the number of bytes read so far.
func (r *Reader) Consumed() int {
	return r.pos
}

// ReadUint8 reads a single byte.
func (r *Reader) ReadUint8() (uint8, error) {
	if r.Remaining() < 1 {
		return 0, ErrTruncated
	}
	v := r.data[r.pos]
	r.pos++
	return v, nil
}

// ReadUint16 reads two bytes in the reader's byte order.
func (r *Reader) ReadUint16() (uint16, error) {
	if r.Remaining() < 2 {
		return 0, ErrTruncated
	}
	v := r.order.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, nil
}

// ReadUint32 reads four bytes in the reader's byte order.
func (r *Reader) ReadUint32() (uint32, error) {
	if r.Remaining() < 4 {
		return 0, ErrTruncated
	}
	v := r.order.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

// ReadUint64 reads eight bytes in the reader's byte order.
func (r *Reader) ReadUint64() (uint64, error) {
	if r.Remaining() < 8 {
		return 0, ErrTruncated
	}
	v := r.order.Uint64(r.data[r.pos:])
	r.pos += 8
	return v, nil
}

// ReadBytes reads n raw bytes. The returned slice aliases the input buffer.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, ErrTruncated
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// Skip advances the position by n bytes without interpreting them.
func (r *Reader) Skip(n int) error {
	if n < 0 || r.Remaining() < n {
		return ErrTruncated
	}
	r.pos += n
	return nil
}

// Writer is a growable output buffer. Writes cannot fail; encode-time
// invariant violations are the codec's responsibility.
type Writer struct {
	buf   []byte
	order binary.ByteOrder
}

// NewWriter returns an empty writer using the provided byte order.
func NewWriter(order binary.ByteOrder) *Writer {
	return &Writer{order: order}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// WriteUint8 appends a single byte.
func (w *Writer) WriteUint8(v uint8) {
	w.buf = append(w.buf, v)
}

// WriteUint16 appends two bytes in the writer's byte order.
func (w *Writer) WriteUint16(v uint16) {
	var b [2]byte
	w.order.PutUint16(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// WriteUint32 appends four bytes in the writer's byte order.
func (w *Writer) WriteUint32(v uint32) {
	var b [4]byte
	w.order.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// WriteUint64 appends eight bytes in the writer's byte order.
func (w *Writer) WriteUint64(v uint64) {
	var b [8]byte
	w.order.PutUint64(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// WriteBytes appends raw bytes.
func (w *Writer) WriteBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// Pad appends n zero bytes.
func (w *Writer) Pad(n int) {
	for i := 0; i < n; i++ {
		w.buf = append(w.buf, 0)
	}
}
