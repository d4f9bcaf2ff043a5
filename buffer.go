// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package minisdp

import (
	"encoding/binary"
	"fmt"
)

// reader consumes a buffer front to back. Every read is bounds checked
// and fails with ErrPacketTooShort instead of reading past the end.
type reader struct {
	buf []byte
	off int
}

func (r *reader) remaining() int {
	return len(r.buf) - r.off
}

func (r *reader) next(n int, field string) ([]byte, error) {
	if n < 0 || r.remaining() < n {
		return nil, fmt.Errorf("%w: %s needs %d bytes, %d left", ErrPacketTooShort, field, n, r.remaining())
	}
	b := r.buf[r.off : r.off+n]
	r.off += n

	return b, nil
}

func (r *reader) readUint8(field string) (uint8, error) {
	b, err := r.next(1, field)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

func (r *reader) readUint16(field string) (uint16, error) {
	b, err := r.next(2, field)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint16(b), nil
}

func (r *reader) readUint32(field string) (uint32, error) {
	b, err := r.next(4, field)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint32(b), nil
}

func (r *reader) readString16(field string) (string, error) {
	n, err := r.readUint16(field)
	if err != nil {
		return "", err
	}
	b, err := r.next(int(n), field)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

func (r *reader) readString32(field string) (string, error) {
	n, err := r.readUint32(field)
	if err != nil {
		return "", err
	}
	// compare as uint64 so a huge length cannot wrap int on 32-bit
	if uint64(n) > uint64(r.remaining()) {
		return "", fmt.Errorf("%w: %s declares %d bytes, %d left", ErrPacketTooShort, field, n, r.remaining())
	}
	b, err := r.next(int(n), field)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// writer fills a buffer that was sized with MarshalSize beforehand.
type writer struct {
	buf []byte
	off int
}

func (w *writer) writeUint8(v uint8) {
	w.buf[w.off] = v
	w.off++
}

func (w *writer) writeUint16(v uint16) {
	binary.BigEndian.PutUint16(w.buf[w.off:], v)
	w.off += 2
}

func (w *writer) writeUint32(v uint32) {
	binary.BigEndian.PutUint32(w.buf[w.off:], v)
	w.off += 4
}

func (w *writer) writeBytes(b []byte) {
	w.off += copy(w.buf[w.off:], b)
}

func (w *writer) writeString16(s string) {
	w.writeUint16(uint16(len(s))) //nolint:gosec // length checked when the packet is built
	w.off += copy(w.buf[w.off:], s)
}

func (w *writer) writeString32(s string) {
	w.writeUint32(uint32(len(s))) //nolint:gosec // length checked when the packet is built
	w.off += copy(w.buf[w.off:], s)
}

func (w *writer) writeZeros(n int) {
	clear(w.buf[w.off : w.off+n])
	w.off += n
}
