// Copyright 2022 Parallel Finance Developer.
// SPDX-License-Identifier: Apache-2.0

// Package evmabi implements the Solidity ABI reader and writer primitives
// used by precompiles to parse calldata and build return data. Values are
// framed as 32 byte big-endian words; dynamic fields are reached through
// offset words relative to the start of the enclosing data area.
package evmabi

import (
	"encoding/binary"
	"fmt"
)

// WordLength is the length in bytes of an ABI word.
const WordLength = 32

// Reader reads ABI encoded data from a buffer, advancing a cursor on
// each read. Offset words are resolved against the start of the
// reader's own buffer, so a sub-reader anchored at a dynamic data area
// resolves nested offsets correctly.
type Reader struct {
	data   []byte
	cursor int
}

// NewReader returns a Reader over data. The buffer is not copied.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Remaining returns the number of bytes left after the cursor.
func (r *Reader) Remaining() int {
	return len(r.data) - r.cursor
}

func (r *Reader) readWord(what string) (word []byte, err error) {
	if r.cursor+WordLength > len(r.data) {
		return nil, fmt.Errorf("%w: reading %s at offset %d of %d byte buffer",
			ErrReadOutOfBounds, what, r.cursor, len(r.data))
	}
	word = r.data[r.cursor : r.cursor+WordLength]
	r.cursor += WordLength
	return word, nil
}

func isZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// ReadUint8 reads one word holding a uint8.
func (r *Reader) ReadUint8() (uint8, error) {
	word, err := r.readWord("uint8")
	if err != nil {
		return 0, err
	}
	if !isZero(word[:WordLength-1]) {
		return 0, fmt.Errorf("%w: word does not fit in uint8", ErrValueOutOfRange)
	}
	return word[WordLength-1], nil
}

// ReadUint32 reads one word holding a uint32.
func (r *Reader) ReadUint32() (uint32, error) {
	word, err := r.readWord("uint32")
	if err != nil {
		return 0, err
	}
	if !isZero(word[:WordLength-4]) {
		return 0, fmt.Errorf("%w: word does not fit in uint32", ErrValueOutOfRange)
	}
	return binary.BigEndian.Uint32(word[WordLength-4:]), nil
}

// ReadUint64 reads one word holding a uint64.
func (r *Reader) ReadUint64() (uint64, error) {
	word, err := r.readWord("uint64")
	if err != nil {
		return 0, err
	}
	if !isZero(word[:WordLength-8]) {
		return 0, fmt.Errorf("%w: word does not fit in uint64", ErrValueOutOfRange)
	}
	return binary.BigEndian.Uint64(word[WordLength-8:]), nil
}

// readPointer reads an offset word and checks it lands inside the buffer.
func (r *Reader) readPointer(what string) (int, error) {
	word, err := r.readWord(what)
	if err != nil {
		return 0, err
	}
	if !isZero(word[:WordLength-8]) {
		return 0, fmt.Errorf("%w: %s offset does not fit in uint64", ErrValueOutOfRange, what)
	}
	offset := binary.BigEndian.Uint64(word[WordLength-8:])
	if offset > uint64(len(r.data)) {
		return 0, fmt.Errorf("%w: %s offset %d past %d byte buffer",
			ErrReadOutOfBounds, what, offset, len(r.data))
	}
	return int(offset), nil
}

// ReadBytes reads one dynamic bytes field: an offset word at the
// cursor pointing at a length word followed by the payload. Only the
// offset word advances the cursor.
func (r *Reader) ReadBytes() ([]byte, error) {
	offset, err := r.readPointer("bytes")
	if err != nil {
		return nil, err
	}

	tail := NewReader(r.data[offset:])
	word, err := tail.readWord("bytes length")
	if err != nil {
		return nil, err
	}
	if !isZero(word[:WordLength-8]) {
		return nil, fmt.Errorf("%w: bytes length does not fit in uint64", ErrValueOutOfRange)
	}
	length := binary.BigEndian.Uint64(word[WordLength-8:])
	if length > uint64(tail.Remaining()) {
		return nil, fmt.Errorf("%w: bytes length %d exceeds %d remaining bytes",
			ErrReadOutOfBounds, length, tail.Remaining())
	}
	return tail.ReadRawBytes(int(length))
}

// ReadBytesSequence reads one dynamic array of dynamic bytes fields:
// an offset word pointing at a count word, followed by per-element
// offset words relative to the start of the element area.
func (r *Reader) ReadBytesSequence() ([][]byte, error) {
	offset, err := r.readPointer("sequence")
	if err != nil {
		return nil, err
	}

	tail := NewReader(r.data[offset:])
	word, err := tail.readWord("sequence length")
	if err != nil {
		return nil, err
	}
	if !isZero(word[:WordLength-8]) {
		return nil, fmt.Errorf("%w: sequence length does not fit in uint64", ErrValueOutOfRange)
	}
	count := binary.BigEndian.Uint64(word[WordLength-8:])
	// each element needs at least its own offset word
	if count > uint64(tail.Remaining())/WordLength {
		return nil, fmt.Errorf("%w: sequence of %d elements exceeds %d remaining bytes",
			ErrReadOutOfBounds, count, tail.Remaining())
	}

	elements := NewReader(tail.data[WordLength:])
	out := make([][]byte, 0, count)
	for i := uint64(0); i < count; i++ {
		element, err := elements.ReadBytes()
		if err != nil {
			return nil, fmt.Errorf("reading sequence element %d: %w", i, err)
		}
		out = append(out, element)
	}
	return out, nil
}

// ReadRawBytes reads exactly n bytes at the cursor, without any framing.
func (r *Reader) ReadRawBytes(n int) ([]byte, error) {
	if n < 0 || r.cursor+n > len(r.data) {
		return nil, fmt.Errorf("%w: reading %d raw bytes at offset %d of %d byte buffer",
			ErrReadOutOfBounds, n, r.cursor, len(r.data))
	}
	b := r.data[r.cursor : r.cursor+n]
	r.cursor += n
	return b, nil
}

// ReadTillEnd consumes and returns everything left after the cursor.
func (r *Reader) ReadTillEnd() []byte {
	b := r.data[r.cursor:]
	r.cursor = len(r.data)
	return b
}
