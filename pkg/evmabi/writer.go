// Copyright 2022 Parallel Finance Developer.
// SPDX-License-Identifier: Apache-2.0

package evmabi

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
)

// pointer is a head word whose value is only known once every tail
// position is fixed at build time.
type pointer struct {
	headOffset int
	tail       []byte
}

// Writer builds ABI encoded data using head and tail areas: static
// values are written inline, dynamic values leave an offset word in the
// head and append their payload to the tail on Build.
type Writer struct {
	head     []byte
	pointers []pointer
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

func uintWord(v uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	return common.LeftPadBytes(buf, WordLength)
}

// WriteUint8 writes one word holding a uint8.
func (w *Writer) WriteUint8(v uint8) {
	w.head = append(w.head, uintWord(uint64(v))...)
}

// WriteUint32 writes one word holding a uint32.
func (w *Writer) WriteUint32(v uint32) {
	w.head = append(w.head, uintWord(uint64(v))...)
}

// WriteUint64 writes one word holding a uint64.
func (w *Writer) WriteUint64(v uint64) {
	w.head = append(w.head, uintWord(v)...)
}

func (w *Writer) writePointer(tail []byte) {
	w.pointers = append(w.pointers, pointer{headOffset: len(w.head), tail: tail})
	w.head = append(w.head, make([]byte, WordLength)...)
}

func paddedLength(n int) int {
	return (n + WordLength - 1) / WordLength * WordLength
}

// WriteBytes writes one dynamic bytes field: a length word followed by
// the right-padded payload, reached through an offset word in the head.
func (w *Writer) WriteBytes(b []byte) {
	tail := uintWord(uint64(len(b)))
	tail = append(tail, common.RightPadBytes(b, paddedLength(len(b)))...)
	w.writePointer(tail)
}

// WriteBytesSequence writes one dynamic array of dynamic bytes fields.
// Element offsets are resolved relative to the start of the element
// area, immediately after the count word.
func (w *Writer) WriteBytesSequence(items [][]byte) {
	sub := NewWriter()
	for _, item := range items {
		sub.WriteBytes(item)
	}
	tail := uintWord(uint64(len(items)))
	tail = append(tail, sub.Build()...)
	w.writePointer(tail)
}

// Build resolves every offset word against the final tail positions and
// returns the encoded buffer. The Writer can keep being written to and
// built again.
func (w *Writer) Build() []byte {
	out := make([]byte, len(w.head))
	copy(out, w.head)
	for _, p := range w.pointers {
		binary.BigEndian.PutUint64(out[p.headOffset+WordLength-8:p.headOffset+WordLength], uint64(len(out)))
		out = append(out, p.tail...)
	}
	return out
}
