// Copyright 2022 Parallel Finance Developer.
// SPDX-License-Identifier: Apache-2.0

package evmabi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func word(tail ...byte) []byte {
	w := make([]byte, WordLength)
	copy(w[WordLength-len(tail):], tail)
	return w
}

func concat(words ...[]byte) (out []byte) {
	for _, w := range words {
		out = append(out, w...)
	}
	return out
}

func TestReaderUints(t *testing.T) {
	t.Parallel()

	data := concat(
		word(0x05),
		word(0xde, 0xad, 0xbe, 0xef),
		word(0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08),
	)
	r := NewReader(data)

	u8, err := r.ReadUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(5), u8)

	u32, err := r.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xdeadbeef), u32)

	u64, err := r.ReadUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0102030405060708), u64)

	assert.Equal(t, 0, r.Remaining())
}

func TestReaderUintOutOfRange(t *testing.T) {
	t.Parallel()

	r := NewReader(word(0x01, 0x00))
	_, err := r.ReadUint8()
	assert.ErrorIs(t, err, ErrValueOutOfRange)

	r = NewReader(word(0x01, 0x00, 0x00, 0x00, 0x00))
	_, err = r.ReadUint32()
	assert.ErrorIs(t, err, ErrValueOutOfRange)
}

func TestReaderShortBuffer(t *testing.T) {
	t.Parallel()

	r := NewReader([]byte{0x01, 0x02})
	_, err := r.ReadUint8()
	assert.ErrorIs(t, err, ErrReadOutOfBounds)

	r = NewReader(nil)
	_, err = r.ReadBytes()
	assert.ErrorIs(t, err, ErrReadOutOfBounds)
}

func TestReaderBytes(t *testing.T) {
	t.Parallel()

	// offset word, then length word and right padded payload
	data := concat(
		word(0x20),
		word(0x03),
		append([]byte{'a', 'b', 'c'}, make([]byte, 29)...),
	)

	b, err := NewReader(data).ReadBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), b)
}

func TestReaderBytesBadOffset(t *testing.T) {
	t.Parallel()

	_, err := NewReader(word(0xff)).ReadBytes()
	assert.ErrorIs(t, err, ErrReadOutOfBounds)
}

func TestReaderBytesBadLength(t *testing.T) {
	t.Parallel()

	// length word claims more bytes than the buffer holds
	data := concat(word(0x20), word(0x40))
	_, err := NewReader(data).ReadBytes()
	assert.ErrorIs(t, err, ErrReadOutOfBounds)
}

func TestReaderBytesSequence(t *testing.T) {
	t.Parallel()

	// offset of the sequence, count, two element offsets relative to
	// the element area, then the two length framed payloads
	data := concat(
		word(0x20),
		word(0x02),
		word(0x40),
		word(0x80),
		word(0x01),
		append([]byte{0xaa}, make([]byte, 31)...),
		word(0x02),
		append([]byte{0xbb, 0xcc}, make([]byte, 30)...),
	)

	items, err := NewReader(data).ReadBytesSequence()
	require.NoError(t, err)
	assert.Equal(t, [][]byte{{0xaa}, {0xbb, 0xcc}}, items)
}

func TestReaderBytesSequenceBadCount(t *testing.T) {
	t.Parallel()

	// count word claims more elements than could possibly fit
	data := concat(word(0x20), word(0xff))
	_, err := NewReader(data).ReadBytesSequence()
	assert.ErrorIs(t, err, ErrReadOutOfBounds)
}

func TestReaderRawBytes(t *testing.T) {
	t.Parallel()

	r := NewReader([]byte{1, 2, 3, 4})

	b, err := r.ReadRawBytes(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)

	_, err = r.ReadRawBytes(2)
	assert.ErrorIs(t, err, ErrReadOutOfBounds)

	assert.Equal(t, []byte{4}, r.ReadTillEnd())
	assert.Empty(t, r.ReadTillEnd())
}
