// Copyright 2022 Parallel Finance Developer.
// SPDX-License-Identifier: Apache-2.0

package xcm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parallel-finance/precompile-utils/pkg/evmabi"
)

func TestJunctionsRoundTripAllLengths(t *testing.T) {
	t.Parallel()

	for length := 0; length <= MaxJunctions; length++ {
		var junctions Junctions
		for i := 0; i < length; i++ {
			require.NoError(t, junctions.Push(Parachain(1000+i)))
		}

		w := evmabi.NewWriter()
		require.NoError(t, EncodeJunctions(w, junctions))

		decoded, err := DecodeJunctions(evmabi.NewReader(w.Build()))
		require.NoError(t, err)
		require.Len(t, decoded, length)
		assert.Equal(t, junctions, decoded)
	}
}

func TestJunctionsOrderPreserved(t *testing.T) {
	t.Parallel()

	junctions, err := NewJunctions(
		Parachain(2012),
		PalletInstance(50),
		GeneralKey{0xaa},
		OnlyChild{},
	)
	require.NoError(t, err)

	w := evmabi.NewWriter()
	require.NoError(t, EncodeJunctions(w, junctions))

	decoded, err := DecodeJunctions(evmabi.NewReader(w.Build()))
	require.NoError(t, err)
	assert.Equal(t, junctions, decoded)
}

func TestJunctionsPushOverflow(t *testing.T) {
	t.Parallel()

	var junctions Junctions
	for i := 0; i < MaxJunctions; i++ {
		require.NoError(t, junctions.Push(OnlyChild{}))
	}

	err := junctions.Push(OnlyChild{})
	assert.ErrorIs(t, err, ErrLengthOverflow)
	assert.Len(t, junctions, MaxJunctions)

	_, err = NewJunctions(make(Junctions, MaxJunctions+1)...)
	assert.ErrorIs(t, err, ErrLengthOverflow)
}

func TestDecodeJunctionsOverflow(t *testing.T) {
	t.Parallel()

	encoded, err := encodeJunctionBytes(OnlyChild{})
	require.NoError(t, err)

	items := make([][]byte, MaxJunctions+1)
	for i := range items {
		items[i] = encoded
	}
	w := evmabi.NewWriter()
	w.WriteBytesSequence(items)

	_, err = DecodeJunctions(evmabi.NewReader(w.Build()))
	assert.ErrorIs(t, err, ErrLengthOverflow)
}

func TestEncodeJunctionsOverLimit(t *testing.T) {
	t.Parallel()

	oversized := make(Junctions, MaxJunctions+1)
	for i := range oversized {
		oversized[i] = OnlyChild{}
	}

	w := evmabi.NewWriter()
	err := EncodeJunctions(w, oversized)
	assert.ErrorIs(t, err, ErrLengthOverflow)
	assert.Empty(t, w.Build())
}

func TestEncodeJunctionsBadElement(t *testing.T) {
	t.Parallel()

	junctions := Junctions{Parachain(1), Plurality{}}

	w := evmabi.NewWriter()
	err := EncodeJunctions(w, junctions)
	assert.ErrorIs(t, err, ErrUnsupportedJunction)
	assert.Empty(t, w.Build())
}

func TestJunctionsString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Here", Junctions{}.String())

	junctions, err := NewJunctions(Parachain(2012), PalletInstance(50))
	require.NoError(t, err)
	assert.Equal(t, "X2(Parachain(2012), PalletInstance(50))", junctions.String())
}
