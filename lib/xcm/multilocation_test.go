// Copyright 2022 Parallel Finance Developer.
// SPDX-License-Identifier: Apache-2.0

package xcm

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parallel-finance/precompile-utils/pkg/evmabi"
	"github.com/parallel-finance/precompile-utils/pkg/uint128"
)

func TestMultiLocationRoundTrip(t *testing.T) {
	t.Parallel()

	testCases := map[string]MultiLocation{
		"here": {
			Parents:  0,
			Interior: nil,
		},
		"max_parents_empty_interior": {
			Parents:  255,
			Interior: nil,
		},
		"relay_account": {
			Parents: 1,
			Interior: Junctions{
				AccountID32{Network: AnyNetwork{}, ID: [32]byte{1}},
			},
		},
		"sibling_parachain_pallet": {
			Parents: 1,
			Interior: Junctions{
				Parachain(2012),
				PalletInstance(50),
			},
		},
		"every_variant": {
			Parents: 2,
			Interior: Junctions{
				Parachain(1000),
				AccountID32{Network: NamedNetwork{Name: []byte("heiko")}, ID: [32]byte{2}},
				AccountIndex64{Network: Kusama{}, Index: 7},
				AccountKey20{Network: Polkadot{}, Key: common.HexToAddress("0x00112233445566778899aabbccddeeff00112233")},
				PalletInstance(9),
				GeneralIndex(uint128.FromUint64(123456789)),
				GeneralKey{0xde, 0xad},
				OnlyChild{},
			},
		},
	}

	for name, location := range testCases {
		location := location
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			w := evmabi.NewWriter()
			require.NoError(t, EncodeMultiLocation(w, location))

			decoded, err := DecodeMultiLocation(evmabi.NewReader(w.Build()))
			require.NoError(t, err)

			if diff := cmp.Diff(location, decoded); diff != "" {
				t.Fatalf("round trip mismatch (-encoded +decoded):\n%s", diff)
			}
		})
	}
}

func TestDecodeMultiLocationBadParents(t *testing.T) {
	t.Parallel()

	// parents word with a bit set above uint8
	data := make([]byte, evmabi.WordLength)
	data[0] = 1
	_, err := DecodeMultiLocation(evmabi.NewReader(data))
	assert.ErrorIs(t, err, evmabi.ErrValueOutOfRange)
}

func TestDecodeMultiLocationTruncated(t *testing.T) {
	t.Parallel()

	_, err := DecodeMultiLocation(evmabi.NewReader(nil))
	assert.ErrorIs(t, err, evmabi.ErrReadOutOfBounds)

	// parents word present, junctions sequence missing
	_, err = DecodeMultiLocation(evmabi.NewReader(make([]byte, evmabi.WordLength)))
	assert.ErrorIs(t, err, evmabi.ErrReadOutOfBounds)
}

func TestDecodeMultiLocationRejectsBadJunction(t *testing.T) {
	t.Parallel()

	w := evmabi.NewWriter()
	w.WriteUint8(0)
	w.WriteBytesSequence([][]byte{{8}})

	_, err := DecodeMultiLocation(evmabi.NewReader(w.Build()))
	assert.ErrorIs(t, err, ErrUnknownVariantTag)
}

func TestMultiLocationString(t *testing.T) {
	t.Parallel()

	location := MultiLocation{
		Parents:  1,
		Interior: Junctions{Parachain(2012)},
	}
	assert.Equal(t,
		"MultiLocation(parents: 1, interior: X1(Parachain(2012)))",
		location.String())
}
