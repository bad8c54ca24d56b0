// Copyright 2022 Parallel Finance Developer.
// SPDX-License-Identifier: Apache-2.0

package xcm

import (
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/parallel-finance/precompile-utils/pkg/evmabi"
	"github.com/parallel-finance/precompile-utils/pkg/uint128"
)

// GeneralKeyMaxLength is the maximum length in bytes of a general key
// junction, matching the runtime bound.
const GeneralKeyMaxLength = 32

// Selector bytes for every Junction variant. The same table drives
// encoding and decoding so the two cannot drift apart.
const (
	selectorParachain uint8 = iota
	selectorAccountID32
	selectorAccountIndex64
	selectorAccountKey20
	selectorPalletInstance
	selectorGeneralIndex
	selectorGeneralKey
	selectorOnlyChild
	selectorPlurality
)

// Junction is one typed step in a multi-location path.
type Junction interface {
	// Selector returns the variant selector byte.
	Selector() uint8
	fmt.Stringer
}

// Parachain identifies a parachain by id.
type Parachain uint32

// Selector returns the variant selector byte.
func (Parachain) Selector() uint8 { return selectorParachain }

func (p Parachain) String() string { return fmt.Sprintf("Parachain(%d)", uint32(p)) }

// AccountID32 is a 32 byte account identifier on a network.
type AccountID32 struct {
	Network NetworkID
	ID      [32]byte
}

// Selector returns the variant selector byte.
func (AccountID32) Selector() uint8 { return selectorAccountID32 }

func (a AccountID32) String() string {
	return fmt.Sprintf("AccountId32(0x%x, %s)", a.ID, a.Network)
}

// AccountIndex64 is a 64 bit account index on a network.
type AccountIndex64 struct {
	Network NetworkID
	Index   uint64
}

// Selector returns the variant selector byte.
func (AccountIndex64) Selector() uint8 { return selectorAccountIndex64 }

func (a AccountIndex64) String() string {
	return fmt.Sprintf("AccountIndex64(%d, %s)", a.Index, a.Network)
}

// AccountKey20 is a 20 byte account key on a network, an EVM address
// at this boundary.
type AccountKey20 struct {
	Network NetworkID
	Key     common.Address
}

// Selector returns the variant selector byte.
func (AccountKey20) Selector() uint8 { return selectorAccountKey20 }

func (a AccountKey20) String() string {
	return fmt.Sprintf("AccountKey20(%s, %s)", a.Key, a.Network)
}

// PalletInstance identifies a pallet by instance index.
type PalletInstance uint8

// Selector returns the variant selector byte.
func (PalletInstance) Selector() uint8 { return selectorPalletInstance }

func (p PalletInstance) String() string { return fmt.Sprintf("PalletInstance(%d)", uint8(p)) }

// GeneralIndex is a nondescript 128 bit index.
type GeneralIndex uint128.Uint128

// Selector returns the variant selector byte.
func (GeneralIndex) Selector() uint8 { return selectorGeneralIndex }

func (g GeneralIndex) String() string {
	return fmt.Sprintf("GeneralIndex(%s)", uint128.Uint128(g))
}

// GeneralKey is a nondescript key bounded by GeneralKeyMaxLength.
type GeneralKey []byte

// Selector returns the variant selector byte.
func (GeneralKey) Selector() uint8 { return selectorGeneralKey }

func (g GeneralKey) String() string { return fmt.Sprintf("GeneralKey(0x%x)", []byte(g)) }

// OnlyChild is the lone child junction.
type OnlyChild struct{}

// Selector returns the variant selector byte.
func (OnlyChild) Selector() uint8 { return selectorOnlyChild }

func (OnlyChild) String() string { return "OnlyChild" }

// Plurality is a pluralistic body junction. It exists in the domain
// union so callers can hold the value, but this codec cannot represent
// its payload: encoding fails with ErrUnsupportedJunction and the
// selector is rejected on decode.
type Plurality struct{}

// Selector returns the variant selector byte.
func (Plurality) Selector() uint8 { return selectorPlurality }

func (Plurality) String() string { return "Plurality" }

// encodeJunctionBytes builds the inner junction encoding: the selector
// byte, the fixed fields in network byte order, then the network id
// bytes for the variants carrying one. The network id is always the
// last field since its name has no length prefix.
func encodeJunctionBytes(junction Junction) ([]byte, error) {
	switch junction := junction.(type) {
	case Parachain:
		encoded := make([]byte, 5)
		encoded[0] = selectorParachain
		binary.BigEndian.PutUint32(encoded[1:], uint32(junction))
		return encoded, nil
	case AccountID32:
		network, err := EncodeNetworkID(junction.Network)
		if err != nil {
			return nil, fmt.Errorf("encoding account id 32 network: %w", err)
		}
		encoded := append([]byte{selectorAccountID32}, junction.ID[:]...)
		return append(encoded, network...), nil
	case AccountIndex64:
		network, err := EncodeNetworkID(junction.Network)
		if err != nil {
			return nil, fmt.Errorf("encoding account index 64 network: %w", err)
		}
		encoded := make([]byte, 9)
		encoded[0] = selectorAccountIndex64
		binary.BigEndian.PutUint64(encoded[1:], junction.Index)
		return append(encoded, network...), nil
	case AccountKey20:
		network, err := EncodeNetworkID(junction.Network)
		if err != nil {
			return nil, fmt.Errorf("encoding account key 20 network: %w", err)
		}
		encoded := append([]byte{selectorAccountKey20}, junction.Key.Bytes()...)
		return append(encoded, network...), nil
	case PalletInstance:
		return []byte{selectorPalletInstance, uint8(junction)}, nil
	case GeneralIndex:
		return append([]byte{selectorGeneralIndex}, uint128.Uint128(junction).Bytes()...), nil
	case GeneralKey:
		if len(junction) > GeneralKeyMaxLength {
			return nil, fmt.Errorf("%w: general key of %d bytes, max %d",
				ErrLengthOverflow, len(junction), GeneralKeyMaxLength)
		}
		return append([]byte{selectorGeneralKey}, junction...), nil
	case OnlyChild:
		return []byte{selectorOnlyChild}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedJunction, junction)
	}
}

// decodeJunctionBytes decodes the inner junction encoding produced by
// encodeJunctionBytes.
func decodeJunctionBytes(data []byte) (Junction, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: junction buffer", ErrEmptyInput)
	}

	r := evmabi.NewReader(data)
	selector, err := r.ReadRawBytes(1)
	if err != nil {
		return nil, fmt.Errorf("reading junction selector: %w", err)
	}

	switch selector[0] {
	case selectorParachain:
		id, err := r.ReadRawBytes(4)
		if err != nil {
			return nil, fmt.Errorf("reading parachain id: %w", err)
		}
		return Parachain(binary.BigEndian.Uint32(id)), nil
	case selectorAccountID32:
		id, err := r.ReadRawBytes(32)
		if err != nil {
			return nil, fmt.Errorf("reading account id 32: %w", err)
		}
		network, err := DecodeNetworkID(r.ReadTillEnd())
		if err != nil {
			return nil, fmt.Errorf("decoding account id 32 network: %w", err)
		}
		junction := AccountID32{Network: network}
		copy(junction.ID[:], id)
		return junction, nil
	case selectorAccountIndex64:
		index, err := r.ReadRawBytes(8)
		if err != nil {
			return nil, fmt.Errorf("reading account index 64: %w", err)
		}
		network, err := DecodeNetworkID(r.ReadTillEnd())
		if err != nil {
			return nil, fmt.Errorf("decoding account index 64 network: %w", err)
		}
		return AccountIndex64{
			Network: network,
			Index:   binary.BigEndian.Uint64(index),
		}, nil
	case selectorAccountKey20:
		key, err := r.ReadRawBytes(20)
		if err != nil {
			return nil, fmt.Errorf("reading account key 20: %w", err)
		}
		network, err := DecodeNetworkID(r.ReadTillEnd())
		if err != nil {
			return nil, fmt.Errorf("decoding account key 20 network: %w", err)
		}
		return AccountKey20{
			Network: network,
			Key:     common.BytesToAddress(key),
		}, nil
	case selectorPalletInstance:
		instance, err := r.ReadRawBytes(1)
		if err != nil {
			return nil, fmt.Errorf("reading pallet instance: %w", err)
		}
		return PalletInstance(instance[0]), nil
	case selectorGeneralIndex:
		index, err := r.ReadRawBytes(16)
		if err != nil {
			return nil, fmt.Errorf("reading general index: %w", err)
		}
		u, err := uint128.FromBigEndian(index)
		if err != nil {
			return nil, fmt.Errorf("decoding general index: %w", err)
		}
		return GeneralIndex(u), nil
	case selectorGeneralKey:
		key := r.ReadTillEnd()
		if len(key) > GeneralKeyMaxLength {
			return nil, fmt.Errorf("%w: general key of %d bytes, max %d",
				ErrLengthOverflow, len(key), GeneralKeyMaxLength)
		}
		return GeneralKey(append([]byte(nil), key...)), nil
	case selectorOnlyChild:
		return OnlyChild{}, nil
	default:
		return nil, fmt.Errorf("%w: junction selector %d", ErrUnknownVariantTag, selector[0])
	}
}

// EncodeJunction encodes junction as one dynamic bytes field.
func EncodeJunction(w *evmabi.Writer, junction Junction) error {
	encoded, err := encodeJunctionBytes(junction)
	if err != nil {
		return err
	}
	w.WriteBytes(encoded)
	return nil
}

// DecodeJunction decodes one dynamic bytes field holding a junction.
func DecodeJunction(r *evmabi.Reader) (Junction, error) {
	data, err := r.ReadBytes()
	if err != nil {
		return nil, fmt.Errorf("reading junction field: %w", err)
	}
	return decodeJunctionBytes(data)
}
