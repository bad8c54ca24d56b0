// Copyright 2022 Parallel Finance Developer.
// SPDX-License-Identifier: Apache-2.0

package xcm

import (
	"fmt"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"

	"github.com/parallel-finance/precompile-utils/pkg/uint128"
)

// SCALE form of the same values, for handing decoded locations to the
// runtime. Variant selectors are shared with the calldata codec;
// compact integer fields follow the runtime type definitions.

// Encode implements the gsrpc Encodeable convention.
func (m MultiLocation) Encode(encoder scale.Encoder) error {
	if err := encoder.PushByte(m.Parents); err != nil {
		return fmt.Errorf("encoding parents: %w", err)
	}
	return m.Interior.Encode(encoder)
}

// Decode implements the gsrpc Decodeable convention.
func (m *MultiLocation) Decode(decoder scale.Decoder) error {
	parents, err := decoder.ReadOneByte()
	if err != nil {
		return fmt.Errorf("decoding parents: %w", err)
	}
	m.Parents = parents
	return m.Interior.Decode(decoder)
}

// Encode implements the gsrpc Encodeable convention. The arity of the
// path is its variant selector (Here, X1..X8).
func (j Junctions) Encode(encoder scale.Encoder) error {
	if len(j) > MaxJunctions {
		return fmt.Errorf("%w: junctions capacity is %d", ErrLengthOverflow, MaxJunctions)
	}
	if err := encoder.PushByte(uint8(len(j))); err != nil {
		return fmt.Errorf("encoding junctions arity: %w", err)
	}
	for i, junction := range j {
		if err := encodeJunctionScale(encoder, junction); err != nil {
			return fmt.Errorf("encoding junction %d: %w", i, err)
		}
	}
	return nil
}

// Decode implements the gsrpc Decodeable convention.
func (j *Junctions) Decode(decoder scale.Decoder) error {
	arity, err := decoder.ReadOneByte()
	if err != nil {
		return fmt.Errorf("decoding junctions arity: %w", err)
	}
	if arity > MaxJunctions {
		return fmt.Errorf("%w: junctions arity %d", ErrUnknownVariantTag, arity)
	}
	if arity == 0 {
		*j = nil
		return nil
	}

	junctions := make(Junctions, 0, arity)
	for i := uint8(0); i < arity; i++ {
		junction, err := decodeJunctionScale(decoder)
		if err != nil {
			return fmt.Errorf("decoding junction %d: %w", i, err)
		}
		junctions = append(junctions, junction)
	}
	*j = junctions
	return nil
}

func encodeJunctionScale(encoder scale.Encoder, junction Junction) error {
	switch junction.(type) {
	case Parachain, AccountID32, AccountIndex64, AccountKey20,
		PalletInstance, GeneralIndex, GeneralKey, OnlyChild:
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedJunction, junction)
	}
	if err := encoder.PushByte(junction.Selector()); err != nil {
		return err
	}

	switch junction := junction.(type) {
	case Parachain:
		return encoder.Encode(types.NewUCompactFromUInt(uint64(junction)))
	case AccountID32:
		if err := encodeNetworkIDScale(encoder, junction.Network); err != nil {
			return err
		}
		return encoder.Write(junction.ID[:])
	case AccountIndex64:
		if err := encodeNetworkIDScale(encoder, junction.Network); err != nil {
			return err
		}
		return encoder.Encode(types.NewUCompactFromUInt(junction.Index))
	case AccountKey20:
		if err := encodeNetworkIDScale(encoder, junction.Network); err != nil {
			return err
		}
		return encoder.Write(junction.Key.Bytes())
	case PalletInstance:
		return encoder.PushByte(uint8(junction))
	case GeneralIndex:
		return encoder.Encode(types.NewUCompact(uint128.Uint128(junction).BigInt()))
	case GeneralKey:
		return encoder.Encode([]byte(junction))
	default: // OnlyChild carries no payload
		return nil
	}
}

func decodeJunctionScale(decoder scale.Decoder) (Junction, error) {
	selector, err := decoder.ReadOneByte()
	if err != nil {
		return nil, err
	}

	switch selector {
	case selectorParachain:
		id, err := decodeCompactUint(decoder, 32)
		if err != nil {
			return nil, fmt.Errorf("decoding parachain id: %w", err)
		}
		return Parachain(id), nil
	case selectorAccountID32:
		network, err := decodeNetworkIDScale(decoder)
		if err != nil {
			return nil, err
		}
		junction := AccountID32{Network: network}
		if err := decoder.Read(junction.ID[:]); err != nil {
			return nil, fmt.Errorf("decoding account id 32: %w", err)
		}
		return junction, nil
	case selectorAccountIndex64:
		network, err := decodeNetworkIDScale(decoder)
		if err != nil {
			return nil, err
		}
		index, err := decodeCompactUint(decoder, 64)
		if err != nil {
			return nil, fmt.Errorf("decoding account index 64: %w", err)
		}
		return AccountIndex64{Network: network, Index: index}, nil
	case selectorAccountKey20:
		network, err := decodeNetworkIDScale(decoder)
		if err != nil {
			return nil, err
		}
		junction := AccountKey20{Network: network}
		if err := decoder.Read(junction.Key[:]); err != nil {
			return nil, fmt.Errorf("decoding account key 20: %w", err)
		}
		return junction, nil
	case selectorPalletInstance:
		instance, err := decoder.ReadOneByte()
		if err != nil {
			return nil, fmt.Errorf("decoding pallet instance: %w", err)
		}
		return PalletInstance(instance), nil
	case selectorGeneralIndex:
		var compact types.UCompact
		if err := decoder.Decode(&compact); err != nil {
			return nil, fmt.Errorf("decoding general index: %w", err)
		}
		value := big.Int(compact)
		u, err := uint128.FromBigInt(&value)
		if err != nil {
			return nil, fmt.Errorf("decoding general index: %w", err)
		}
		return GeneralIndex(u), nil
	case selectorGeneralKey:
		var key []byte
		if err := decoder.Decode(&key); err != nil {
			return nil, fmt.Errorf("decoding general key: %w", err)
		}
		if len(key) > GeneralKeyMaxLength {
			return nil, fmt.Errorf("%w: general key of %d bytes, max %d",
				ErrLengthOverflow, len(key), GeneralKeyMaxLength)
		}
		return GeneralKey(key), nil
	case selectorOnlyChild:
		return OnlyChild{}, nil
	default:
		return nil, fmt.Errorf("%w: junction selector %d", ErrUnknownVariantTag, selector)
	}
}

func encodeNetworkIDScale(encoder scale.Encoder, network NetworkID) error {
	switch network := network.(type) {
	case AnyNetwork, Polkadot, Kusama:
		return encoder.PushByte(network.Selector())
	case NamedNetwork:
		if len(network.Name) > NamedNetworkMaxLength {
			return fmt.Errorf("%w: named network of %d bytes, max %d",
				ErrLengthOverflow, len(network.Name), NamedNetworkMaxLength)
		}
		if err := encoder.PushByte(selectorNetworkNamed); err != nil {
			return err
		}
		return encoder.Encode(network.Name)
	default:
		return fmt.Errorf("%w: network id %T", ErrUnsupportedJunction, network)
	}
}

func decodeNetworkIDScale(decoder scale.Decoder) (NetworkID, error) {
	selector, err := decoder.ReadOneByte()
	if err != nil {
		return nil, fmt.Errorf("decoding network id selector: %w", err)
	}

	switch selector {
	case selectorNetworkAny:
		return AnyNetwork{}, nil
	case selectorNetworkNamed:
		var name []byte
		if err := decoder.Decode(&name); err != nil {
			return nil, fmt.Errorf("decoding named network: %w", err)
		}
		if len(name) > NamedNetworkMaxLength {
			return nil, fmt.Errorf("%w: named network of %d bytes, max %d",
				ErrLengthOverflow, len(name), NamedNetworkMaxLength)
		}
		return NamedNetwork{Name: name}, nil
	case selectorNetworkPolkadot:
		return Polkadot{}, nil
	case selectorNetworkKusama:
		return Kusama{}, nil
	default:
		return nil, fmt.Errorf("%w: network id selector %d", ErrUnknownVariantTag, selector)
	}
}

// decodeCompactUint decodes a compact integer and checks it fits in
// bits.
func decodeCompactUint(decoder scale.Decoder, bits int) (uint64, error) {
	var compact types.UCompact
	if err := decoder.Decode(&compact); err != nil {
		return 0, err
	}
	value := big.Int(compact)
	if value.BitLen() > bits {
		return 0, fmt.Errorf("compact value %s overflows %d bits", value.String(), bits)
	}
	return value.Uint64(), nil
}
