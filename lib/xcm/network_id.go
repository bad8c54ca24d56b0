// Copyright 2022 Parallel Finance Developer.
// SPDX-License-Identifier: Apache-2.0

package xcm

import (
	"fmt"

	"github.com/parallel-finance/precompile-utils/pkg/evmabi"
)

// NamedNetworkMaxLength is the maximum length in bytes of a named
// network identifier, matching the runtime bound.
const NamedNetworkMaxLength = 32

// Selector bytes for every NetworkID variant. The same table drives
// encoding and decoding so the two cannot drift apart.
const (
	selectorNetworkAny uint8 = iota
	selectorNetworkNamed
	selectorNetworkPolkadot
	selectorNetworkKusama
)

// NetworkID identifies which external consensus network an
// account-bearing junction refers to.
type NetworkID interface {
	// Selector returns the variant selector byte.
	Selector() uint8
	fmt.Stringer
}

// AnyNetwork is the wildcard network identifier.
type AnyNetwork struct{}

// Selector returns the variant selector byte.
func (AnyNetwork) Selector() uint8 { return selectorNetworkAny }

func (AnyNetwork) String() string { return "Any" }

// NamedNetwork identifies a network by name. The name is bounded by
// NamedNetworkMaxLength.
type NamedNetwork struct {
	Name []byte
}

// NewNamedNetwork returns a NamedNetwork, checking the name bound.
func NewNamedNetwork(name []byte) (NamedNetwork, error) {
	if len(name) > NamedNetworkMaxLength {
		return NamedNetwork{}, fmt.Errorf("%w: named network of %d bytes, max %d",
			ErrLengthOverflow, len(name), NamedNetworkMaxLength)
	}
	return NamedNetwork{Name: name}, nil
}

// Selector returns the variant selector byte.
func (NamedNetwork) Selector() uint8 { return selectorNetworkNamed }

func (n NamedNetwork) String() string { return fmt.Sprintf("Named(%s)", n.Name) }

// Polkadot is the Polkadot relay chain network identifier.
type Polkadot struct{}

// Selector returns the variant selector byte.
func (Polkadot) Selector() uint8 { return selectorNetworkPolkadot }

func (Polkadot) String() string { return "Polkadot" }

// Kusama is the Kusama relay chain network identifier.
type Kusama struct{}

// Selector returns the variant selector byte.
func (Kusama) Selector() uint8 { return selectorNetworkKusama }

func (Kusama) String() string { return "Kusama" }

// EncodeNetworkID encodes n as its selector byte followed, for
// NamedNetwork only, by the raw name bytes. The name carries no length
// prefix, so a network id may only ever sit at the tail of an outer
// record; decoding reads it back with ReadTillEnd.
func EncodeNetworkID(n NetworkID) ([]byte, error) {
	switch n := n.(type) {
	case AnyNetwork, Polkadot, Kusama:
		return []byte{n.Selector()}, nil
	case NamedNetwork:
		if len(n.Name) > NamedNetworkMaxLength {
			return nil, fmt.Errorf("%w: named network of %d bytes, max %d",
				ErrLengthOverflow, len(n.Name), NamedNetworkMaxLength)
		}
		return append([]byte{selectorNetworkNamed}, n.Name...), nil
	default:
		return nil, fmt.Errorf("%w: network id %T", ErrUnsupportedJunction, n)
	}
}

// DecodeNetworkID decodes a network id from data. For NamedNetwork the
// name is everything after the selector byte; trailing bytes of other
// variants are the caller's responsibility.
func DecodeNetworkID(data []byte) (NetworkID, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: network id buffer", ErrEmptyInput)
	}

	r := evmabi.NewReader(data)
	selector, err := r.ReadRawBytes(1)
	if err != nil {
		return nil, fmt.Errorf("reading network id selector: %w", err)
	}

	switch selector[0] {
	case selectorNetworkAny:
		return AnyNetwork{}, nil
	case selectorNetworkNamed:
		name := r.ReadTillEnd()
		if len(name) > NamedNetworkMaxLength {
			return nil, fmt.Errorf("%w: named network of %d bytes, max %d",
				ErrLengthOverflow, len(name), NamedNetworkMaxLength)
		}
		return NamedNetwork{Name: append([]byte(nil), name...)}, nil
	case selectorNetworkPolkadot:
		return Polkadot{}, nil
	case selectorNetworkKusama:
		return Kusama{}, nil
	default:
		return nil, fmt.Errorf("%w: network id selector %d", ErrUnknownVariantTag, selector[0])
	}
}
