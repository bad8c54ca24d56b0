// Copyright 2022 Parallel Finance Developer.
// SPDX-License-Identifier: Apache-2.0

// Package xcm translates cross-chain multi-location values between
// their Solidity ABI calldata form, used at the precompile boundary,
// and their SCALE form, used by the runtime. All codecs are stateless:
// each call is a single pass over its input and either returns a fresh
// value or a typed error, never both.
package xcm

import (
	"fmt"

	"github.com/parallel-finance/precompile-utils/pkg/evmabi"
)

// MultiLocation is a position in the cross-chain addressing hierarchy:
// an ancestry count followed by an ordered path of junctions.
type MultiLocation struct {
	Parents  uint8
	Interior Junctions
}

func (m MultiLocation) String() string {
	return fmt.Sprintf("MultiLocation(parents: %d, interior: %s)", m.Parents, m.Interior)
}

// EncodeMultiLocation encodes m as the pair (parents, interior), in
// that field order.
func EncodeMultiLocation(w *evmabi.Writer, m MultiLocation) error {
	w.WriteUint8(m.Parents)
	if err := EncodeJunctions(w, m.Interior); err != nil {
		return fmt.Errorf("encoding interior: %w", err)
	}
	return nil
}

// DecodeMultiLocation decodes the pair (parents, interior), in that
// field order.
func DecodeMultiLocation(r *evmabi.Reader) (MultiLocation, error) {
	parents, err := r.ReadUint8()
	if err != nil {
		return MultiLocation{}, fmt.Errorf("reading parents: %w", err)
	}
	interior, err := DecodeJunctions(r)
	if err != nil {
		return MultiLocation{}, fmt.Errorf("decoding interior: %w", err)
	}
	return MultiLocation{Parents: parents, Interior: interior}, nil
}
