// Copyright 2022 Parallel Finance Developer.
// SPDX-License-Identifier: Apache-2.0

package xcm

import (
	"fmt"
	"strings"

	"github.com/parallel-finance/precompile-utils/pkg/evmabi"
)

// MaxJunctions is the maximum number of junctions in a multi-location
// path, matching the runtime depth limit.
const MaxJunctions = 8

// Junctions is an ordered sequence of up to MaxJunctions junctions.
type Junctions []Junction

// NewJunctions returns a Junctions holding the given junctions, in
// order, checking the depth limit.
func NewJunctions(junctions ...Junction) (Junctions, error) {
	var out Junctions
	for _, junction := range junctions {
		if err := out.Push(junction); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Push appends junction, failing once the depth limit is reached.
func (j *Junctions) Push(junction Junction) error {
	if len(*j) >= MaxJunctions {
		return fmt.Errorf("%w: junctions capacity is %d", ErrLengthOverflow, MaxJunctions)
	}
	*j = append(*j, junction)
	return nil
}

func (j Junctions) String() string {
	if len(j) == 0 {
		return "Here"
	}
	parts := make([]string, len(j))
	for i, junction := range j {
		parts[i] = junction.String()
	}
	return fmt.Sprintf("X%d(%s)", len(j), strings.Join(parts, ", "))
}

// EncodeJunctions encodes j as a sequence of junction dynamic bytes
// fields, in original order.
func EncodeJunctions(w *evmabi.Writer, j Junctions) error {
	if len(j) > MaxJunctions {
		return fmt.Errorf("%w: junctions capacity is %d", ErrLengthOverflow, MaxJunctions)
	}
	items := make([][]byte, len(j))
	for i, junction := range j {
		encoded, err := encodeJunctionBytes(junction)
		if err != nil {
			return fmt.Errorf("encoding junction %d: %w", i, err)
		}
		items[i] = encoded
	}
	w.WriteBytesSequence(items)
	return nil
}

// DecodeJunctions decodes a sequence of junction dynamic bytes fields,
// appending each in order. Order is preserved exactly.
func DecodeJunctions(r *evmabi.Reader) (Junctions, error) {
	items, err := r.ReadBytesSequence()
	if err != nil {
		return nil, fmt.Errorf("reading junctions sequence: %w", err)
	}

	var junctions Junctions
	for i, item := range items {
		junction, err := decodeJunctionBytes(item)
		if err != nil {
			return nil, fmt.Errorf("decoding junction %d: %w", i, err)
		}
		if err := junctions.Push(junction); err != nil {
			return nil, fmt.Errorf("overflow when reading junctions: %w", err)
		}
	}
	return junctions, nil
}
