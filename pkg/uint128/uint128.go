// Copyright 2022 Parallel Finance Developer.
// SPDX-License-Identifier: Apache-2.0

// Package uint128 provides an unsigned 128 bit integer value type.
package uint128

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
)

// ErrOverflow is returned when a value does not fit in 128 bits.
var ErrOverflow = errors.New("value overflows 128 bits")

// Uint128 represents an unsigned 128 bit integer. It is a comparable
// value type, so structs embedding it can be compared with ==.
type Uint128 struct {
	Upper uint64
	Lower uint64
}

// Max is the maximum Uint128 value.
var Max = Uint128{
	Upper: ^uint64(0),
	Lower: ^uint64(0),
}

// FromUint64 converts v to a Uint128.
func FromUint64(v uint64) Uint128 {
	return Uint128{Lower: v}
}

// FromBigEndian converts up to 16 big-endian bytes to a Uint128.
func FromBigEndian(b []byte) (Uint128, error) {
	if len(b) > 16 {
		return Uint128{}, fmt.Errorf("%w: %d bytes", ErrOverflow, len(b))
	}
	padded := make([]byte, 16)
	copy(padded[16-len(b):], b)
	return Uint128{
		Upper: binary.BigEndian.Uint64(padded[:8]),
		Lower: binary.BigEndian.Uint64(padded[8:]),
	}, nil
}

// FromBigInt converts a non-negative big.Int to a Uint128.
func FromBigInt(v *big.Int) (Uint128, error) {
	if v.Sign() < 0 || v.BitLen() > 128 {
		return Uint128{}, fmt.Errorf("%w: %s", ErrOverflow, v)
	}
	return FromBigEndian(v.Bytes())
}

// MustFromBigInt will panic if FromBigInt returns an error.
func MustFromBigInt(v *big.Int) Uint128 {
	u, err := FromBigInt(v)
	if err != nil {
		panic(err)
	}
	return u
}

// Bytes returns the fixed 16 byte big-endian form of u.
func (u Uint128) Bytes() []byte {
	b := make([]byte, 16)
	binary.BigEndian.PutUint64(b[:8], u.Upper)
	binary.BigEndian.PutUint64(b[8:], u.Lower)
	return b
}

// BigInt returns u as a big.Int.
func (u Uint128) BigInt() *big.Int {
	return new(big.Int).SetBytes(u.Bytes())
}

// String returns the decimal string form of u.
func (u Uint128) String() string {
	return u.BigInt().String()
}

// IsZero returns true if u is zero.
func (u Uint128) IsZero() bool {
	return u == Uint128{}
}

// Compare returns 1 if u is greater than other, 0 if they are equal,
// and -1 otherwise.
func (u Uint128) Compare(other Uint128) int {
	switch {
	case u.Upper > other.Upper:
		return 1
	case u.Upper < other.Upper:
		return -1
	case u.Lower > other.Lower:
		return 1
	case u.Lower < other.Lower:
		return -1
	}
	return 0
}
