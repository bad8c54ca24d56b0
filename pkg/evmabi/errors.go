// Copyright 2022 Parallel Finance Developer.
// SPDX-License-Identifier: Apache-2.0

package evmabi

import "errors"

var (
	// ErrReadOutOfBounds is returned when a read would go past the
	// end of the input buffer.
	ErrReadOutOfBounds = errors.New("read out of bounds")
	// ErrValueOutOfRange is returned when a word holds a value too
	// large for the requested integer type.
	ErrValueOutOfRange = errors.New("value out of range")
)
