// Copyright 2022 Parallel Finance Developer.
// SPDX-License-Identifier: Apache-2.0

package xcm

import "errors"

var (
	// ErrEmptyInput is returned when a buffer is empty where a
	// selector byte was expected.
	ErrEmptyInput = errors.New("empty input")
	// ErrUnknownVariantTag is returned when a selector byte is
	// outside the supported range for the type being decoded.
	ErrUnknownVariantTag = errors.New("unknown variant tag")
	// ErrLengthOverflow is returned when a bounded field exceeds its
	// declared maximum length.
	ErrLengthOverflow = errors.New("length overflow")
	// ErrUnsupportedJunction is returned when encoding a junction
	// variant this codec cannot represent.
	ErrUnsupportedJunction = errors.New("unsupported junction variant")
)
