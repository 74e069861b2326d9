// SPDX-License-Identifier: MIT
// Package lut: sentinel error set.
// All accessors return these sentinels (optionally wrapped with method and
// index context); tests and callers MUST match them via errors.Is.
// Nothing in this package panics on user-triggered conditions.

package lut

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested table dimensions are non-positive.
	ErrInvalidDimensions = errors.New("lut: dimensions must be > 0")

	// ErrOutOfRange indicates that a cell or coordinate index is outside [0, size).
	// Public accessors MUST return this, never a value from another cell.
	ErrOutOfRange = errors.New("lut: index out of bounds")

	// ErrDimensionMismatch indicates two tables of different shape were combined.
	ErrDimensionMismatch = errors.New("lut: dimension mismatch")

	// ErrNilTable indicates that a nil *Table (receiver or argument) was used.
	ErrNilTable = errors.New("lut: nil table")

	// ErrNonMonotonicAxis indicates an axis whose coordinates are neither
	// non-decreasing nor non-increasing; interpolation is undefined over it.
	ErrNonMonotonicAxis = errors.New("lut: axis coordinates are not monotonic")

	// ErrNaN indicates a NaN lookup query.
	ErrNaN = errors.New("lut: NaN query")
)

// ErrIndexOutOfBounds names the same condition as ErrOutOfRange, matching the
// accessor vocabulary (Get/Set/XCoord/...). errors.Is works with either.
var ErrIndexOutOfBounds = ErrOutOfRange

// tableErrorf wraps err with Table method and (x, y) context.
func tableErrorf(method string, x, y int, err error) error {
	return fmt.Errorf("Table.%s(%d,%d): %w", method, x, y, err)
}

// axisErrorf wraps err with Table method and single axis index context.
func axisErrorf(method string, i int, err error) error {
	return fmt.Errorf("Table.%s(%d): %w", method, i, err)
}

// lutErrorf wraps err with an operation tag.
func lutErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
