// SPDX-License-Identifier: MIT
// Package: lut
//
// Purpose:
//   - Single source of truth for shape and axis checks shared by Equal,
//     Lookup and the text codec.
//   - Return plain sentinels wrapped with a validator tag so call sites can
//     still match with errors.Is.

package lut

// ValidateNotNil ensures the table reference is non-nil.
// Complexity: O(1).
func ValidateNotNil[T, U Number](t *Table[T, U]) error {
	if t == nil {
		return lutErrorf("ValidateNotNil", ErrNilTable)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Errors: ErrNilTable if either is nil, ErrDimensionMismatch otherwise.
// Complexity: O(1).
func ValidateSameShape[T, U Number](a, b *Table[T, U]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.xSize != b.xSize {
		return lutErrorf("ValidateSameShape: XSize", ErrDimensionMismatch)
	}
	if a.ySize != b.ySize {
		return lutErrorf("ValidateSameShape: YSize", ErrDimensionMismatch)
	}

	return nil
}

// axisDirection classifies coords as non-decreasing (+1), non-increasing (-1)
// or constant (0). A single coordinate is constant.
// Returns ErrNonMonotonicAxis when the axis changes direction.
// Complexity: O(n).
func axisDirection[U Number](coords []U) (int, error) {
	dir := 0
	for i := 1; i < len(coords); i++ {
		var step int
		switch {
		case coords[i] > coords[i-1]:
			step = 1
		case coords[i] < coords[i-1]:
			step = -1
		default:
			continue
		}
		if dir == 0 {
			dir = step
			continue
		}
		if step != dir {
			return 0, ErrNonMonotonicAxis
		}
	}

	return dir, nil
}
