// SPDX-License-Identifier: MIT
// Package: lut
//
// Purpose:
//   - Bilinear interpolation over the grid: a query point (xv, yv) expressed
//     in axis coordinates is blended from the four cells surrounding it.
//
// Out-of-range policy:
//   - Each query component is clamped to its axis range [min, max] before
//     interpolation; Interpolated.Clamped reports that clamping happened.
//
// Axis policy:
//   - Axes may be ascending or descending (non-strict). Repeated adjacent
//     coordinates collapse onto the lower index.

package lut

import "math"

// Lookup returns the bilinearly interpolated value at axis coordinates (xv, yv).
// Implementation:
//   - Stage 1: reject NaN queries.
//   - Stage 2: bracket xv on the x axis and yv on the y axis (clamping).
//   - Stage 3: weight the four corner cells by proximity and sum.
//
// Behavior highlights:
//   - A query equal to a grid coordinate on both axes returns that cell's
//     value exactly, with a single Sample of weight 1.
//   - On a 1-wide axis the only coordinate is always selected.
//
// Errors:
//   - ErrNaN for a NaN query component.
//   - ErrNonMonotonicAxis when an axis changes direction.
//
// Complexity:
//   - Time O(XSize + YSize), Space O(1) beyond the ≤4 samples.
func (t *Table[T, U]) Lookup(xv, yv float64) (Interpolated, error) {
	if math.IsNaN(xv) || math.IsNaN(yv) {
		return Interpolated{}, lutErrorf("Table.Lookup", ErrNaN)
	}

	xi, xf, xClamped, err := bracket(t.xCoords, xv)
	if err != nil {
		return Interpolated{}, lutErrorf("Table.Lookup: x axis", err)
	}
	yi, yf, yClamped, err := bracket(t.yCoords, yv)
	if err != nil {
		return Interpolated{}, lutErrorf("Table.Lookup: y axis", err)
	}

	corners := [4]Sample{
		{X: xi, Y: yi, Weight: (1 - xf) * (1 - yf)},
		{X: xi + 1, Y: yi, Weight: xf * (1 - yf)},
		{X: xi, Y: yi + 1, Weight: (1 - xf) * yf},
		{X: xi + 1, Y: yi + 1, Weight: xf * yf},
	}

	res := Interpolated{Samples: make([]Sample, 0, 4), Clamped: xClamped || yClamped}
	for _, s := range corners {
		if s.Weight == 0 {
			continue // also skips the out-of-grid neighbour when frac==0
		}
		res.Value += s.Weight * float64(t.values[s.Y*t.xSize+s.X])
		res.Samples = append(res.Samples, s)
	}

	return res, nil
}

// bracket locates q on coords: it returns index i and fraction f in [0,1)
// such that q == coords[i] + f*(coords[i+1]-coords[i]). When f == 0 the
// caller must not touch coords[i+1] (it may not exist).
// q outside the axis range is clamped to the nearest end and reported.
// Complexity: O(n).
func bracket[U Number](coords []U, q float64) (int, float64, bool, error) {
	dir, err := axisDirection(coords)
	if err != nil {
		return 0, 0, false, err
	}

	n := len(coords)
	first, last := float64(coords[0]), float64(coords[n-1])
	lo, hi := math.Min(first, last), math.Max(first, last)

	clamped := false
	if q < lo {
		q, clamped = lo, true
	} else if q > hi {
		q, clamped = hi, true
	}
	if n == 1 {
		return 0, 0, clamped, nil
	}

	var i int
	for i = 0; i < n-1; i++ {
		a, b := float64(coords[i]), float64(coords[i+1])
		inside := (dir >= 0 && q >= a && q <= b) || (dir < 0 && q <= a && q >= b)
		if !inside {
			continue
		}
		if q == a || a == b {
			return i, 0, clamped, nil
		}
		if q == b {
			return i + 1, 0, clamped, nil
		}

		return i, (q - a) / (b - a), clamped, nil
	}

	// Only reachable with NaN coordinates, which order nothing.
	return 0, 0, false, ErrNonMonotonicAxis
}
