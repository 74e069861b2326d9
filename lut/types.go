// SPDX-License-Identifier: MIT
// Package lut: domain types shared by the table, lookup and codecs.

package lut

// Number is the set of element types a Table may hold, both for cell values
// (T) and for axis coordinates (U). Only built-in numeric kinds (and types
// defined over them) qualify, so every value has a canonical decimal text
// representation and converts losslessly enough to float64 for interpolation.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sample is one grid cell contributing to an interpolated lookup.
// Weight is in (0, 1]; the weights of all samples of a lookup sum to 1.
type Sample struct {
	X, Y   int     // cell indices
	Weight float64 // bilinear weight
}

// Interpolated is the result of Table.Lookup.
//
//   - Value: Σ Weight·value over Samples.
//   - Samples: the (at most four) cells surrounding the query point, in
//     order (x0,y0), (x1,y0), (x0,y1), (x1,y1); zero-weight cells are omitted,
//     so an exact grid hit yields a single sample of weight 1.
//   - Clamped: true when either query component was outside its axis range
//     and was clamped to the nearest edge coordinate.
type Interpolated struct {
	Value   float64
	Samples []Sample
	Clamped bool
}
