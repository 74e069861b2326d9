// Package lut provides a two-dimensional calibration table.
//
// A Table is a dense grid of values indexed by two independent coordinate
// axes, for example engine RPM × manifold pressure, holding tuned parameters
// such as ignition timing:
//
//	                 rpm
//
//	          [1000] [2000] [3000]
//	   [100]    7.0    8.8   10.5
//	map [50]    6.9    8.6   10.3
//	     [1]    6.7    8.5   10.2
//
// The package provides:
//
//   - New, fixed dimensions validated once at construction (≥1×1).
//   - Bounds-checked cell and coordinate accessors (Get/Set, XCoord/SetXCoord, …)
//     that return ErrIndexOutOfBounds instead of a fallback value.
//   - Equal / Fingerprint, comparing cell values only.
//   - Lookup, bilinear interpolation by axis coordinates with edge clamping.
//
// Text serialization lives in package textfmt and file persistence in
// package lutfile.
package lut
