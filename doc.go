// Package lookuptable is a home for two-dimensional calibration tables:
// dense grids of tuned values (ignition advance, fuel trim, boost targets)
// indexed by two coordinate axes such as engine rpm × manifold pressure.
//
// What is inside?
//
//	lut/          Table[T, U]: fixed-size grid, titles, axis coordinates,
//	              bounds-checked Get/Set, Equal, Clone, bilinear Lookup
//	textfmt/      the human-editable column-aligned text layout
//	              (Encode/Decode, Marshal/Unmarshal)
//	lutfile/      Load/Save to disk and a Store that only writes on change
//	enginesim/    a toy engine loop driven by a 12×12 timing table
//	cmd/lutctl/   CLI: init, show, get, set, lookup, simulate
//
// The text layout a tuner edits by hand:
//
//	              rpm
//
//	            [0]  [1]  [2]
//	      [10]    5    6    7
//	 map  [20]    8    9   10
//
// Quick start:
//
//	t, _ := lut.New[float32, int](3, 2, "rpm", "map")
//	_ = t.Set(1, 0, 6)
//	text, _ := textfmt.Marshal(t)
//	_ = lutfile.Save(t, "timing.tbl")
//
//	go get github.com/katalvlaran/lookuptable
package lookuptable
