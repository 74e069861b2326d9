// Package textfmt reads and writes lut tables in a human-readable,
// column-aligned text layout:
//
//	                 rpm
//
//	          [0]  [1]  [2]
//	    [10]    5    6    7
//	map [20]    8    9   10
//
// Every column is right-aligned to its widest cell; the x title is centred
// over the grid and the y title sits in the label column of row YSize/2.
// Tokens are whitespace separated, so Decode accepts hand-edited files as
// long as the tokens stay in place; brackets around coordinates are removed
// leniently (Unbracket).
//
// Decode never resizes a table: the target's dimensions must match the text,
// and a disagreement is reported as ErrShapeMismatch. All decode failures are
// *ParseError values carrying the line, token index and token.
//
// Numbers use their default decimal form; floats are written with the
// shortest representation that reads back to the identical value, so
// Unmarshal(Marshal(t)) reproduces values, coordinates and titles exactly.
package textfmt
