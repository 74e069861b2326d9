// SPDX-License-Identifier: MIT
// Package lut provides the two-dimensional calibration table.
// Table is a row-major grid of values indexed by two coordinate axes,
// storing elements in a flat slice addressed as y*XSize()+x.
package lut

// Table is a dense XSize×YSize grid of T values with two axes of U coordinates.
// The dimensions are fixed at construction; values, coordinates, titles and
// the associated file path may change freely afterwards.
//
// A Table exclusively owns its buffers. It is not safe for concurrent use;
// callers sharing a Table across goroutines must synchronize externally.
type Table[T, U Number] struct {
	xSize, ySize int

	xTitle, yTitle string
	path           string // default persistence target, may be empty

	values  []T // flat backing storage, len == xSize*ySize
	xCoords []U // len == xSize
	yCoords []U // len == ySize
}

// New creates an xSize×ySize Table with zeroed values and coordinates.
// Stage 1 (Validate): ensure xSize and ySize > 0.
// Stage 2 (Prepare): allocate value grid and both axes.
// Stage 3 (Finalize): return the table or ErrInvalidDimensions.
// Complexity: O(xSize*ySize) time and memory.
func New[T, U Number](xSize, ySize int, xTitle, yTitle string) (*Table[T, U], error) {
	if xSize <= 0 || ySize <= 0 {
		return nil, lutErrorf("New", ErrInvalidDimensions)
	}

	return &Table[T, U]{
		xSize:   xSize,
		ySize:   ySize,
		xTitle:  xTitle,
		yTitle:  yTitle,
		values:  make([]T, xSize*ySize),
		xCoords: make([]U, xSize),
		yCoords: make([]U, ySize),
	}, nil
}

// XSize returns the number of columns (x axis length).
// Complexity: O(1).
func (t *Table[T, U]) XSize() int { return t.xSize }

// YSize returns the number of rows (y axis length).
// Complexity: O(1).
func (t *Table[T, U]) YSize() int { return t.ySize }

// indexOf computes the flat index for (x, y) or returns ErrIndexOutOfBounds.
// Stage 1 (Validate): check 0 ≤ x < xSize and 0 ≤ y < ySize.
// Stage 2 (Execute): compute the row-major offset.
// Complexity: O(1).
func (t *Table[T, U]) indexOf(method string, x, y int) (int, error) {
	if x < 0 || x >= t.xSize || y < 0 || y >= t.ySize {
		return 0, tableErrorf(method, x, y, ErrIndexOutOfBounds)
	}

	return y*t.xSize + x, nil
}

// Get returns the value stored at cell (x, y).
// Returns ErrIndexOutOfBounds for any index outside the grid, including negatives.
// Complexity: O(1).
func (t *Table[T, U]) Get(x, y int) (T, error) {
	idx, err := t.indexOf("Get", x, y)
	if err != nil {
		var zero T
		return zero, err
	}

	return t.values[idx], nil
}

// Set writes v into cell (x, y). No other cell is touched.
// Returns ErrIndexOutOfBounds for any index outside the grid.
// Complexity: O(1).
func (t *Table[T, U]) Set(x, y int, v T) error {
	idx, err := t.indexOf("Set", x, y)
	if err != nil {
		return err
	}
	t.values[idx] = v

	return nil
}

// XCoord returns the coordinate of column x.
// Complexity: O(1).
func (t *Table[T, U]) XCoord(x int) (U, error) {
	if x < 0 || x >= t.xSize {
		var zero U
		return zero, axisErrorf("XCoord", x, ErrIndexOutOfBounds)
	}

	return t.xCoords[x], nil
}

// YCoord returns the coordinate of row y.
// Complexity: O(1).
func (t *Table[T, U]) YCoord(y int) (U, error) {
	if y < 0 || y >= t.ySize {
		var zero U
		return zero, axisErrorf("YCoord", y, ErrIndexOutOfBounds)
	}

	return t.yCoords[y], nil
}

// SetXCoord assigns the coordinate of column x.
// Complexity: O(1).
func (t *Table[T, U]) SetXCoord(x int, c U) error {
	if x < 0 || x >= t.xSize {
		return axisErrorf("SetXCoord", x, ErrIndexOutOfBounds)
	}
	t.xCoords[x] = c

	return nil
}

// SetYCoord assigns the coordinate of row y.
// Complexity: O(1).
func (t *Table[T, U]) SetYCoord(y int, c U) error {
	if y < 0 || y >= t.ySize {
		return axisErrorf("SetYCoord", y, ErrIndexOutOfBounds)
	}
	t.yCoords[y] = c

	return nil
}

// XCoords returns a copy of the x axis.
// Complexity: O(xSize).
func (t *Table[T, U]) XCoords() []U {
	out := make([]U, len(t.xCoords))
	copy(out, t.xCoords)

	return out
}

// YCoords returns a copy of the y axis.
// Complexity: O(ySize).
func (t *Table[T, U]) YCoords() []U {
	out := make([]U, len(t.yCoords))
	copy(out, t.yCoords)

	return out
}

// XTitle returns the display title of the x axis.
func (t *Table[T, U]) XTitle() string { return t.xTitle }

// YTitle returns the display title of the y axis.
func (t *Table[T, U]) YTitle() string { return t.yTitle }

// SetXTitle replaces the display title of the x axis.
func (t *Table[T, U]) SetXTitle(s string) { t.xTitle = s }

// SetYTitle replaces the display title of the y axis.
func (t *Table[T, U]) SetYTitle(s string) { t.yTitle = s }

// Path returns the associated file path, or "" when none was set.
func (t *Table[T, U]) Path() string { return t.path }

// SetPath associates a default persistence target with the table.
func (t *Table[T, U]) SetPath(p string) { t.path = p }

// Fill assigns every cell from fn, visiting rows in order and columns left
// to right within a row. fn receives the cell indices and both coordinates.
// Complexity: O(xSize*ySize) calls of fn.
func (t *Table[T, U]) Fill(fn func(x, y int, xc, yc U) T) {
	var x, y int
	for y = 0; y < t.ySize; y++ {
		base := y * t.xSize
		for x = 0; x < t.xSize; x++ {
			t.values[base+x] = fn(x, y, t.xCoords[x], t.yCoords[y])
		}
	}
}

// Clone returns a deep copy: values, both axes, titles and path.
// The returned Table shares no storage with the original.
// Complexity: O(xSize*ySize) time and memory.
func (t *Table[T, U]) Clone() *Table[T, U] {
	values := make([]T, len(t.values))
	copy(values, t.values)

	return &Table[T, U]{
		xSize:   t.xSize,
		ySize:   t.ySize,
		xTitle:  t.xTitle,
		yTitle:  t.yTitle,
		path:    t.path,
		values:  values,
		xCoords: t.XCoords(),
		yCoords: t.YCoords(),
	}
}

// Equal reports whether t and other have the same dimensions and equal
// values in every cell. Coordinates, titles and path are not compared.
// Complexity: O(xSize*ySize).
func (t *Table[T, U]) Equal(other *Table[T, U]) bool {
	return Equal(t, other)
}

// Equal reports whether a and b hold equal values on equal dimensions.
// Two nil tables are equal; a nil and a non-nil table are not.
// Complexity: O(xSize*ySize).
func Equal[T, U Number](a, b *Table[T, U]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}
	for i := range a.values {
		if a.values[i] != b.values[i] {
			return false
		}
	}

	return true
}
