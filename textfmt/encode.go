// SPDX-License-Identifier: MIT
// Package: textfmt
//
// Layout written by Encode (columns right-aligned to their widest cell):
//
//	<blank>
//	<x title centred over the grid>
//	<blank>
//	<label> <label>  [x0]  [x1] ...
//	          [y0]    v     v
//	 ytitle   [yk]    v     v      <- row k == YSize/2
//	          [yn]    v     v

package textfmt

import (
	"bufio"
	"io"
	"strings"

	"github.com/katalvlaran/lookuptable/lut"
	"github.com/mattn/go-runewidth"
)

// Encode writes t to w in the aligned text layout.
// Implementation:
//   - Stage 1: validate the table and both titles.
//   - Stage 2: render every cell of the (YSize+1)×(XSize+2) grid as a string.
//   - Stage 3: right-align each column to its widest cell; sum the widths.
//   - Stage 4: emit the centred x title, then the grid rows.
//
// Behavior highlights:
//   - Widths are display columns (go-runewidth), not bytes; for ASCII text
//     the two agree. Wide runes in titles or cells still line up on screen.
//   - Lines have no length limit; Decode reads them back whatever the width.
//
// Errors:
//   - lut.ErrNilTable, ErrUnencodableTitle, or the writer's error.
//
// Complexity:
//   - Time O(XSize*YSize), Space O(XSize*YSize) for the rendered grid.
func Encode[T, U lut.Number](w io.Writer, t *lut.Table[T, U]) error {
	if err := lut.ValidateNotNil(t); err != nil {
		return textfmtErrorf("Encode", err)
	}
	if err := validateTitles(t.XTitle(), t.YTitle()); err != nil {
		return textfmtErrorf("Encode", err)
	}

	grid := renderCells(t)
	width := alignColumns(grid)

	xTitle, yTitle := t.XTitle(), t.YTitle()
	pad := (width-runewidth.StringWidth(xTitle))/2 + runewidth.StringWidth(yTitle)
	if pad < 0 {
		pad = 0
	}

	bw := bufio.NewWriter(w)
	bw.WriteString("\n")
	bw.WriteString(strings.Repeat(" ", pad))
	bw.WriteString(xTitle)
	bw.WriteString("\n\n")
	for _, row := range grid {
		for _, cell := range row {
			bw.WriteString(cell)
		}
		bw.WriteString("\n")
	}

	if err := bw.Flush(); err != nil {
		return textfmtErrorf("Encode", err)
	}

	return nil
}

// Marshal returns the text layout of t as a string.
func Marshal[T, U lut.Number](t *lut.Table[T, U]) (string, error) {
	var sb strings.Builder
	if err := Encode(&sb, t); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// validateTitles rejects titles Decode could not read back. Decode trims
// both titles, so surrounding whitespace would be lost.
func validateTitles(xTitle, yTitle string) error {
	if strings.ContainsAny(xTitle, "\r\n") || Trim(xTitle, true) != xTitle {
		return textfmtErrorf("x title", ErrUnencodableTitle)
	}
	if Trim(yTitle, true) != yTitle {
		return textfmtErrorf("y title", ErrUnencodableTitle)
	}
	if strings.ContainsAny(yTitle, "\r\n[]") {
		return textfmtErrorf("y title", ErrUnencodableTitle)
	}
	if yTitle != "" && !hasLetter(yTitle) {
		return textfmtErrorf("y title", ErrUnencodableTitle)
	}

	return nil
}

// renderCells places every element as an unpadded string.
// Row 0 holds the x coordinates; row r+1 holds y index r.
func renderCells[T, U lut.Number](t *lut.Table[T, U]) [][]string {
	xs, ys := t.XSize(), t.YSize()
	xCoords, yCoords := t.XCoords(), t.YCoords()
	mid := ys / 2

	grid := make([][]string, ys+1)

	header := make([]string, xs+2)
	header[0], header[1] = " ", " "
	for x := 0; x < xs; x++ {
		header[x+2] = " [" + formatNumber(xCoords[x]) + "] "
	}
	grid[0] = header

	for y := 0; y < ys; y++ {
		row := make([]string, xs+2)
		if y == mid {
			row[0] = " " + t.YTitle() + "  "
		} else {
			row[0] = " "
		}
		row[1] = "[" + formatNumber(yCoords[y]) + "] "
		for x := 0; x < xs; x++ {
			v, _ := t.Get(x, y) // in range by construction
			row[x+2] = " " + formatNumber(v) + " "
		}
		grid[y+1] = row
	}

	return grid
}

// alignColumns left-pads every cell to its column's widest cell and returns
// the total row width.
func alignColumns(grid [][]string) int {
	total := 0
	for col := range grid[0] {
		longest := 0
		for _, row := range grid {
			if w := runewidth.StringWidth(row[col]); w > longest {
				longest = w
			}
		}
		total += longest

		for _, row := range grid {
			if d := longest - runewidth.StringWidth(row[col]); d > 0 {
				row[col] = strings.Repeat(" ", d) + row[col]
			}
		}
	}

	return total
}
