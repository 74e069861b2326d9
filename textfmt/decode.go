// SPDX-License-Identifier: MIT
// Package: textfmt
//
// Decode reads the layout written by Encode into a table whose dimensions
// are already fixed; the text never resizes the table.
//
// Line grammar (1-based line numbers):
//  1. ignored (blank above the x title)
//  2. x title, trimmed
//  3. ignored (blank below the x title)
//  4. x coordinates: whitespace tokens, each unbracketed
//  5. YSize rows: [label] [y coordinate] value × XSize
//
// The y title is searched for row by row (DetectYTitle) until one row
// reveals it; the search then stops for the rest of the table.

package textfmt

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lookuptable/lut"
)

// decoded holds parse results until the whole text has been accepted.
type decoded[T, U lut.Number] struct {
	xTitle, yTitle   string
	xCoords, yCoords []U
	values           []T // row-major, len XSize*YSize
}

// lineReader numbers lines as it reads them. Lines have no length limit,
// so anything Encode writes can be read back.
type lineReader struct {
	br   *bufio.Reader
	line int
	err  error // first read failure, io.EOF at end of input
}

func (lr *lineReader) next() (string, bool) {
	if lr.err != nil {
		return "", false
	}
	s, err := lr.br.ReadString('\n')
	if err != nil {
		lr.err = err
		if err != io.EOF || s == "" {
			return "", false
		}
	}
	lr.line++
	s = strings.TrimSuffix(s, "\n")

	return strings.TrimSuffix(s, "\r"), true
}

// readErr returns the read failure, if any; reaching the end is not one.
func (lr *lineReader) readErr() error {
	if lr.err == io.EOF {
		return nil
	}

	return lr.err
}

// Decode parses the text layout from r into t.
// Implementation:
//   - Stage 1: read and check the three header lines and the x coordinate line.
//   - Stage 2: read YSize rows, detecting the y title on the way.
//   - Stage 3: reject non-blank trailing content.
//   - Stage 4: commit titles, coordinates and values to t.
//
// Behavior highlights:
//   - t is modified only when the whole text is valid.
//   - Titles are replaced: a text without a detectable y title yields "".
//
// Errors:
//   - *ParseError wrapping ErrMalformedInput or ErrShapeMismatch.
//   - lut.ErrNilTable, or the reader's error.
//
// Complexity:
//   - Time O(len(text)), Space O(XSize*YSize).
func Decode[T, U lut.Number](r io.Reader, t *lut.Table[T, U]) error {
	if err := lut.ValidateNotNil(t); err != nil {
		return textfmtErrorf("Decode", err)
	}

	lr := &lineReader{br: bufio.NewReader(r)}

	d, err := parse[T, U](lr, t.XSize(), t.YSize())
	if rerr := lr.readErr(); rerr != nil {
		err = rerr // a read failure explains any parse failure it caused
	}
	if err != nil {
		return textfmtErrorf("Decode", err)
	}

	commit(t, d)

	return nil
}

// Unmarshal parses s into t; see Decode.
func Unmarshal[T, U lut.Number](s string, t *lut.Table[T, U]) error {
	return Decode(strings.NewReader(s), t)
}

// parse runs Stages 1-3 of Decode.
func parse[T, U lut.Number](lr *lineReader, xs, ys int) (*decoded[T, U], error) {
	d := &decoded[T, U]{
		xCoords: make([]U, xs),
		yCoords: make([]U, ys),
		values:  make([]T, xs*ys),
	}

	header := [3]string{"blank line above x title", "x title", "blank line below x title"}
	for i, what := range header {
		line, ok := lr.next()
		if !ok {
			return nil, malformed(lr.line+1, 0, "", "missing "+what, nil)
		}
		if i == 1 {
			d.xTitle = Trim(line, true)
		}
	}

	line, ok := lr.next()
	if !ok {
		return nil, malformed(lr.line+1, 0, "", "missing x coordinates", nil)
	}
	if err := parseXCoords(d.xCoords, line, lr.line); err != nil {
		return nil, err
	}

	titleFound := false
	for y := 0; y < ys; y++ {
		line, ok = lr.next()
		if !ok {
			return nil, mismatch(lr.line+1, 0, "", "expected a row for y index "+strconv.Itoa(y))
		}
		if strings.TrimSpace(line) == "" {
			return nil, mismatch(lr.line, 0, "", "blank line where the row for y index "+strconv.Itoa(y)+" was expected")
		}

		if !titleFound {
			title, rest, found, err := DetectYTitle(line)
			if err != nil {
				return nil, malformed(lr.line, 0, "", "missing '[' bracket to denote y coordinates", nil)
			}
			if found {
				d.yTitle, line, titleFound = title, rest, true
			}
		}

		if err := parseRow(d, y, xs, line, lr.line); err != nil {
			return nil, err
		}
	}

	for {
		line, ok = lr.next()
		if !ok {
			break
		}
		if strings.TrimSpace(line) != "" {
			return nil, mismatch(lr.line, 0, "", "content after the last row")
		}
	}

	return d, nil
}

// parseXCoords fills dst from the x coordinate line.
func parseXCoords[U lut.Number](dst []U, line string, lineNo int) error {
	tokens := strings.Fields(line)
	if len(tokens) < len(dst) {
		return malformed(lineNo, 0, "", "want "+strconv.Itoa(len(dst))+" x coordinates, got "+strconv.Itoa(len(tokens)), nil)
	}
	if len(tokens) > len(dst) {
		return mismatch(lineNo, len(dst)+1, tokens[len(dst)], "more x coordinates than columns")
	}

	for i, tok := range tokens {
		c, err := parseNumber[U](Unbracket(tok))
		if err != nil {
			return malformed(lineNo, i+1, tok, "bad x coordinate", err)
		}
		dst[i] = c
	}

	return nil
}

// parseRow fills y coordinate y and row y of values from one table row
// whose label column, if any, has already been removed. The y coordinate
// is checked first, so a stray label is reported as malformed rather than
// as an extra column.
func parseRow[T, U lut.Number](d *decoded[T, U], y, xs int, line string, lineNo int) error {
	tokens := strings.Fields(line)

	yc, err := parseNumber[U](Unbracket(tokens[0]))
	if err != nil {
		return malformed(lineNo, 1, tokens[0], "bad y coordinate", err)
	}
	if len(tokens) < xs+1 {
		return malformed(lineNo, 0, "", "want y coordinate and "+strconv.Itoa(xs)+" values, got "+strconv.Itoa(len(tokens))+" tokens", nil)
	}
	if len(tokens) > xs+1 {
		return mismatch(lineNo, xs+2, tokens[xs+1], "more values than columns")
	}
	d.yCoords[y] = yc

	base := y * xs
	for x := 0; x < xs; x++ {
		v, err := parseNumber[T](tokens[x+1])
		if err != nil {
			return malformed(lineNo, x+2, tokens[x+1], "bad value", err)
		}
		d.values[base+x] = v
	}

	return nil
}

// commit copies accepted results into t. Indices are in range by construction.
func commit[T, U lut.Number](t *lut.Table[T, U], d *decoded[T, U]) {
	t.SetXTitle(d.xTitle)
	t.SetYTitle(d.yTitle)
	for i, c := range d.xCoords {
		_ = t.SetXCoord(i, c)
	}
	for i, c := range d.yCoords {
		_ = t.SetYCoord(i, c)
	}
	t.Fill(func(x, y int, _, _ U) T { return d.values[y*t.XSize()+x] })
}
