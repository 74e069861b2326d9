// Package textfmt_test contains encode/decode tests for the text layout.
package textfmt_test

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/katalvlaran/lookuptable/lut"
	"github.com/katalvlaran/lookuptable/textfmt"
	"github.com/stretchr/testify/require"
)

// rpmMap builds the 3×2 rpm/map table used across these tests.
func rpmMap(t *testing.T) *lut.Table[int, int] {
	t.Helper()
	tbl, err := lut.New[int, int](3, 2, "rpm", "map")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, tbl.SetXCoord(i, i))
	}
	require.NoError(t, tbl.SetYCoord(0, 10))
	require.NoError(t, tbl.SetYCoord(1, 20))
	vals := map[[2]int]int{{0, 0}: 5, {1, 0}: 6, {2, 0}: 7, {0, 1}: 8, {1, 1}: 9, {2, 1}: 10}
	for c, v := range vals {
		require.NoError(t, tbl.Set(c[0], c[1], v))
	}

	return tbl
}

const rpmMapText = "\n" +
	"              rpm\n" +
	"\n" +
	"            [0]  [1]  [2] \n" +
	"      [10]    5    6    7 \n" +
	" map  [20]    8    9   10 \n"

// TestEncodeLayout pins the exact layout: centring, alignment, title row.
func TestEncodeLayout(t *testing.T) {
	out, err := textfmt.Marshal(rpmMap(t))
	require.NoError(t, err)
	require.Equal(t, rpmMapText, out)
}

// TestEncodeSingleCell pins the 1×1 layout with empty titles.
func TestEncodeSingleCell(t *testing.T) {
	tbl, err := lut.New[int, int](1, 1, "", "")
	require.NoError(t, err)
	require.NoError(t, tbl.Set(0, 0, 42))

	out, err := textfmt.Marshal(tbl)
	require.NoError(t, err)
	require.Equal(t, "\n      \n\n        [0] \n   [0]   42 \n", out)
}

// TestEncodeRejectsTitles covers titles Decode could not read back.
func TestEncodeRejectsTitles(t *testing.T) {
	cases := []struct{ x, y string }{
		{"two\nlines", "map"},
		{"rpm", "m\rap"},
		{"rpm", "map [kPa]"},
		{"rpm", "100"},
		{"rpm", "%"},
		{"  rpm", "map"},
		{"rpm\t", "map"},
		{"rpm", "map "},
		{"rpm", " map"},
	}
	for _, tc := range cases {
		tbl, err := lut.New[int, int](2, 2, tc.x, tc.y)
		require.NoError(t, err)
		_, err = textfmt.Marshal(tbl)
		require.ErrorIs(t, err, textfmt.ErrUnencodableTitle, "x=%q y=%q", tc.x, tc.y)
	}
}

// TestEncodeNilTable ensures nil is an error, not a panic.
func TestEncodeNilTable(t *testing.T) {
	_, err := textfmt.Marshal[int, int](nil)
	require.ErrorIs(t, err, lut.ErrNilTable)
	require.ErrorIs(t, textfmt.Unmarshal[int, int](rpmMapText, nil), lut.ErrNilTable)
}

// TestRoundTripScenario encodes the 3×2 table and decodes it into a fresh one.
func TestRoundTripScenario(t *testing.T) {
	src := rpmMap(t)
	out, err := textfmt.Marshal(src)
	require.NoError(t, err)

	dst, err := lut.New[int, int](3, 2, "", "")
	require.NoError(t, err)
	require.NoError(t, textfmt.Unmarshal(out, dst))

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			want, _ := src.Get(x, y)
			got, err := dst.Get(x, y)
			require.NoError(t, err)
			require.Equal(t, want, got, "cell (%d,%d)", x, y)
		}
	}
	require.Equal(t, "rpm", dst.XTitle())
	require.Equal(t, "map", dst.YTitle())
	require.Equal(t, src.XCoords(), dst.XCoords())
	require.Equal(t, src.YCoords(), dst.YCoords())
	require.True(t, lut.Equal(src, dst))
}

// TestRoundTripSingleCell covers the 1×1 table holding 42.
func TestRoundTripSingleCell(t *testing.T) {
	src, err := lut.New[int, int](1, 1, "", "")
	require.NoError(t, err)
	require.NoError(t, src.Set(0, 0, 42))

	out, err := textfmt.Marshal(src)
	require.NoError(t, err)
	dst, err := lut.New[int, int](1, 1, "stale", "stale")
	require.NoError(t, err)
	require.NoError(t, textfmt.Unmarshal(out, dst))

	require.True(t, lut.Equal(src, dst))
	require.Empty(t, dst.XTitle())
	require.Empty(t, dst.YTitle())
}

// TestRoundTripSingleRowTitle puts the y title on the only row.
func TestRoundTripSingleRowTitle(t *testing.T) {
	src, err := lut.New[int, int](2, 1, "rpm", "map")
	require.NoError(t, err)
	require.NoError(t, src.Set(1, 0, 3))

	out, err := textfmt.Marshal(src)
	require.NoError(t, err)
	dst, err := lut.New[int, int](2, 1, "", "")
	require.NoError(t, err)
	require.NoError(t, textfmt.Unmarshal(out, dst))

	require.True(t, lut.Equal(src, dst))
	require.Equal(t, "map", dst.YTitle())
}

// TestRoundTripLongTitles mirrors a 10×10 table with long titles and sparse values.
func TestRoundTripLongTitles(t *testing.T) {
	src, err := lut.New[int, int](10, 10, "really long x title", "y (mm) ojojwef")
	require.NoError(t, err)
	cells := map[[2]int]int{{0, 3}: 3, {3, 3}: 33, {2, 3}: 23, {1, 3}: 13, {5, 5}: 55, {6, 6}: 66, {5, 9}: 59}
	for c, v := range cells {
		require.NoError(t, src.Set(c[0], c[1], v))
	}
	for i := 0; i < 10; i++ {
		require.NoError(t, src.SetXCoord(i, i))
		require.NoError(t, src.SetYCoord(i, i+95))
	}

	out, err := textfmt.Marshal(src)
	require.NoError(t, err)
	dst, err := lut.New[int, int](10, 10, "", "")
	require.NoError(t, err)
	require.NoError(t, textfmt.Unmarshal(out, dst))

	for c, v := range cells {
		got, err := dst.Get(c[0], c[1])
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
	require.True(t, lut.Equal(src, dst))
	require.Equal(t, "really long x title", dst.XTitle())
	require.Equal(t, "y (mm) ojojwef", dst.YTitle())
	require.Equal(t, src.YCoords(), dst.YCoords())
}

// TestRoundTripFloats checks exact float round trips for both bit sizes.
func TestRoundTripFloats(t *testing.T) {
	t.Run("float32 values, int coords", func(t *testing.T) {
		src, err := lut.New[float32, int](3, 3, "rpm", "map (%)")
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			require.NoError(t, src.SetXCoord(i, i*1000+1000))
			require.NoError(t, src.SetYCoord(i, 100-9*i))
		}
		src.Fill(func(_, _ int, xc, yc int) float32 {
			return float32(float64(xc)*0.0017474332648871 + float64(yc)*0.0030800821355236 + 5)
		})

		out, err := textfmt.Marshal(src)
		require.NoError(t, err)
		dst, err := lut.New[float32, int](3, 3, "", "")
		require.NoError(t, err)
		require.NoError(t, textfmt.Unmarshal(out, dst))
		require.True(t, lut.Equal(src, dst))
		require.Equal(t, "map (%)", dst.YTitle())
	})

	t.Run("float64 values and coords", func(t *testing.T) {
		src, err := lut.New[float64, float64](2, 2, "a", "b")
		require.NoError(t, err)
		require.NoError(t, src.SetXCoord(0, -0.1))
		require.NoError(t, src.SetXCoord(1, 1e21))
		require.NoError(t, src.SetYCoord(1, 1.0/3))
		require.NoError(t, src.Set(0, 0, -123.456))
		require.NoError(t, src.Set(1, 1, 2.0/3))

		out, err := textfmt.Marshal(src)
		require.NoError(t, err)
		dst, err := lut.New[float64, float64](2, 2, "", "")
		require.NoError(t, err)
		require.NoError(t, textfmt.Unmarshal(out, dst))
		require.True(t, lut.Equal(src, dst))
		require.Equal(t, src.XCoords(), dst.XCoords())
		require.Equal(t, src.YCoords(), dst.YCoords())
	})
}

// TestDecodeLenientInput accepts hand-edited text: odd spacing, unpaired
// brackets, CRLF line endings and trailing blank lines.
func TestDecodeLenientInput(t *testing.T) {
	text := "\r\n  rpm  \r\n\r\n[0 1] [2]\r\n [10] 5 6 7\r\n   map [20 8 9 10\r\n\r\n\n"
	dst, err := lut.New[int, int](3, 2, "", "")
	require.NoError(t, err)
	require.NoError(t, textfmt.Unmarshal(text, dst))

	require.True(t, lut.Equal(rpmMap(t), dst))
	require.Equal(t, "rpm", dst.XTitle())
	require.Equal(t, "map", dst.YTitle())
	require.Equal(t, []int{0, 1, 2}, dst.XCoords())
	require.Equal(t, []int{10, 20}, dst.YCoords())
}

// TestDecodeErrors covers the error taxonomy with line/token context.
func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		xs, ys int
		want   error
		line   int
	}{
		{"empty input", "", 3, 2, textfmt.ErrMalformedInput, 1},
		{"missing coordinates", "\nrpm\n\n", 3, 2, textfmt.ErrMalformedInput, 4},
		{"too few coordinates", "\nrpm\n\n [0] [1]\n [10] 5 6 7\n map [20] 8 9 10\n", 3, 2, textfmt.ErrMalformedInput, 4},
		{"too many coordinates", rpmMapText, 2, 2, textfmt.ErrShapeMismatch, 4},
		{"missing bracket", "\nrpm\n\n [0] [1] [2]\n 10 5 6 7\n map [20] 8 9 10\n", 3, 2, textfmt.ErrMalformedInput, 5},
		{"too few values", "\nrpm\n\n [0] [1] [2]\n [10] 5 6\n map [20] 8 9 10\n", 3, 2, textfmt.ErrMalformedInput, 5},
		{"too many values", "\nrpm\n\n [0] [1] [2]\n [10] 5 6 7 8\n map [20] 8 9 10\n", 3, 2, textfmt.ErrShapeMismatch, 5},
		{"too few rows", rpmMapText, 3, 3, textfmt.ErrShapeMismatch, 7},
		{"content after last row", rpmMapText, 3, 1, textfmt.ErrShapeMismatch, 6},
		{"bad value", "\nrpm\n\n [0] [1] [2]\n [10] 5 x 7\n map [20] 8 9 10\n", 3, 2, textfmt.ErrMalformedInput, 5},
		{"bad coordinate", "\nrpm\n\n [0] [one] [2]\n [10] 5 6 7\n map [20] 8 9 10\n", 3, 2, textfmt.ErrMalformedInput, 4},
		{"label after title found", "\nrpm\n\n [0] [1] [2]\n map [10] 5 6 7\n other [20] 8 9 10\n", 3, 2, textfmt.ErrMalformedInput, 6},
		{"short label after title found", "\nrpm\n\n [0] [1] [2]\n map [10] 5 6 7\n o [20] 8 9\n", 3, 2, textfmt.ErrMalformedInput, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dst, err := lut.New[int, int](tc.xs, tc.ys, "keep", "keep")
			require.NoError(t, err)
			require.NoError(t, dst.Set(0, 0, -1))

			err = textfmt.Unmarshal(tc.text, dst)
			require.ErrorIs(t, err, tc.want)

			var pe *textfmt.ParseError
			require.True(t, errors.As(err, &pe))
			require.Equal(t, tc.line, pe.Line)

			// failed decodes leave the table untouched
			v, _ := dst.Get(0, 0)
			require.Equal(t, -1, v)
			require.Equal(t, "keep", dst.XTitle())
		})
	}
}

// TestParseErrorDetails checks token context and cause exposure.
func TestParseErrorDetails(t *testing.T) {
	dst, err := lut.New[int, int](3, 2, "", "")
	require.NoError(t, err)

	err = textfmt.Unmarshal("\nrpm\n\n [0] [1] [2]\n [10] 5 x 7\n map [20] 8 9 10\n", dst)
	var pe *textfmt.ParseError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, 5, pe.Line)
	require.Equal(t, 3, pe.Column)
	require.Equal(t, "x", pe.Token)
	require.ErrorIs(t, err, strconv.ErrSyntax)
	require.EqualError(t, err, `Decode: textfmt: malformed input: line 5, token 3 "x": bad value: invalid syntax`)
}

// TestDecodeOverflow rejects values that do not fit the element type.
func TestDecodeOverflow(t *testing.T) {
	dst, err := lut.New[int8, uint8](1, 1, "", "")
	require.NoError(t, err)

	err = textfmt.Unmarshal("\n\n\n [1]\n [2] 300\n", dst)
	require.ErrorIs(t, err, textfmt.ErrMalformedInput)
	require.ErrorIs(t, err, strconv.ErrRange)

	err = textfmt.Unmarshal("\n\n\n [-1]\n [2] 3\n", dst)
	require.ErrorIs(t, err, textfmt.ErrMalformedInput)

	require.NoError(t, textfmt.Unmarshal("\n\n\n [255]\n [2] -128\n", dst))
	v, _ := dst.Get(0, 0)
	require.Equal(t, int8(-128), v)
}

// failingWriter fails every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// TestEncodeWriterError surfaces writer failures.
func TestEncodeWriterError(t *testing.T) {
	err := textfmt.Encode(failingWriter{}, rpmMap(t))
	require.EqualError(t, err, "Encode: disk full")
}

// TestDecodeReaderError surfaces reader failures over parse errors.
func TestDecodeReaderError(t *testing.T) {
	dst, err := lut.New[int, int](3, 2, "", "")
	require.NoError(t, err)

	errDisk := errors.New("disk gone")
	r := io.MultiReader(strings.NewReader("\nrpm\n"), iotest.ErrReader(errDisk))
	err = textfmt.Decode(r, dst)
	require.ErrorIs(t, err, errDisk)
	var pe *textfmt.ParseError
	require.False(t, errors.As(err, &pe))
	require.Empty(t, dst.XTitle())
}

// TestRoundTripWideTable reads back rows far longer than a default scanner
// buffer.
func TestRoundTripWideTable(t *testing.T) {
	const xs = 60000
	src, err := lut.New[float64, int](xs, 1, "rpm", "map")
	require.NoError(t, err)
	for i := 0; i < xs; i++ {
		require.NoError(t, src.SetXCoord(i, i))
	}
	src.Fill(func(x, _ int, _, _ int) float64 { return 0.1 + float64(x)*1.000000001e-7 })

	out, err := textfmt.Marshal(src)
	require.NoError(t, err)
	longest := 0
	for _, line := range strings.Split(out, "\n") {
		longest = max(longest, len(line))
	}
	require.Greater(t, longest, 1<<20)

	dst, err := lut.New[float64, int](xs, 1, "", "")
	require.NoError(t, err)
	require.NoError(t, textfmt.Unmarshal(out, dst))
	require.True(t, lut.Equal(src, dst))
	require.Equal(t, src.XCoords(), dst.XCoords())
	require.Equal(t, "map", dst.YTitle())
}

// TestDecodeTitleDetectedOnce takes the first labelled row as the y title
// and reads later rows as plain data.
func TestDecodeTitleDetectedOnce(t *testing.T) {
	dst, err := lut.New[int, int](3, 3, "", "")
	require.NoError(t, err)

	text := "\nrpm\n\n [0] [1] [2]\n boost [10] 5 6 7\n [20] 8 9 10\n [30] 1 2 3\n"
	require.NoError(t, textfmt.Unmarshal(text, dst))
	require.Equal(t, "boost", dst.YTitle())
	require.Equal(t, []int{10, 20, 30}, dst.YCoords())

	err = textfmt.Unmarshal("\nrpm\n\n [0] [1] [2]\n boost [10] 5 6 7\n [20] 8 9 10\n map [30] 1 2 3\n", dst)
	var pe *textfmt.ParseError
	require.True(t, errors.As(err, &pe))
	require.ErrorIs(t, err, textfmt.ErrMalformedInput)
	require.Equal(t, 7, pe.Line)
	require.Equal(t, "map", pe.Token)
	require.Equal(t, "boost", dst.YTitle(), "failed decode leaves the table untouched")
}
