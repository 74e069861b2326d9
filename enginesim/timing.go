// SPDX-License-Identifier: MIT

package enginesim

import (
	"errors"
	"io/fs"

	"github.com/katalvlaran/lookuptable/lut"
	"github.com/katalvlaran/lookuptable/lutfile"
)

// TimingTable is the ignition timing map: float32 degrees over integer
// rpm (x) and manifold pressure percentage (y) coordinates.
type TimingTable = lut.Table[float32, int]

// Default timing table shape and rudimentary starting values.
const (
	TableSize = 12

	rpmTitle = "rpm"
	mapTitle = "map (%)"

	rpmCoeff = 0.0017474332648871
	mapCoeff = 0.0030800821355236
	baseAdv  = 5
)

// DefaultTimingTable builds the 12×12 starting map: rpm 1000..12000 in
// steps of 1000, map 100 down to 1 in steps of 9, and a linear advance
// value = rpm*rpmCoeff + map*mapCoeff + 5 degrees.
func DefaultTimingTable() *TimingTable {
	t, _ := lut.New[float32, int](TableSize, TableSize, rpmTitle, mapTitle) // constant size ≥ 1
	for i := 0; i < TableSize; i++ {
		_ = t.SetXCoord(i, i*1000+1000)
		_ = t.SetYCoord(i, i*(-100/11)+100)
	}
	t.Fill(func(_, _ int, xc, yc int) float32 {
		return float32(float64(xc)*rpmCoeff + float64(yc)*mapCoeff + baseAdv)
	})

	return t
}

// LoadOrCreate loads the timing table at path. When the file does not
// exist it builds DefaultTimingTable, saves it to path and reports
// created=true. Any other failure (including a malformed file) is
// returned as is; an existing file is never overwritten.
func LoadOrCreate(path string, opts ...lutfile.Option) (t *TimingTable, created bool, err error) {
	t, _ = lut.New[float32, int](TableSize, TableSize, "", "")

	err = lutfile.Load(t, path, opts...)
	if err == nil {
		return t, false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, false, err
	}

	t = DefaultTimingTable()
	if err = lutfile.Save(t, path, opts...); err != nil {
		return nil, false, err
	}

	return t, true, nil
}
