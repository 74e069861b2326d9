// SPDX-License-Identifier: MIT

package lut

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a 64-bit xxhash of the dimensions and cell values.
// It follows the Equal contract: tables that are Equal have the same
// fingerprint, and coordinates, titles and path do not contribute.
// Different tables may collide; use Equal when certainty is required.
// Complexity: O(xSize*ySize) time, O(1) extra memory.
func (t *Table[T, U]) Fingerprint() uint64 {
	var buf [8]byte
	d := xxhash.New()

	binary.LittleEndian.PutUint64(buf[:], uint64(t.xSize))
	_, _ = d.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(t.ySize))
	_, _ = d.Write(buf[:])

	for _, v := range t.values {
		f := float64(v)
		if f == 0 {
			f = 0 // fold -0 onto +0, they compare equal
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}
