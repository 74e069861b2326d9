// SPDX-License-Identifier: MIT

package lutfile

import (
	"errors"
	"fmt"
)

var (
	// ErrIO indicates a file open, read, write or close failure. The
	// underlying *fs.PathError stays reachable through errors.Is/As, so
	// errors.Is(err, fs.ErrNotExist) identifies a missing file.
	ErrIO = errors.New("lutfile: i/o failure")

	// ErrNoPath indicates neither an explicit path nor the table's
	// associated path was available.
	ErrNoPath = errors.New("lutfile: no file path")
)

// ioErrorf tags err as an I/O failure of operation op on path.
func ioErrorf(op, path string, err error) error {
	return fmt.Errorf("%s %q: %w: %w", op, path, ErrIO, err)
}

// fileErrorf wraps a non-I/O err with operation and path context.
func fileErrorf(op, path string, err error) error {
	return fmt.Errorf("%s %q: %w", op, path, err)
}
