// SPDX-License-Identifier: MIT
// Package: lutfile
//
// Path resolution, shared by Load and Save:
//   - A non-empty path argument is used and becomes the table's
//     associated path (Table.SetPath), even if the operation then fails.
//   - An empty path argument falls back to Table.Path().
//   - If both are empty the result is ErrNoPath.
//
// Each call opens a single file handle and closes it on every exit path.

package lutfile

import (
	"bufio"
	"errors"
	"os"

	"github.com/katalvlaran/lookuptable/lut"
	"github.com/katalvlaran/lookuptable/textfmt"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// resolvePath applies the path resolution rules above.
func resolvePath[T, U lut.Number](t *lut.Table[T, U], path string) (string, error) {
	if path != "" {
		t.SetPath(path)
		return path, nil
	}
	if t.Path() == "" {
		return "", ErrNoPath
	}

	return t.Path(), nil
}

// Load reads the table file at path (or the table's associated path) into t.
// The table's dimensions must match the file; see textfmt.Decode.
//
// Errors:
//   - lut.ErrNilTable, ErrNoPath.
//   - ErrIO wrapping the *fs.PathError on open/read failure.
//   - textfmt.ErrMalformedInput / textfmt.ErrShapeMismatch from decoding.
func Load[T, U lut.Number](t *lut.Table[T, U], path string, opts ...Option) error {
	if err := lut.ValidateNotNil(t); err != nil {
		return fileErrorf("Load", path, err)
	}
	o := gatherOptions(opts...)

	path, err := resolvePath(t, path)
	if err != nil {
		return fileErrorf("Load", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return ioErrorf("Load", path, err)
	}
	defer f.Close() // read-only handle; close errors carry no data loss

	if err = textfmt.Decode(f, t); err != nil {
		var pe *textfmt.ParseError
		if errors.As(err, &pe) {
			return fileErrorf("Load", path, err)
		}
		return ioErrorf("Load", path, err)
	}

	o.logger.Debug("table loaded",
		zap.String("path", path),
		zap.Int("x_size", t.XSize()),
		zap.Int("y_size", t.YSize()),
	)

	return nil
}

// Save writes t to path (or the table's associated path), replacing any
// existing content. The text is the textfmt layout followed by one newline.
// Encoding happens before the file is touched, so an unencodable table
// never truncates an existing file.
//
// Errors:
//   - lut.ErrNilTable, ErrNoPath, textfmt.ErrUnencodableTitle.
//   - ErrIO on create/write/close failure; write and close errors are combined.
func Save[T, U lut.Number](t *lut.Table[T, U], path string, opts ...Option) error {
	if err := lut.ValidateNotNil(t); err != nil {
		return fileErrorf("Save", path, err)
	}
	o := gatherOptions(opts...)

	path, err := resolvePath(t, path)
	if err != nil {
		return fileErrorf("Save", path, err)
	}

	text, err := textfmt.Marshal(t)
	if err != nil {
		return fileErrorf("Save", path, err)
	}

	n, err := writeFile(path, text+"\n", o.mode)
	if err != nil {
		return ioErrorf("Save", path, err)
	}

	o.logger.Debug("table saved", zap.String("path", path), zap.Int("bytes", n))

	return nil
}

// writeFile creates or truncates path and writes text through a buffer.
// The close error is reported even when the write succeeded.
func writeFile(path, text string, mode os.FileMode) (n int, err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return 0, err
	}
	defer func() { err = multierr.Append(err, f.Close()) }()

	w := bufio.NewWriter(f)
	if n, err = w.WriteString(text); err != nil {
		return n, err
	}

	return n, w.Flush()
}
