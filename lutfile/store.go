// SPDX-License-Identifier: MIT

package lutfile

import (
	"github.com/cespare/xxhash/v2"
	"github.com/katalvlaran/lookuptable/lut"
	"github.com/katalvlaran/lookuptable/textfmt"
	"go.uber.org/zap"
)

// Store binds a table to its file and remembers what was last read or
// written, so Sync can skip writes when nothing changed.
//
// Change detection hashes the full encoded text (xxhash), so edits to
// titles and coordinates count as changes too, unlike Table.Fingerprint.
//
// Like the table it wraps, a Store is not safe for concurrent use.
type Store[T, U lut.Number] struct {
	table  *lut.Table[T, U]
	opts   []Option
	log    *zap.Logger
	synced uint64 // xxhash of the text last loaded or saved
	known  bool   // synced is valid
}

// NewStore binds t to path. An empty path keeps t's associated path;
// the path may still be unset until the first Load or Save.
func NewStore[T, U lut.Number](t *lut.Table[T, U], path string, opts ...Option) (*Store[T, U], error) {
	if err := lut.ValidateNotNil(t); err != nil {
		return nil, fileErrorf("NewStore", path, err)
	}
	if path != "" {
		t.SetPath(path)
	}

	return &Store[T, U]{
		table: t,
		opts:  opts,
		log:   gatherOptions(opts...).logger,
	}, nil
}

// Table returns the bound table.
func (s *Store[T, U]) Table() *lut.Table[T, U] { return s.table }

// Path returns the bound file path.
func (s *Store[T, U]) Path() string { return s.table.Path() }

// Load reads the file into the table and marks the result as synced.
func (s *Store[T, U]) Load() error {
	if err := Load(s.table, "", s.opts...); err != nil {
		return err
	}
	s.mark()
	s.log.Info("table loaded", zap.String("path", s.Path()), zap.Uint64("fingerprint", s.table.Fingerprint()))

	return nil
}

// Save writes the table unconditionally and marks it as synced.
func (s *Store[T, U]) Save() error {
	if err := Save(s.table, "", s.opts...); err != nil {
		return err
	}
	s.mark()
	s.log.Info("table saved", zap.String("path", s.Path()), zap.Uint64("fingerprint", s.table.Fingerprint()))

	return nil
}

// Sync saves the table only if it changed since the last Load or Save.
// It reports whether a write happened.
func (s *Store[T, U]) Sync() (bool, error) {
	dirty, err := s.Dirty()
	if err != nil {
		return false, err
	}
	if !dirty {
		s.log.Debug("table unchanged, skipping save", zap.String("path", s.Path()))
		return false, nil
	}

	return true, s.Save()
}

// Dirty reports whether the table differs from what was last loaded or
// saved. A Store that has never synced is dirty.
func (s *Store[T, U]) Dirty() (bool, error) {
	if !s.known {
		return true, nil
	}
	h, err := s.textHash()
	if err != nil {
		return false, err
	}

	return h != s.synced, nil
}

func (s *Store[T, U]) mark() {
	if h, err := s.textHash(); err == nil {
		s.synced, s.known = h, true
	}
}

func (s *Store[T, U]) textHash() (uint64, error) {
	text, err := textfmt.Marshal(s.table)
	if err != nil {
		return 0, fileErrorf("Store", s.Path(), err)
	}

	return xxhash.Sum64String(text), nil
}
