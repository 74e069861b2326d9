// SPDX-License-Identifier: MIT
// Package lutfile: functional configuration for file persistence.
//
// Design goals:
//   - No global state: each call resolves its own Options.
//   - Safe by construction: WithX panics only on nonsensical values
//     (programmer error), never on user data.

package lutfile

import (
	"os"

	"go.uber.org/zap"
)

// DefaultFileMode is the permission used when Save creates a file.
const DefaultFileMode os.FileMode = 0o644

const (
	panicNilLogger   = "lutfile: WithLogger: logger must be non-nil"
	panicInvalidMode = "lutfile: WithFileMode: mode must contain permission bits only"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	logger *zap.Logger
	mode   os.FileMode
}

// WithLogger routes persistence events to l. The default discards them.
// Panics if l is nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithFileMode sets the permission bits for newly created files.
// Existing files keep their mode. Panics on non-permission bits.
func WithFileMode(m os.FileMode) Option {
	if m&^os.ModePerm != 0 {
		panic(panicInvalidMode)
	}

	return func(o *Options) { o.mode = m }
}

// gatherOptions applies user options over the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		logger: zap.NewNop(),
		mode:   DefaultFileMode,
	}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
