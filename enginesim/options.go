// SPDX-License-Identifier: MIT
// Package enginesim: functional configuration for the engine run loop.

package enginesim

import (
	"math"
	"time"

	"go.uber.org/zap"
)

// Defaults (single source of truth).
const (
	// DefaultInterval is the pause between simulation steps.
	DefaultInterval = 500 * time.Microsecond

	// DefaultMaxSteps of 0 runs until the context is cancelled.
	DefaultMaxSteps = 0

	// DefaultStartRPM and DefaultStartMAP are the initial engine state.
	DefaultStartRPM = 1000.0
	DefaultStartMAP = 100.0
)

const (
	panicNilLogger       = "enginesim: WithLogger: logger must be non-nil"
	panicNegativeInterval = "enginesim: WithInterval: interval must be >= 0"
	panicNegativeSteps   = "enginesim: WithMaxSteps: steps must be >= 0"
	panicStartInvalid    = "enginesim: WithStart: rpm and map must be finite"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	logger   *zap.Logger
	interval time.Duration
	maxSteps int
	observer func(State)
	startRPM float64
	startMAP float64
}

// WithLogger routes step and run events to l. The default discards them.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithInterval sets the pause between steps; 0 runs steps back to back.
func WithInterval(d time.Duration) Option {
	if d < 0 {
		panic(panicNegativeInterval)
	}

	return func(o *Options) { o.interval = d }
}

// WithMaxSteps stops Run after n steps; 0 means unbounded.
func WithMaxSteps(n int) Option {
	if n < 0 {
		panic(panicNegativeSteps)
	}

	return func(o *Options) { o.maxSteps = n }
}

// WithObserver calls fn with the state after every step of Run.
func WithObserver(fn func(State)) Option {
	return func(o *Options) { o.observer = fn }
}

// WithStart sets the initial rpm and manifold pressure.
func WithStart(rpm, mapPct float64) Option {
	if math.IsNaN(rpm) || math.IsInf(rpm, 0) || math.IsNaN(mapPct) || math.IsInf(mapPct, 0) {
		panic(panicStartInvalid)
	}

	return func(o *Options) { o.startRPM, o.startMAP = rpm, mapPct }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		logger:   zap.NewNop(),
		interval: DefaultInterval,
		maxSteps: DefaultMaxSteps,
		startRPM: DefaultStartRPM,
		startMAP: DefaultStartMAP,
	}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
