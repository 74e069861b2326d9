// SPDX-License-Identifier: MIT
// Package: enginesim
//
// The engine model is a toy feedback loop, not a combustion model:
//
//	ideal  = rpm/220 - map/10 + 60/11
//	actual = timing.Lookup(rpm, map)
//	map    = max(0, map - |ideal - actual|)
//	rpm    = map - (m*rpm + b),  m = -109/110, b = -100/11
//
// A well tuned table keeps |ideal - actual| small, so manifold pressure
// decays slowly. Each Step applies one round of these equations.

package enginesim

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Feedback line coefficients.
const (
	slopeM     = -109.0 / 110.0
	interceptB = -100.0 / 11.0
)

// ErrNilTable is returned by NewEngine for a nil timing table.
var ErrNilTable = errors.New("enginesim: nil timing table")

// State is the engine state after one step.
type State struct {
	Step          int     // 1-based step counter
	RPM           float64 // engine speed after the step
	MAP           float64 // manifold pressure (%) after the step
	Ignition      float64 // advance looked up from the timing table
	IdealIgnition float64 // advance the model wanted
	Clamped       bool    // the lookup point fell outside the table
}

// Drift is |IdealIgnition - Ignition|, the pressure lost in this step.
func (s State) Drift() float64 { return math.Abs(s.IdealIgnition - s.Ignition) }

// Engine steps the model against a timing table.
// It is not safe for concurrent use; Run owns the engine until it returns.
type Engine struct {
	table  *TimingTable
	opts   Options
	log    *zap.Logger
	runID  uuid.UUID
	rpm    float64
	mapPct float64
	steps  int
}

// NewEngine creates an engine reading advance values from table.
// The table is read on every step, so edits between steps take effect.
func NewEngine(table *TimingTable, opts ...Option) (*Engine, error) {
	if table == nil {
		return nil, ErrNilTable
	}
	o := gatherOptions(opts...)
	id := uuid.New()

	return &Engine{
		table:  table,
		opts:   o,
		log:    o.logger.With(zap.String("run_id", id.String())),
		runID:  id,
		rpm:    o.startRPM,
		mapPct: o.startMAP,
	}, nil
}

// RunID identifies this engine in log output.
func (e *Engine) RunID() uuid.UUID { return e.runID }

// State returns the current state without stepping.
func (e *Engine) State() State {
	return State{Step: e.steps, RPM: e.rpm, MAP: e.mapPct}
}

// Step advances the model once.
//
// Errors:
//   - lut.ErrNaN if the state has diverged to NaN.
//   - lut.ErrNonMonotonicAxis if the table axes are not monotonic.
func (e *Engine) Step() (State, error) {
	ideal := e.rpm/220 - e.mapPct/10 + 60.0/11.0

	res, err := e.table.Lookup(e.rpm, e.mapPct)
	if err != nil {
		return State{}, fmt.Errorf("enginesim: step %d: %w", e.steps+1, err)
	}
	actual := res.Value

	e.mapPct -= math.Abs(ideal - actual)
	if e.mapPct < 0 {
		e.mapPct = 0
	}
	e.rpm = e.mapPct - (slopeM*e.rpm + interceptB)
	e.steps++

	s := State{
		Step:          e.steps,
		RPM:           e.rpm,
		MAP:           e.mapPct,
		Ignition:      actual,
		IdealIgnition: ideal,
		Clamped:       res.Clamped,
	}
	e.log.Debug("engine step",
		zap.Int("step", s.Step),
		zap.Float64("rpm", s.RPM),
		zap.Float64("map", s.MAP),
		zap.Float64("ignition", s.Ignition),
		zap.Float64("ideal_ignition", s.IdealIgnition),
		zap.Bool("clamped", s.Clamped),
	)

	return s, nil
}

// Run steps the engine every interval until MaxSteps is reached, a step
// fails, or ctx is done. Reaching MaxSteps returns nil; cancellation
// returns ctx.Err(). The observer, if any, sees every state.
func (e *Engine) Run(ctx context.Context) error {
	e.log.Info("engine run started",
		zap.Duration("interval", e.opts.interval),
		zap.Int("max_steps", e.opts.maxSteps),
	)

	var tick <-chan time.Time
	if e.opts.interval > 0 {
		t := time.NewTicker(e.opts.interval)
		defer t.Stop()
		tick = t.C
	}

	for n := 0; e.opts.maxSteps == 0 || n < e.opts.maxSteps; n++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				return e.stopped(ctx.Err())
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return e.stopped(err)
		}

		s, err := e.Step()
		if err != nil {
			return e.stopped(err)
		}
		if e.opts.observer != nil {
			e.opts.observer(s)
		}
	}

	return e.stopped(nil)
}

func (e *Engine) stopped(err error) error {
	fields := []zap.Field{zap.Int("steps", e.steps), zap.Float64("rpm", e.rpm), zap.Float64("map", e.mapPct)}
	switch {
	case err == nil:
		e.log.Info("engine run finished", fields...)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		e.log.Info("engine run cancelled", append(fields, zap.Error(err))...)
	default:
		e.log.Error("engine run failed", append(fields, zap.Error(err))...)
	}

	return err
}
