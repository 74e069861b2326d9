// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/katalvlaran/lookuptable/enginesim"
	"github.com/katalvlaran/lookuptable/lutfile"
	"github.com/katalvlaran/lookuptable/textfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errFileExists refuses to overwrite a table without --force.
var errFileExists = errors.New("table file already exists (use --force to overwrite)")

func (a *app) initCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default timing table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := os.Stat(a.file); err == nil && !force {
				return fmt.Errorf("%s: %w", a.file, errFileExists)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			st, err := lutfile.NewStore(enginesim.DefaultTimingTable(), a.file, a.fileOpts()...)
			if err != nil {
				return err
			}
			if err = st.Save(); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "wrote %s\n", st.Path())

			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the table in its text layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}

			return textfmt.Encode(a.out, st.Table())
		},
	}
}

func (a *app) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get X Y",
		Short: "Print the cell at column X, row Y",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := parseIndices(args[0], args[1])
			if err != nil {
				return err
			}
			st, err := a.openStore()
			if err != nil {
				return err
			}
			v, err := st.Table().Get(x, y)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, strconv.FormatFloat(float64(v), 'g', -1, 32))

			return nil
		},
	}
}

func (a *app) setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set X Y VALUE",
		Short: "Change the cell at column X, row Y and save the table",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := parseIndices(args[0], args[1])
			if err != nil {
				return err
			}
			v, err := strconv.ParseFloat(args[2], 32)
			if err != nil {
				return fmt.Errorf("value %q: %w", args[2], err)
			}
			st, err := a.openStore()
			if err != nil {
				return err
			}
			if err = st.Table().Set(x, y, float32(v)); err != nil {
				return err
			}
			wrote, err := st.Sync()
			if err != nil {
				return err
			}
			if !wrote {
				fmt.Fprintln(a.out, "unchanged")
				return nil
			}
			fmt.Fprintf(a.out, "saved %s\n", st.Path())

			return nil
		},
	}
}

func (a *app) lookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup RPM MAP",
		Short: "Interpolate the table at axis coordinates",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xv, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("rpm %q: %w", args[0], err)
			}
			yv, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("map %q: %w", args[1], err)
			}
			st, err := a.openStore()
			if err != nil {
				return err
			}
			res, err := st.Table().Lookup(xv, yv)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "%.4f\n", res.Value)
			for _, s := range res.Samples {
				fmt.Fprintf(a.out, "  cell (%d,%d) weight %.4f\n", s.X, s.Y, s.Weight)
			}
			if res.Clamped {
				a.log.Warn("query outside table range, clamped to edge",
					zap.Float64("rpm", xv), zap.Float64("map", yv))
			}

			return nil
		},
	}
}

func (a *app) simulateCmd() *cobra.Command {
	var (
		steps    int
		interval time.Duration
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the engine model against the table (creating it if missing)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if steps < 0 || interval < 0 {
				return errors.New("--steps and --interval must be >= 0")
			}
			tbl, created, err := enginesim.LoadOrCreate(a.file, a.fileOpts()...)
			if err != nil {
				return err
			}
			if created {
				a.log.Info("created default timing table", zap.String("path", a.file))
			}

			eng, err := enginesim.NewEngine(tbl,
				enginesim.WithLogger(a.log),
				enginesim.WithInterval(interval),
				enginesim.WithMaxSteps(steps),
				enginesim.WithObserver(func(s enginesim.State) {
					fmt.Fprintf(a.out, "%d rpm=%.2f map=%.2f ignition=%.3f ideal=%.3f\n",
						s.Step, s.RPM, s.MAP, s.Ignition, s.IdealIgnition)
				}),
			)
			if err != nil {
				return err
			}

			err = eng.Run(cmd.Context())
			if errors.Is(err, context.Canceled) {
				return nil
			}

			return err
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 0, "stop after N steps (0 runs until interrupted)")
	cmd.Flags().DurationVar(&interval, "interval", enginesim.DefaultInterval, "pause between steps")

	return cmd
}

// parseIndices reads column and row indices.
func parseIndices(xs, ys string) (int, int, error) {
	x, err := strconv.Atoi(xs)
	if err != nil {
		return 0, 0, fmt.Errorf("x index %q: %w", xs, err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return 0, 0, fmt.Errorf("y index %q: %w", ys, err)
	}

	return x, y, nil
}
