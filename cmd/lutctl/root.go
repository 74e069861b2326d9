// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/katalvlaran/lookuptable/enginesim"
	"github.com/katalvlaran/lookuptable/lut"
	"github.com/katalvlaran/lookuptable/lutfile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultFile is the timing table path used without --file.
const DefaultFile = "timing.tbl"

// app carries flag values and the logger shared by all commands.
type app struct {
	file    string
	verbose bool
	out     io.Writer
	errOut  io.Writer
	log     *zap.Logger
}

// newRootCmd assembles the command tree. out receives command output,
// errOut receives log lines.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "lutctl",
		Short:         "Inspect and exercise an ignition timing lookup table",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			a.log = newLogger(a.errOut, a.verbose)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.file, "file", "f", DefaultFile, "timing table file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		a.initCmd(),
		a.showCmd(),
		a.getCmd(),
		a.setCmd(),
		a.lookupCmd(),
		a.simulateCmd(),
	)

	return root
}

// newLogger builds a development console logger writing to w.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)

	return zap.New(core).Named("lutctl")
}

// fileOpts forwards the command logger to lutfile.
func (a *app) fileOpts() []lutfile.Option {
	return []lutfile.Option{lutfile.WithLogger(a.log)}
}

// openStore loads the existing timing table file.
func (a *app) openStore() (*lutfile.Store[float32, int], error) {
	t, err := lut.New[float32, int](enginesim.TableSize, enginesim.TableSize, "", "")
	if err != nil {
		return nil, err
	}
	st, err := lutfile.NewStore(t, a.file, a.fileOpts()...)
	if err != nil {
		return nil, err
	}
	if err = st.Load(); err != nil {
		return nil, err
	}

	return st, nil
}
