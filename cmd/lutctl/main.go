// SPDX-License-Identifier: MIT

// Command lutctl inspects, edits and exercises the engine ignition timing
// table file.
//
//	lutctl init [--force]         write the default 12×12 table
//	lutctl show                   print the table layout
//	lutctl get X Y                print one cell by index
//	lutctl set X Y VALUE          change one cell and save if it changed
//	lutctl lookup RPM MAP         bilinear lookup by axis coordinates
//	lutctl simulate [--steps N]   run the engine model against the table
//
// Every command takes --file (default timing.tbl) and --verbose.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "lutctl:", err)
		stop()
		os.Exit(1)
	}
}
