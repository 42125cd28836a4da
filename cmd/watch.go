package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dkovalev/sensory/engine"
	"github.com/dkovalev/sensory/model"
)

// ── ANSI color/style codes ──────────────────────────────────────────────────

const (
	R = "\033[0m" // reset
	B = "\033[1m" // bold
	D = "\033[2m" // dim

	FRed = "\033[31m"
	FGrn = "\033[32m"
	FYel = "\033[33m"
	FCyn = "\033[36m"

	clearScreen = "\033[2J\033[H"
)

// runWatch prints snapshots to the terminal on the refresh cadence until
// interrupted or the iteration count is reached.
func runWatch(eng *engine.Engine, opts Options) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()

	for i := 0; ; {
		snap := eng.Tick()
		fmt.Print(clearScreen)
		printSnapshot(os.Stdout, snap)

		i++
		if opts.WatchCount > 0 && i >= opts.WatchCount {
			return nil
		}
		select {
		case <-sig:
			fmt.Println()
			return nil
		case <-ticker.C:
		}
	}
}

// printSnapshot writes one snapshot in the same section/entry layout the TUI
// uses, with plain ANSI styling.
func printSnapshot(w io.Writer, snap *model.Snapshot) {
	fmt.Fprintf(w, "%ssensory%s  %s%s%s\n\n", B+FCyn, R, D, snap.Timestamp.Format("15:04:05"), R)

	if snap.Err != nil {
		fmt.Fprintf(w, "%sError: %v%s\n", B+FRed, snap.Err, R)
		return
	}

	for _, s := range snap.Sections {
		fmt.Fprintf(w, "%s%s%s", B+FCyn, s.Name, R)
		if s.Adapter != "" {
			fmt.Fprintf(w, "  %sAdapter: %s%s", D, s.Adapter, R)
		}
		fmt.Fprintln(w)
		for _, e := range s.Entries {
			fmt.Fprintf(w, "  %-24s %s%-14s%s", e.Key+":", FGrn, e.Value, R)
			if e.AdditionalInfo != "" {
				fmt.Fprintf(w, " %s(%s)%s", FYel, e.AdditionalInfo, R)
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w)
	}
}
