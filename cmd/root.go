package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dkovalev/sensory/collector"
	"github.com/dkovalev/sensory/config"
	"github.com/dkovalev/sensory/engine"
	"github.com/dkovalev/sensory/model"
	"github.com/dkovalev/sensory/ui"
)

// Version is set at build time via ldflags.
var Version = "0.2.0"

// Options holds CLI configuration.
type Options struct {
	Interval   time.Duration
	WatchMode  bool
	WatchCount int
	JSONMode   bool
	Command    string
	NoFallback bool
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `sensory v%s — live hardware sensor viewer for the terminal

Usage:
  sensory [OPTIONS] [INTERVAL_MS]

Modes:
  (default)         Interactive TUI (bubbletea, fullscreen)
  -watch            CLI output mode — prints to terminal with auto-refresh
  -json             Single JSON snapshot to stdout, then exit
  -version          Print version and exit

Options:
  -interval N       Refresh interval in milliseconds (default: 500)
  -command NAME     Sensor command to run (default: sensors)
  -count N          Number of iterations for -watch mode (0 = infinite)
  -no-fallback      Disable the gopsutil fallback when the command is missing
  -save-config      Write the effective settings to the config file and exit

Positional:
  INTERVAL_MS       First positional arg sets interval: sensory 1000

Examples:
  sensory                            Interactive TUI, 500ms refresh
  sensory 2000                       Interactive TUI, 2s refresh
  sensory -watch                     CLI mode, auto-refresh
  sensory -watch -count 1            One reading, then exit
  sensory -json | jq '.sections[].name'
  sensory -version
`, Version)
}

// Run parses flags and starts the application.
func Run() error {
	cfg := config.Load()

	var opts Options
	var intervalMS int
	var showVersion bool
	var saveConfig bool

	flag.IntVar(&intervalMS, "interval", cfg.IntervalMS, "Refresh interval in milliseconds")
	flag.StringVar(&opts.Command, "command", cfg.Command, "Sensor command to run")
	flag.BoolVar(&opts.WatchMode, "watch", false, "CLI output mode (no TUI, prints to terminal)")
	flag.IntVar(&opts.WatchCount, "count", 0, "Number of iterations for -watch (0=infinite)")
	flag.BoolVar(&opts.JSONMode, "json", false, "Output a single JSON snapshot and exit")
	flag.BoolVar(&opts.NoFallback, "no-fallback", false, "Disable gopsutil fallback source")
	flag.BoolVar(&saveConfig, "save-config", false, "Write the effective settings to the config file and exit")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")

	flag.Usage = printUsage
	flag.Parse()

	if showVersion {
		fmt.Printf("sensory v%s\n", Version)
		return nil
	}

	// Support positional arg for interval: `sensory 1000` = `sensory -interval 1000`
	if args := flag.Args(); len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			intervalMS = n
		}
	}
	if intervalMS <= 0 {
		intervalMS = config.Default().IntervalMS
	}
	opts.Interval = time.Duration(intervalMS) * time.Millisecond

	if saveConfig {
		cfg.IntervalMS = intervalMS
		cfg.Command = opts.Command
		if opts.NoFallback {
			cfg.Fallback = false
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", config.Path())
		return nil
	}

	eng := engine.New(newSource(opts, cfg))

	if opts.JSONMode {
		return runJSON(eng)
	}
	if opts.WatchMode {
		return runWatch(eng, opts)
	}

	model := ui.NewModel(eng, opts.Interval)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// newSource picks the command source, or the gopsutil fallback when the
// command is not installed and the fallback is allowed.
func newSource(opts Options, cfg config.Config) collector.Source {
	src := collector.NewCommandSource(opts.Command, cfg.Args...)
	if src.Available() {
		return src
	}
	if !opts.NoFallback && cfg.Fallback {
		fmt.Fprintf(os.Stderr, "Warning: %q not found on PATH, using gopsutil fallback\n", opts.Command)
		return collector.FallbackSource{}
	}
	return src
}

// runJSON outputs a single snapshot as JSON and exits.
func runJSON(eng *engine.Engine) error {
	return writeJSON(os.Stdout, eng.Tick(), eng.Source().Name())
}

// writeJSON encodes one snapshot: a "sections" key on success, an "error"
// key holding the message otherwise, never both.
func writeJSON(w io.Writer, snap *model.Snapshot, source string) error {
	data := map[string]interface{}{
		"timestamp": snap.Timestamp.Format(time.RFC3339),
		"source":    source,
	}
	if snap.Err != nil {
		data["error"] = snap.Err.Error()
	} else {
		data["sections"] = snap.Sections
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
