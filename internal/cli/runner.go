package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/grid/internal/config"
	"github.com/idilsaglam/grid/internal/export"
	"github.com/idilsaglam/grid/internal/grid"
	"github.com/idilsaglam/grid/internal/logging"
	"github.com/idilsaglam/grid/internal/store"
	"github.com/idilsaglam/grid/internal/tui"
	"github.com/idilsaglam/grid/internal/ui"
	"github.com/idilsaglam/grid/internal/validate"
)

// Options come from the root flags and override the config file.
type Options struct {
	ConfigPath string
	Theme      string
	Rows       int // < 0 keeps the configured seed_rows
	Print      bool
}

// runTUI is swapped in tests so the router can be exercised without a terminal.
var runTUI = tui.Run

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0
	case "edit", "check", "export":
	default:
		ui.Fail("unknown subcommand: " + cmd)
		PrintHelp()
		return 2
	}

	cfg, err := loadConfig(opt)
	if err != nil {
		ui.Fail(err.Error())
		return 2
	}
	ui.SetTheme(cfg.Theme)

	switch cmd {
	case "edit":
		return doEdit(cfg, opt)
	case "check":
		if len(a) == 0 {
			ui.Fail("usage: grid check <title...>")
			return 2
		}
		return doCheck(strings.Join(a, " "))
	default:
		return doExport(cfg, a)
	}
}

func PrintHelp() {
	ui.Println(`grid - an editable table in the terminal

Usage:
  grid [flags] <subcommand> [args]

Subcommands:
  edit                 Open the interactive grid
  export [-o file] [-compact]
                       Print the seeded rows as JSON, or write them to a file
  check <title...>     Run the activity title rules against a value

Flags:
  -config <file>       TOML config (default $GRID_CONFIG)
  -theme <name>        classic | neon | mono
  -rows <n>            Number of seeded rows
  -print               Print the final rows as JSON when edit exits

Examples:
  grid edit
  grid -rows 5 export -o rows.json
  grid check "release 2024"`)
}

func loadConfig(opt Options) (config.Config, error) {
	cfg, err := config.Load(opt.ConfigPath)
	if err != nil {
		return cfg, err
	}
	if opt.Theme != "" {
		cfg.Theme = opt.Theme
	}
	if opt.Rows >= 0 {
		cfg.SeedRows = opt.Rows
	}
	return cfg, cfg.Validate()
}

// newStore builds the seeded store every subcommand starts from.
func newStore(cfg config.Config, l *log.Logger) *store.Store {
	s := store.New(store.WithLogger(l))
	s.Seed(cfg.SeedRows, cfg.StartEditing)
	return s
}

func doEdit(cfg config.Config, opt Options) int {
	logger := logging.Discard()
	if cfg.LogFile != "" {
		l, closer, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			ui.Fail(err.Error())
			return 1
		}
		defer closer.Close()
		logger = l
	}
	logger.Info("starting grid", "rows", cfg.SeedRows, "theme", cfg.Theme)

	d := grid.NewDispatcher(newStore(cfg, logger), logger)
	records, err := runTUI(d, cfg)
	if err != nil {
		logger.Error("tui exited", "err", err)
		ui.Fail("tui: " + err.Error())
		return 1
	}
	logger.Info("grid closed", "rows", len(records))
	if opt.Print {
		ui.Println(export.Text(records, cfg.JSONIndent))
	}
	return 0
}

func doCheck(title string) int {
	col, _ := grid.Lookup(grid.FieldTitle)
	failed := false
	for _, res := range validate.Run(col.Rules, title) {
		if res.Pass {
			ui.OK(res.Rule)
			continue
		}
		failed = true
		ui.Fail(res.Rule + ": " + res.Message)
	}
	if failed {
		return 1
	}
	return 0
}

func doExport(cfg config.Config, args []string) int {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	out := fs.String("o", "", "write the JSON to this file")
	compact := fs.Bool("compact", false, "no indentation")
	if err := fs.Parse(args); err != nil {
		ui.Fail("export: " + err.Error())
		return 2
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		ui.Fail(err.Error())
		return 2
	}
	indent := cfg.JSONIndent
	if *compact {
		indent = 0
	}

	records := newStore(cfg, logger).All()
	b, err := export.JSON(records, indent)
	if err == nil {
		err = export.Validate(b)
	}
	if err != nil {
		ui.Fail("export: " + err.Error())
		return 1
	}

	if *out == "" {
		ui.Println(string(b))
		return 0
	}
	if err := export.WriteFile(*out, records, indent); err != nil {
		var pe *os.PathError
		if errors.As(err, &pe) {
			ui.Fail(fmt.Sprintf("export: cannot write %s", pe.Path))
		} else {
			ui.Fail("export: " + err.Error())
		}
		return 1
	}
	ui.OK(fmt.Sprintf("wrote %d rows to %s", len(records), *out))
	return 0
}
