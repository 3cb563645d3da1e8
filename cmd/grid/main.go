package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/grid/internal/cli"
)

func main() {
	// Root flags (apply to every subcommand)
	configPath := flag.String("config", "", "TOML config file")
	theme := flag.String("theme", "", "classic | neon | mono")
	rows := flag.Int("rows", -1, "number of seeded rows")
	printRows := flag.Bool("print", false, "print rows as JSON when edit exits")
	flag.Parse()

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		os.Exit(2)
	}

	code := cli.Run(args, cli.Options{
		ConfigPath: *configPath,
		Theme:      *theme,
		Rows:       *rows,
		Print:      *printRows,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
