// Command trainroute is an interactive route planner for Ticket to Ride
// boards.
//
//	trainroute [-config trainroute.toml] [-map USA|path/to/board.txt]
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/trainroute/internal/config"
	"github.com/katalvlaran/trainroute/internal/logging"
	"github.com/katalvlaran/trainroute/internal/shell"
	"github.com/katalvlaran/trainroute/routegraph"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "trainroute: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("trainroute", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", config.DefaultPath, "path to the TOML configuration")
	mapArg := fs.String("map", "", "map name from the configuration, or a map file path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadOrDefault(*cfgPath)
	if err != nil {
		return err
	}
	logger, err := logging.New("trainroute", cfg.LogLevel, stderr)
	if err != nil {
		return err
	}

	in := bufio.NewScanner(stdin)
	entry, ok := config.MapEntry{}, true
	switch {
	case *mapArg != "":
		entry, ok = cfg.Lookup(*mapArg)
		if !ok {
			entry, ok = config.MapEntry{Name: *mapArg, Path: *mapArg}, true
		}
	case len(cfg.Maps) == 0:
		return fmt.Errorf("no maps configured; pass -map")
	default:
		entry, ok = shell.ChooseMap(in, stdout, cfg.Maps)
	}
	if !ok {
		fmt.Fprintln(stdout, "Goodbye!")
		return nil
	}

	g, err := routegraph.LoadMapFile(entry.Path)
	if err != nil {
		return err
	}
	logger.Info().
		Str("map", entry.Name).
		Str("path", entry.Path).
		Int("cities", g.CityCount()).
		Msg("board loaded")

	sh := shell.New(g, in, stdout,
		shell.WithLogger(logger),
		shell.WithTrainBudget(cfg.TrainBudget),
		shell.WithPrompt(cfg.Prompt),
	)

	return sh.Run()
}
