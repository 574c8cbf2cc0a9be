package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"raisingsims/internal/config"
	"raisingsims/internal/pet"
	"raisingsims/internal/status"
	"raisingsims/internal/ui"
)

const version = "0.1.0"

type options struct {
	configPath  string
	showStats   bool
	showVersion bool
}

// parseFlags reads the command line. Usage goes to usage only when help
// is requested; other parse errors are returned to the caller.
func parseFlags(args []string, usage io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("vpet", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.configPath, "config", config.DefaultPath(), "path to config file")
	fs.BoolVar(&opts.showStats, "stats", false, "show stats of the running pet and exit")
	fs.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(usage, "Usage of vpet:")
			fs.SetOutput(usage)
			fs.PrintDefaults()
		}
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

// setupLogging sends the standard logger to the configured file
func setupLogging(cfg *config.Config) (io.Closer, error) {
	if !cfg.Log.Enabled {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Log.Path), 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := tea.LogToFile(cfg.Log.Path, "vpet")
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

func showStats(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), status.DefaultTimeout)
	defer cancel()

	snap, err := status.NewClient(cfg.StatusURL(), status.DefaultTimeout).Fetch(ctx)
	if err != nil {
		return fmt.Errorf("is a pet running? %w", err)
	}
	return ui.DisplayStats(snap)
}

func play(cfg *config.Config) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	board := pet.NewBoard()
	p := pet.NewPet(cfg.Pet.Name, loc)

	if cfg.Status.Enabled {
		srv, err := status.Start(cfg.Status.Addr, board)
		if err != nil {
			// The game works without the status surface
			log.Printf("Status server unavailable: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				if err := srv.Shutdown(ctx); err != nil {
					log.Printf("%v", err)
				}
			}()
		}
	}

	program := tea.NewProgram(ui.NewModel(p, board, loc))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func run(args []string) error {
	opts, err := parseFlags(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if opts.showVersion {
		fmt.Printf("vpet %s\n", version)
		return nil
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	closer, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	if opts.showStats {
		return showStats(cfg)
	}
	return play(cfg)
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
