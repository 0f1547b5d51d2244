package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alexanderramin/pathwise/internal/cli"
	"github.com/alexanderramin/pathwise/internal/credential"
	"github.com/alexanderramin/pathwise/internal/db"
	"github.com/alexanderramin/pathwise/internal/llm"
	"github.com/alexanderramin/pathwise/internal/planner"
	"github.com/alexanderramin/pathwise/internal/repository"
	"github.com/mattn/go-isatty"
)

// buildAPIKey is an optional key baked in at build time:
//
//	go build -ldflags "-X main.buildAPIKey=..." ./cmd/pathwise
var buildAPIKey string

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dbPath, err := db.DefaultPath()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())

	llmCfg, err := llm.LoadConfig()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file next to the database.
	var logFile io.Writer
	if interactive {
		f, err := openLogFile(filepath.Join(filepath.Dir(dbPath), "pathwise.log"))
		if err != nil {
			return err
		}
		defer f.Close()
		logFile = f
	}
	observer, useCases := newObservers(llmCfg, logFile, os.Stderr)

	settings := repository.NewSQLiteSettingRepo(database)
	keys := credential.DefaultChain(settings, buildAPIKey)
	client := llm.NewGeminiClient(llmCfg, observer)

	app := &cli.App{
		Planner: planner.NewPlanService(client, keys, useCases),
		Keeper:  credential.NewKeeper(settings),
		Keys:    keys,
		IsInteractive: func() bool {
			return interactive
		},
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}

// newObservers picks where call telemetry goes. With a log file, every plan
// request is recorded there and raw LLM calls only when LogCalls is set.
// Without one, stderr gets both only when LogCalls is set.
func newObservers(cfg llm.LLMConfig, logFile, stderr io.Writer) (llm.Observer, planner.UseCaseObserver) {
	if logFile != nil {
		var observer llm.Observer = llm.NoopObserver{}
		if cfg.LogCalls {
			observer = llm.NewLogObserver(logFile)
		}
		return observer, planner.NewLogUseCaseObserver(logFile)
	}
	if cfg.LogCalls {
		return llm.NewLogObserver(stderr), planner.NewLogUseCaseObserver(stderr)
	}
	return llm.NoopObserver{}, planner.NoopUseCaseObserver{}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}
