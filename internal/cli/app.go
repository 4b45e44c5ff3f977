package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/jonaszobl/weight-loss-service/internal/config"
	"github.com/jonaszobl/weight-loss-service/internal/store"
	"github.com/jonaszobl/weight-loss-service/internal/tracker"
)

// dotenvFile is read from the working directory on every start.
const dotenvFile = ".env"

// app holds what the commands need once configuration is loaded.
type app struct {
	homeDir string
	cfg     config.Config
	logger  *log.Logger
	store   store.Store
	tracker *tracker.Tracker
}

func openApp(cmd *cobra.Command) (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(homeDir, dotenvFile)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	s, err := store.Open(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("store opened", "backend", cfg.Backend, "data_dir", cfg.DataDir)

	return &app{
		homeDir: homeDir,
		cfg:     cfg,
		logger:  logger,
		store:   s,
		tracker: tracker.New(s, cfg.Secret, tracker.WithLogger(logger)),
	}, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warn("closing store", "err", err)
	}
}

// withApp opens the app around a command and closes the store afterwards.
func withApp(run func(cmd *cobra.Command, args []string, a *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()
		return run(cmd, args, a)
	}
}

func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: "mealweek"})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// interactiveKit returns huh prompts when stdin is a terminal and an empty
// kit otherwise, so scripted runs fail on missing input instead of hanging.
func interactiveKit(cmd *cobra.Command) PromptKit {
	if !isTerminal(cmd.InOrStdin()) {
		return PromptKit{}
	}
	return NewPromptKit()
}
