package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sadopc/sugr/internal/config"
	"github.com/sadopc/sugr/internal/store"
	"github.com/sadopc/sugr/internal/tui"
)

var (
	dbPath  string
	jsonOut bool
	logger  *slog.Logger
	cfg     *config.Config

	// nowFunc is the reference clock for every command.
	nowFunc = time.Now
)

type commandContext struct {
	correlationID uuid.UUID
	startedAt     time.Time
}

type commandContextKey struct{}

var rootCmd = &cobra.Command{
	Use:   "sugr",
	Short: "sugr tracks refined sugar intake from your terminal",
	Long: `sugr is a local-first sugar intake tracker. Run it without arguments
for the interactive dashboard, or use the subcommands for scripting.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logger == nil {
			logger = slog.Default()
		}
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		info := commandContext{
			correlationID: uuid.New(),
			startedAt:     time.Now(),
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		cmd.SetContext(context.WithValue(ctx, commandContextKey{}, info))
		logger.Info("command start",
			"command", cmd.CommandPath(),
			"correlation_id", info.correlationID.String(),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		info, ok := cmd.Context().Value(commandContextKey{}).(commandContext)
		if !ok {
			return
		}
		logger.Info("command end",
			"command", cmd.CommandPath(),
			"correlation_id", info.correlationID.String(),
			"duration_ms", time.Since(info.startedAt).Milliseconds(),
		)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store, loc *time.Location) error {
			app := tui.NewApp(s, tui.Options{
				Location:  loc,
				Now:       nowFunc,
				ExportDir: cfg.ExportDir,
				Logger:    logger,
			})
			p := tea.NewProgram(app, tea.WithAltScreen())
			_, err := p.Run()
			return err
		})
	},
}

// Execute runs the root command with file logging configured.
func Execute() {
	if loaded, err := config.Load(); err == nil {
		l, closer := newFileLogger(loaded)
		defer closer.Close()
		SetLogger(l)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database (default $SUGR_DB_PATH)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Print machine-readable JSON")
}

// SetLogger sets the CLI logger.
func SetLogger(l *slog.Logger) {
	logger = l
}

// newFileLogger writes to the configured log file, since the dashboard owns
// the terminal. Logging is dropped when the file cannot be opened.
func newFileLogger(c *config.Config) (*slog.Logger, io.Closer) {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if err := os.MkdirAll(filepath.Dir(c.LogFile), 0o755); err == nil {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			return slog.New(slog.NewTextHandler(f, opts)), f
		}
	}
	return slog.New(slog.NewTextHandler(io.Discard, opts)), io.NopCloser(nil)
}
