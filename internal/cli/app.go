package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-daily-diary/internal/adapter"
	"github.com/MKhiriev/go-daily-diary/internal/config"
	"github.com/MKhiriev/go-daily-diary/internal/logger"
	"github.com/MKhiriev/go-daily-diary/models"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// AdapterFactory builds the server adapter once the connection flags are parsed.
type AdapterFactory func(cfg config.Adapter, hashKey string, logger *logger.Logger) (adapter.ServerAdapter, error)

// App holds the client configuration and the collaborators shared by all
// commands of one invocation.
type App struct {
	cfg        config.ClientConfig
	build      models.AppBuildInfo
	newAdapter AdapterFactory
	copyText   func(string) error
	now        func() time.Time

	adapter adapter.ServerAdapter
	session sessionFile

	logger *logger.Logger
}

// Option customises an [App].
type Option func(*App)

// WithAdapterFactory replaces the REST adapter constructor.
func WithAdapterFactory(factory AdapterFactory) Option {
	return func(a *App) {
		a.newAdapter = factory
	}
}

// WithClipboard replaces the system clipboard writer used by export --copy.
func WithClipboard(copyText func(string) error) Option {
	return func(a *App) {
		a.copyText = copyText
	}
}

// WithClock replaces the wall clock used for default months.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

// NewApp creates the client application from cfg.
func NewApp(cfg *config.ClientConfig, build models.AppBuildInfo, logger *logger.Logger, opts ...Option) *App {
	a := &App{
		cfg:        *cfg,
		build:      build,
		newAdapter: adapter.NewHTTPServerAdapter,
		copyText:   clipboard.WriteAll,
		now:        time.Now,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Execute runs the command line args and prints a readable error to stderr
// on failure.
func (a *App) Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	root := a.Command()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err != nil {
		a.logger.Err(err).Str("func", "*App.Execute").Msg("command failed")
		st := newStyles(stderr)
		fmt.Fprintln(stderr, st.errorLine(userMessage(err)))
	}
	return err
}

// Command builds the root command with every subcommand attached.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:   "diary",
		Short: "Daily journal client",
		Long: `diary is the command-line client of the daily journal server.

QUICK START:

  $ diary register --login alice          # create an account (remote backend)
  $ diary day                             # show today's entry
  $ diary save 2024-01-10 --file day.json # store an entry from JSON
  $ diary stats                           # statistics and streaks
  $ diary search coffee                   # full-text search
  $ diary export --from 2024-01-01 --to 2024-01-31 --format markdown`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.connect,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfg.Adapter.BaseURL, "address", "a", a.cfg.Adapter.BaseURL, "diary server address")
	flags.StringVar(&a.cfg.Adapter.SessionFile, "session", a.cfg.Adapter.SessionFile, "file holding the session token")
	flags.DurationVar(&a.cfg.Adapter.RequestTimeout, "timeout", a.cfg.Adapter.RequestTimeout, "request timeout")
	flags.StringVarP(&a.cfg.HashKey, "key", "k", a.cfg.HashKey, "key used to sign saved entries")

	root.AddCommand(
		a.registerCommand(),
		a.loginCommand(),
		a.logoutCommand(),
		a.dayCommand(),
		a.saveCommand(),
		a.listCommand(),
		a.favoriteCommand(),
		a.historyCommand(),
		a.favoritesCommand(),
		a.timelineCommand(),
		a.statsCommand(),
		a.searchCommand(),
		a.exportCommand(),
		a.prefsCommand(),
		a.versionCommand(),
	)
	return root
}

// connect creates the adapter and restores the saved session token.
func (a *App) connect(cmd *cobra.Command, _ []string) error {
	serverAdapter, err := a.newAdapter(a.cfg.Adapter, a.cfg.HashKey, a.logger)
	if err != nil {
		return fmt.Errorf("connect to %q: %w", a.cfg.Adapter.BaseURL, err)
	}
	a.adapter = serverAdapter
	a.session = sessionFile{path: a.cfg.Adapter.SessionFile}

	token, err := a.session.Load()
	if err != nil {
		// a broken session file must not block login
		a.logger.Warn().Err(err).Str("func", "*App.connect").Msg("session file is unreadable")
		return nil
	}
	if token != "" {
		a.adapter.SetToken(token)
	}

	a.logger.Debug().
		Str("func", "*App.connect").
		Str("command", cmd.CommandPath()).
		Str("address", a.cfg.Adapter.BaseURL).
		Bool("session", token != "").
		Msg("client connected")
	return nil
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "not authorized: run `diary login` (" + err.Error() + ")"
	case errors.Is(err, adapter.ErrConflict):
		return "login is already taken"
	case errors.Is(err, adapter.ErrInvalidAddress):
		return "invalid server address: " + err.Error()
	case errors.Is(err, adapter.ErrInternalServerError):
		return "server error, try again later"
	default:
		return err.Error()
	}
}
