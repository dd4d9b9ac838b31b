package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"ems-cli/api"
	"ems-cli/auth"
	"ems-cli/config"
	"ems-cli/logger"
	"ems-cli/session"
	"ems-cli/supabase"
)

// app holds everything a command needs, built once per invocation
type app struct {
	cfg        config.Config
	paths      config.Paths
	repo       session.Repository
	authorizer *session.Authorizer
	client     api.ClientInterface
	auth       *auth.AuthService
	in         *bufio.Reader
	stdin      *os.File
	out        io.Writer
	log        zerolog.Logger
	closers    []io.Closer
}

// newApp loads configuration, sets up logging and wires the session store,
// API client and auth service. The interactive interface logs to a file
// because it owns the terminal.
func newApp(cmd *cobra.Command, flags *rootFlags, interactive bool) (*app, error) {
	if err := config.LoadEnv(); err != nil {
		return nil, err
	}

	paths, err := resolvePaths(flags.home)
	if err != nil {
		return nil, err
	}
	cfg, err := config.NewConfigManager(paths).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	a := &app{
		cfg:   cfg,
		paths: paths,
		in:    bufio.NewReader(cmd.InOrStdin()),
		out:   cmd.OutOrStdout(),
	}
	if f, ok := cmd.InOrStdin().(*os.File); ok {
		a.stdin = f
	}

	switch {
	case interactive:
		closer, err := logger.InitFile(cfg.LogLevel, cfg.LogFormat, paths.LogFile())
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, closer)
	case flags.verbose:
		logger.Init("debug", cfg.LogFormat, cmd.ErrOrStderr())
	default:
		logger.Init("warn", cfg.LogFormat, cmd.ErrOrStderr())
	}
	a.log = logger.Component("cli")

	a.repo = newSessionRepository(cfg, paths, flags.ephemeral)
	a.authorizer = session.NewAuthorizer(a.repo)
	client := api.NewClient(cfg.BaseURL, a.authorizer, cfg.RequestTimeout)
	a.client = client

	provider, err := newAuthProvider(cfg, client)
	if err != nil {
		return nil, err
	}
	a.auth = auth.NewAuthService(provider, a.repo)

	a.log.Debug().
		Str("base_url", cfg.BaseURL).
		Str("session_backend", cfg.SessionBackend).
		Str("auth_backend", cfg.AuthBackend).
		Msg("configured")
	return a, nil
}

func (a *app) close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}

func resolvePaths(home string) (config.Paths, error) {
	if home != "" {
		return config.Paths{Home: home}, nil
	}
	return config.DefaultPaths()
}

func newSessionRepository(cfg config.Config, paths config.Paths, ephemeral bool) session.Repository {
	if ephemeral {
		return session.NewMemoryRepository()
	}
	if cfg.SessionBackend == config.SessionBackendKeyring {
		return session.NewKeyringRepository()
	}
	return session.NewFileRepository(paths.SessionFile())
}

func newAuthProvider(cfg config.Config, client *api.Client) (auth.Provider, error) {
	if cfg.AuthBackend != config.AuthBackendSupabase {
		return client, nil
	}
	sb, err := supabase.NewSupabaseClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}
	return auth.NewSupabaseProvider(sb), nil
}

