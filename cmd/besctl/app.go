package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"airbnbes/internal/config"
	"airbnbes/pkg/api"
	"airbnbes/pkg/session"
	"airbnbes/pkg/telemetry"
)

// app wires configuration, telemetry, the API client, and the session
// manager for the command handlers.
type app struct {
	cfg      config.Config
	client   *api.Client
	session  *session.Manager
	logger   *log.Logger
	shutdown func(context.Context) error
}

func newApp(ctx context.Context, configPath string) (*app, error) {
	if configPath == "" {
		if p, err := config.DefaultPath(); err == nil {
			configPath = p
		}
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	shutdown, logger, err := telemetry.Init(ctx, "besctl", cfg.OTLPEndpoint)
	if err != nil {
		return nil, err
	}

	sessionFile := cfg.SessionFile
	if sessionFile == "" {
		sessionFile, err = session.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	store := session.NewStore(sessionFile)

	// The token source and the unauthorized hook close over the manager,
	// which is constructed right after the client it depends on.
	var manager *session.Manager
	client, err := api.New(cfg.APIBaseURL,
		api.WithHTTPClient(&http.Client{
			Timeout:   cfg.RequestTimeout,
			Transport: telemetry.Transport(nil),
		}),
		api.WithTokenSource(func() string {
			if manager == nil {
				return ""
			}
			return manager.Token()
		}),
		api.WithUnauthorizedHook(func() {
			if manager != nil && manager.Invalidate() {
				fmt.Fprintln(os.Stderr, "Session expired. Please log in again.")
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	manager, err = session.NewManager(client, store, logger)
	if err != nil {
		return nil, err
	}
	if err := manager.Restore(); err != nil {
		logger.Printf("restore session: %v", err)
	}

	return &app{
		cfg:      cfg,
		client:   client,
		session:  manager,
		logger:   logger,
		shutdown: shutdown,
	}, nil
}

func (a *app) close() {
	if err := a.shutdown(context.Background()); err != nil {
		a.logger.Printf("telemetry shutdown: %v", err)
	}
}

// requireUser returns the logged-in user or an instruction to log in.
func (a *app) requireUser() (session.User, error) {
	user, ok := a.session.Current()
	if !ok {
		return session.User{}, errors.New("not logged in; run besctl login first")
	}
	return user, nil
}

// requireAdmin returns the logged-in user when it is an administrator.
func (a *app) requireAdmin() (session.User, error) {
	user, err := a.requireUser()
	if err != nil {
		return session.User{}, err
	}
	if !user.IsAdmin() {
		return session.User{}, errors.New("this command requires an administrator session")
	}
	return user, nil
}

// run builds the app for a command invocation and tears it down afterwards.
func run(cmd *cobra.Command, configPath *string, fn func(ctx context.Context, a *app) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := newApp(ctx, *configPath)
	if err != nil {
		return err
	}
	defer a.close()
	return fn(ctx, a)
}

func formatMoney(v float64) string {
	return "R$ " + humanize.Commaf(v)
}
