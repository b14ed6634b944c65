package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/superstar-draft/internal/clients/catalog"
	"github.com/KirkDiggler/superstar-draft/internal/entities"
	"github.com/KirkDiggler/superstar-draft/internal/errors"
	"github.com/KirkDiggler/superstar-draft/internal/orchestrators/draft"
	"github.com/KirkDiggler/superstar-draft/internal/pkg/clock"
	"github.com/KirkDiggler/superstar-draft/internal/pkg/idgen"
	"github.com/KirkDiggler/superstar-draft/internal/redis"
	rostersnapshot "github.com/KirkDiggler/superstar-draft/internal/repositories/roster_snapshot"
)

const defaultSessionID = "default"

// app carries the flag values and the services built from them
type app struct {
	// Flags
	rosterPath    string
	sessionID     string
	redisEndpoint string
	stateDir      string
	budget        int64
	snapshotTTL   time.Duration
	logLevel      string

	service draft.Service
	session string
	stderr  io.Writer
	closers []func() error
}

func newRootCmd() *cobra.Command {
	return (&app{}).command()
}

// command builds the root command. Resources opened by a subcommand are
// released when it returns, whether or not it failed.
func (a *app) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "superstar-draft",
		Short: "Draft a superstar roster on a budget",
		Long: `superstar-draft manages a budgeted superstar draft: browse and filter the
catalog, draft and release superstars, and inspect completed teams, rivalries
and synergy bonuses. Progress is saved after every change.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.stderr = cmd.ErrOrStderr()
			return a.setupLogging(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.rosterPath, "roster", catalog.DefaultPath, "roster file (.json, .yaml or .yml)")
	flags.StringVar(&a.sessionID, "session", defaultSessionID, "session to resume; empty starts a new one")
	flags.StringVar(&a.redisEndpoint, "redis", "", "Redis endpoint (host:port or redis:// URL) for saved sessions")
	flags.StringVar(&a.stateDir, "state-dir", ".superstar-draft", "directory for saved sessions when --redis is not set; empty keeps them in memory")
	flags.Int64Var(&a.budget, "budget", entities.DefaultBudget, "starting budget for new sessions")
	flags.DurationVar(&a.snapshotTTL, "snapshot-ttl", 0, "expire saved Redis sessions after this long (0 keeps them)")
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	cmd.AddCommand(
		newListCmd(a),
		newValuesCmd(a),
		newDraftCmd(a),
		newUndraftCmd(a),
		newResetCmd(a),
		newRosterCmd(a),
		newInsightsCmd(a),
		newExportCmd(a),
		newSnapshotCmd(a),
		newRestoreCmd(a),
		newForgetCmd(a),
	)

	for _, sub := range cmd.Commands() {
		sub.RunE = a.closing(sub.RunE)
	}

	return cmd
}

func (a *app) closing(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if cerr := a.close(); err == nil {
			err = cerr
		}
		return err
	}
}

func (a *app) setupLogging(cmd *cobra.Command) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return errors.InvalidArgumentf("invalid log level %q", a.logLevel).
			WithMeta("log_level", a.logLevel)
	}

	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return nil
}

// open loads the catalog, wires the snapshot store and starts the session
func (a *app) open(ctx context.Context) error {
	if a.service != nil {
		return nil
	}
	if a.budget <= 0 {
		return errors.InvalidArgumentf("budget must be positive, got %d", a.budget).
			WithMeta("budget", a.budget)
	}

	loader, err := catalog.NewFileLoader(&catalog.Config{Path: a.rosterPath})
	if err != nil {
		return err
	}
	cat, err := loader.Load(ctx)
	if err != nil {
		return err
	}

	repo, err := a.snapshotRepository()
	if err != nil {
		return err
	}

	service, err := draft.NewOrchestrator(&draft.Config{
		Catalog:       cat,
		SnapshotRepo:  repo,
		IDGenerator:   idgen.NewUUID("session"),
		InitialBudget: a.budget,
		SnapshotTTL:   a.snapshotTTL,
	})
	if err != nil {
		return err
	}

	started, err := service.StartSession(ctx, &draft.StartSessionInput{SessionID: a.sessionID})
	if err != nil {
		return err
	}

	if started.Discarded && a.stderr != nil {
		fmt.Fprintf(a.stderr, "Warning: saved roster for session %s could not be restored and was discarded\n",
			started.Roster.SessionID)
	}

	a.service = service
	a.session = started.Roster.SessionID
	return nil
}

func (a *app) snapshotRepository() (rostersnapshot.Repository, error) {
	switch {
	case a.redisEndpoint != "":
		client, err := redis.NewClient(a.redisEndpoint, nil)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Close)

		return rostersnapshot.NewRedisRepository(&rostersnapshot.Config{
			Client: client,
			Clock:  clock.New(),
		})
	case a.stateDir != "":
		return rostersnapshot.NewFileRepository(&rostersnapshot.FileConfig{
			Dir:   a.stateDir,
			Clock: clock.New(),
		})
	default:
		return rostersnapshot.NewInMemory(clock.New()), nil
	}
}

func (a *app) close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}
