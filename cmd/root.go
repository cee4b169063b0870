package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"chat-agent/config"
	"chat-agent/database"
	"chat-agent/logging"
	"chat-agent/providers"
	"chat-agent/services"
	"chat-agent/tools"
)

var rootCmd = &cobra.Command{
	Use:   "chat-agent",
	Short: "Routes chat messages to weather, stock and sports lookups or general chat",
	// Serving is the default action
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newAskCmd())
}

// app holds the wired application and the resources to release on exit
type app struct {
	cfg      *config.Config
	logger   *logrus.Logger
	provider providers.Provider
	agent    *services.Agent
	db       *sql.DB
}

// Close releases the provider client and database connection
func (a *app) Close() {
	if closer, ok := a.provider.(io.Closer); ok {
		closer.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
}

// newProvider builds the completion provider; tests replace it
var newProvider = providers.New

// newApp loads configuration and wires the provider, tool source and agent
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := logging.Setup(logrus.StandardLogger(), cfg.LogLevel, cfg.LogFormat)

	provider, err := newProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger, provider: provider}

	source, err := a.openSource(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"provider":    provider.Name(),
		"tool_source": cfg.ToolSource,
	}).Info("Agent configured")

	a.agent = services.NewAgent(provider, tools.DefaultRegistry(source), logger)
	return a, nil
}

// openSource returns the configured tool data source. The postgres source
// keeps its connection on a so Close releases it.
func (a *app) openSource(ctx context.Context) (tools.Source, error) {
	if a.cfg.ToolSource != "postgres" {
		return tools.MockSource{}, nil
	}

	db, err := database.Connect(ctx, a.cfg.DSN(), 30)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	a.db = db
	if err := database.RunMigrations(ctx, db); err != nil {
		return nil, err
	}
	return database.NewLookupStore(db), nil
}
