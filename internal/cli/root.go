// Package cli provides the command-line interface for staffgraph.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/staffgraph/staffgraph/internal/config"
	"github.com/staffgraph/staffgraph/internal/db"
	"github.com/staffgraph/staffgraph/internal/matching"
	"github.com/staffgraph/staffgraph/internal/metrics"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	cfgFile string
	verbose bool

	// Global config and db client
	cfg       config.Config
	logger    *slog.Logger
	logCleanup func() error
	dbClient  *db.Client
	collector = metrics.NewCollector()
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "staffgraph",
	Short: "Skill-based staffing over a property graph",
	Long: `Staffgraph matches people to open RFPs by skill fit and projected
availability, and converts accepted RFPs into staffed projects.

The graph holds people, skills, RFPs and projects; matching is a pure
read, conversion a single atomic transaction.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip DB connection for version and help commands
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		level := cfg.Level()
		if verbose {
			level = slog.LevelDebug
		}
		logger, logCleanup = config.SetupLogger(cfg.LogFile, level)
		slog.SetDefault(logger)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.QueryTimeout)
		defer cancel()

		dbClient, err = db.NewClient(ctx, db.Config{
			URL:       cfg.SurrealDBURL,
			Namespace: cfg.SurrealDBNamespace,
			Database:  cfg.SurrealDBDatabase,
			Username:  cfg.SurrealDBUser,
			Password:  cfg.SurrealDBPass,
			AuthLevel: cfg.SurrealDBAuthLevel,
		}, logger)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}

		if err := dbClient.InitSchema(ctx); err != nil {
			return fmt.Errorf("initialize schema: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if dbClient != nil {
			if err := dbClient.Close(context.Background()); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close database: %v\n", err)
			}
		}
		if logCleanup != nil {
			_ = logCleanup()
		}
	},
}

// getService builds the matching service on the connected client.
func getService() *matching.Service {
	return matching.NewService(dbClient, logger, collector)
}

// requestContext returns a context bounded by the configured query timeout.
func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), cfg.QueryTimeout)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: env only)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(rfpsCmd)
	rootCmd.AddCommand(programmersCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}
