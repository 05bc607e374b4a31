// Package cli implements the barbacoa command tree.
package cli

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"barbacoa-pos/internal/config"
	"barbacoa-pos/internal/gateway"
	"barbacoa-pos/internal/usecase"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

var (
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "barbacoa",
	Short:         "Point-of-sale reports and end-of-day cash closing",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		log.SetLevel(logLevel(cfg.Log.Level))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the YAML config file")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func logLevel(level string) log.Lvl {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	}
	return log.INFO
}

// app holds the wired usecases for one command invocation.
type app struct {
	db      *sql.DB
	repo    *gateway.PostgresRepository
	corte   *usecase.CorteUseCase
	reports *usecase.ReportUseCase
	ledger  *usecase.LedgerUseCase
	catalog *usecase.CatalogUseCase
}

// openApp is replaced in tests to run commands without a database.
var openApp = newApp

func newApp(ctx context.Context) (*app, error) {
	db, err := gateway.OpenPostgres(ctx, cfg.GetDatabaseConnectionString())
	if err != nil {
		return nil, err
	}

	// 1. Create the repository
	repo := gateway.NewPostgresRepository(db)

	// 2. Create the usecases and inject the repository
	return &app{
		db:    db,
		repo:  repo,
		corte: usecase.NewCorteUseCase(repo, repo, repo, repo),
		reports: usecase.NewReportUseCase(repo, repo, usecase.ReportOptions{
			TopProducts: cfg.Reports.TopProductsLimit,
			TopWaiters:  cfg.Reports.TopWaitersLimit,
		}),
		ledger:  usecase.NewLedgerUseCase(repo, repo, repo, repo),
		catalog: usecase.NewCatalogUseCase(repo, repo),
	}, nil
}

func (a *app) Close() {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		log.Warnf("[CLI] closing database: %v", err)
	}
}

func printJSON(w io.Writer, v interface{}) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to generate JSON output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}
