package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/reshmiresh07/Angular-js-with-sql-integation-11/internal/config"
	"github.com/reshmiresh07/Angular-js-with-sql-integation-11/internal/db"
	httpapi "github.com/reshmiresh07/Angular-js-with-sql-integation-11/internal/http"
	"github.com/reshmiresh07/Angular-js-with-sql-integation-11/internal/http/handler"
	"github.com/reshmiresh07/Angular-js-with-sql-integation-11/internal/http/middleware"
	"github.com/reshmiresh07/Angular-js-with-sql-integation-11/internal/repository/sqlite"
)

const shutdownTimeout = 5 * time.Second

type serverOptions struct {
	ConfigPath string
	Addr       string
	Database   string
	Verbose    bool
}

func main() {
	if err := newServerCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newServerCommand() *cobra.Command {
	opts := &serverOptions{}

	cmd := &cobra.Command{
		Use:   "inventory-server",
		Short: "Serve the inventory API and embedded web client",
		Long: `Serve the inventory manager: four REST endpoints over a single
SQLite table plus the embedded single-page client on /.

The database file is created on first run if it does not exist.

Example:
  inventory-server --db ./inventory.db --addr :8080`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "path to yaml config file")
	cmd.Flags().StringVar(&opts.Addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (overrides config)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func runServer(opts *serverOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.Addr != "" {
		cfg.Server.Addr = opts.Addr
	}
	if opts.Database != "" {
		cfg.Database.Path = opts.Database
	}

	logLevel, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	conn, err := db.NewSQLite(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			logger.Error("closing database", "error", closeErr)
		}
	}()
	logger.Info("database ready", "path", cfg.Database.Path)

	repo := sqlite.NewItemRepository(conn)
	itemHandler := handler.NewItemHandler(repo)
	router := middleware.RequestID(middleware.Logging(logger, httpapi.NewRouter(itemHandler)))

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("api listening", "addr", cfg.Server.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	return nil
}
