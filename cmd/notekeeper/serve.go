package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rmarques/notekeeper"
	"github.com/rmarques/notekeeper/internal/config"
	"github.com/rmarques/notekeeper/internal/httpapi"
)

var (
	serveConfig string
	serveAddr   string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the notes API over HTTP",
	Long: `Start the HTTP API. Routes:

  GET    /notes          list (optional ?category= exact filter)
  POST   /notes          create
  GET    /notes/{id}     fetch
  PUT    /notes/{id}     partial update
  DELETE /notes/{id}     delete

Flags override values from the config file.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(serveConfig)
		if err != nil {
			fatal("Failed to load config", err)
		}
		if cmd.Flags().Changed("addr") {
			cfg.Addr = serveAddr
		}
		if cmd.Flags().Changed("dir") {
			cfg.DataDir = dataDir
		}
		if cfg.Verbose && !verbose {
			// The root PersistentPreRun already installed the default
			// logger; rebuild it at debug level when the file asks for it.
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}

		logger := slog.Default()

		svc, err := notekeeper.New(cfg.DataDir,
			notekeeper.WithLogger(logger),
			notekeeper.WithFilename(cfg.Filename),
		)
		if err != nil {
			fatal("Failed to initialize notekeeper", err)
		}

		server := &http.Server{
			Addr:    cfg.Addr,
			Handler: httpapi.NewServer(svc, logger).Router(),
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Error("shutdown failed", "error", err)
			}
		}()

		logger.Info("serving notes API", "addr", cfg.Addr, "data_dir", cfg.DataDir)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal("Server failed", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveConfig, "config", "c", "", "Path to YAML config file")
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8484", "Listen address")
}
