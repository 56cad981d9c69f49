package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/handlers/web"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
	"github.com/KirkDiggler/rpg-sheet/internal/render"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/sheets"
)

const shutdownTimeout = 30 * time.Second

type serveOptions struct {
	addr    string
	envFile string
}

func newServeCmd() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the upload web server",
		Long:  `Start the HTTP server that turns uploaded character documents into downloadable sheets.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address, overrides RPG_SHEET_ADDR")
	cmd.Flags().StringVar(&opts.envFile, "env-file", ".env", "optional dotenv file")

	return cmd
}

func runServe(ctx context.Context, opts *serveOptions) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return err
	}
	if opts.addr != "" {
		cfg.Addr = opts.addr
	}
	gin.SetMode(cfg.GinMode)

	eng, err := engine.New(nil)
	if err != nil {
		return err
	}

	mode := render.Tolerant
	if cfg.StrictTemplate {
		mode = render.Strict
	}
	orch, err := sheet.NewOrchestrator(&sheet.Config{Engine: eng, Mode: mode})
	if err != nil {
		return err
	}

	repo, closeRepo, err := newRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	handler, err := web.NewHandler(&web.HandlerConfig{
		SheetService:   orch,
		Repository:     repo,
		IDGenerator:    idgen.NewUUID("upload"),
		UploadDir:      cfg.UploadDir,
		TemplatePath:   cfg.TemplatePath,
		MaxUploadBytes: cfg.MaxUploadBytes,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create web handler")
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           web.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "addr", cfg.Addr, "redis", cfg.UsesRedis())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- errors.Wrapf(err, "failed to serve on %s", cfg.Addr)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("received shutdown signal, gracefully stopping")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown timeout exceeded, forcing stop", "error", err)
			return srv.Close()
		}
		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

// newRepository picks Redis when an address is configured, otherwise the
// output directory
func newRepository(ctx context.Context, cfg *config.Config) (sheets.Repository, func(), error) {
	if !cfg.UsesRedis() {
		repo, err := sheets.NewFilesystem(&sheets.FilesystemConfig{
			Dir:   cfg.OutputDir,
			Clock: clock.New(),
		})
		return repo, func() {}, err
	}

	client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err != nil {
		return nil, nil, err
	}
	closeClient := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}

	if err := redisclient.Ping(ctx, client); err != nil {
		closeClient()
		return nil, nil, err
	}

	repo, err := sheets.NewRedis(&sheets.RedisConfig{
		Client: client,
		Clock:  clock.New(),
		TTL:    cfg.OutputTTL,
	})
	if err != nil {
		closeClient()
		return nil, nil, err
	}
	return repo, closeClient, nil
}
