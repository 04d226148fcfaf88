package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/civichero/civichero-backend/internal/api/http/routes"
	"github.com/civichero/civichero-backend/internal/backend"
	"github.com/civichero/civichero-backend/internal/bootstrap"
	"github.com/civichero/civichero-backend/internal/realtime"
	"github.com/civichero/civichero-backend/internal/storage/postgres"
)

const serviceName = "civichero-backend"

func serveCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the live feed trimmer",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, migrate)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply the schema before serving")
	return cmd
}

func serve(ctx context.Context, migrate bool) error {
	if err := cfg.RequireFirebase(); err != nil {
		return err
	}
	bootstrap.SetGinMode(cfg.App.Environment)

	clients, err := backend.Shared.GetWithCredentials(ctx, backend.DefaultAppName, cfg.Firebase.Project,
		cfg.Firebase.CredentialsPath)
	if err != nil {
		return err
	}
	logger.Info("firebase initialized", zap.String("project_id", clients.Config.ProjectID))

	db, err := postgres.Open(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if migrate {
		if err := postgres.Migrate(ctx, db.SQL); err != nil {
			return err
		}
		logger.Info("schema applied")
	}

	rdb, err := bootstrap.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		logger.Warn("redis unavailable, serving without cache", zap.Error(err))
		rdb = nil
	}
	if rdb != nil {
		defer rdb.Close()
	}

	feed := realtime.NewFeed(realtime.NewDatabaseStore(clients.Database), logger)
	trimmer := realtime.NewTrimmer(feed, cfg.LiveFeed.MaxEntries, cfg.LiveFeed.TrimSchedule, logger)
	if err := trimmer.Start(); err != nil {
		return err
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		DBPinger:       db,
		CachePinger:    bootstrap.RedisPinger(rdb),
		API: routes.APIDeps{
			DB:                    db.SQL,
			Redis:                 rdb,
			CacheTTL:              cfg.Redis.CacheTTL,
			WebConfig:             clients.Config.Public(),
			Verifier:              clients.Auth,
			Live:                  feed,
			AuthRequiredForWrites: cfg.Server.AuthRequiredForWrites,
			RateLimitPerMinute:    cfg.Server.RateLimitPerMinute,
		},
		Logger: logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("server is shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	trimmer.Stop(shutdownCtx)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("server stopped gracefully")
	return nil
}
