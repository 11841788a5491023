package commands

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/RiyadTangil/masjid-directory/internal/adapter/http/controller"
	"github.com/RiyadTangil/masjid-directory/internal/adapter/http/router"
	"github.com/RiyadTangil/masjid-directory/internal/adapter/repository/postgres"
	"github.com/RiyadTangil/masjid-directory/internal/config"
	"github.com/RiyadTangil/masjid-directory/internal/logger"
	"github.com/RiyadTangil/masjid-directory/internal/usecase/services"
	"github.com/RiyadTangil/masjid-directory/internal/web"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on system env vars")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	zlog, err := logger.New(cfg.Environment)
	if err != nil {
		return err
	}
	defer func() { _ = zlog.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := postgres.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	renderer, err := web.NewRenderer()
	if err != nil {
		return err
	}

	repo := postgres.NewMasjidRepository(db)
	service := services.NewMasjidService(repo, zlog)
	masjidController := controller.NewMasjidController(service, zlog)
	pagesController := controller.NewPagesController(service, renderer, zlog)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router.New(masjidController, pagesController, zlog),
	}

	errCh := make(chan error, 1)
	go func() {
		zlog.Info("masjid directory listening", zap.String("addr", cfg.HTTPAddr))
		errCh <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		zlog.Info("shutting down masjid directory")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
	case err := <-errCh:
		return err
	}

	return nil
}
