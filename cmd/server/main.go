package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/api"
	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/config"
	"github.com/lakhweratechnologies3/apptodopro/internal/domain/attachment"
	"github.com/lakhweratechnologies3/apptodopro/internal/infrastructure/imagestore"
	"github.com/lakhweratechnologies3/apptodopro/internal/infrastructure/migration"
	"github.com/lakhweratechnologies3/apptodopro/internal/infrastructure/storage/sqlstore"
	"github.com/lakhweratechnologies3/apptodopro/internal/utils/logger"
)

func main() {
	conf := config.MustLoad()
	log := logger.New(conf.Env, logger.WithLevel(conf.Logger.LogLevel), logger.WithFile(conf.Logger.File))

	if err := run(conf, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(conf *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := migration.NewMigration(conf.DB.DatabaseURI, conf.DB.Migrations, migration.DefaultEngine)
	if err := m.Up(); err != nil {
		return err
	}
	log.Info("migrations applied")

	storage, err := sqlstore.Open(ctx, conf.DB.DatabaseURI)
	if err != nil {
		return err
	}
	defer func() {
		if err := storage.Close(); err != nil {
			log.Error("failed to close storage", "error", err)
		}
	}()

	imageStorage, err := imagestore.New(conf.Images, log)
	if err != nil {
		return err
	}
	images := attachment.NewManager(imageStorage, conf.Images.UploadTimeout, log)
	// фоновые удаления изображений должны завершиться до закрытия базы
	defer images.Wait()

	srv := &http.Server{
		Addr:              conf.Server.RunAddress,
		Handler:           api.New(storage, conf, images, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "address", conf.Server.RunAddress, "env", conf.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}
