package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"todo-cockpit/internal/config"
	"todo-cockpit/internal/repository"
	"todo-cockpit/internal/server"
	"todo-cockpit/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the cockpit HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func serve() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	categoryRepo := repository.NewCategoryRepository(db)
	labelRepo := repository.NewLabelRepository(db)
	todoRepo := repository.NewTodoRepository(db)

	categorySvc := service.NewCategoryService(categoryRepo, cfg.CategoryLimit)
	labelSvc := service.NewLabelService(labelRepo)
	todoSvc := service.NewTodoService(todoRepo, categoryRepo, labelRepo)
	digestSvc := service.NewDigestService(todoRepo)

	scheduler := service.NewSchedulerService(time.Local)
	if err := scheduleDigest(scheduler, cfg, digestSvc); err != nil {
		return fmt.Errorf("schedule digest: %w", err)
	}
	defer scheduler.Stop()

	api := server.New(categorySvc, labelSvc, todoSvc)
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: api.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("cockpit listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Println("Shutdown complete.")
	return nil
}

// scheduleDigest wires the digest job: a daily HH:MM time wins over the
// interval; both unset leaves the job off.
func scheduleDigest(scheduler *service.SchedulerService, cfg config.Config, digest *service.DigestService) error {
	job := func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		digest.Run(jobCtx)
	}

	switch {
	case cfg.DigestTime != "":
		if _, err := scheduler.ScheduleDaily(cfg.DigestTime, job); err != nil {
			return err
		}
	case cfg.DigestInterval > 0:
		if _, err := scheduler.ScheduleInterval(cfg.DigestInterval, job); err != nil {
			return err
		}
	default:
		return nil
	}

	scheduler.Start()
	return nil
}
