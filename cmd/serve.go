package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/ortobahn/ortobahn/internal/backup"
	"github.com/ortobahn/ortobahn/internal/httpserve"
	"github.com/ortobahn/ortobahn/internal/server"
	"github.com/ortobahn/ortobahn/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the ortobahn server",
	Long:  `Start the web server, the nightly backup scheduler and everything in between.`,
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}

	a, err := server.NewApp(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize app", "error", err)
	}

	if _, err := server.InitializeDB(a); err != nil {
		logger.Fatal("Failed to initialize database", "error", err)
	}

	rotator, err := backup.NewRotator(a.DBPath, cfg.Backups.Dir, cfg.Backups.MaxBackups, logger.GetLogger().Logger)
	if err != nil {
		logger.Fatal("Failed to configure backup rotation", "error", err)
	}
	scheduler, err := backup.NewScheduler(rotator, cfg.Backups.Schedule, logger.GetLogger().Logger)
	if err != nil {
		logger.Fatal("Failed to configure backup schedule", "error", err)
	}
	scheduler.Start()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = 1 * time.Minute
	e.Server.WriteTimeout = 1 * time.Minute

	e = httpserve.RegisterRoutes(e, a)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("Starting server", "port", cfg.Server.Port)
		if err := e.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
			if err.Error() != "http: Server closed" {
				logger.Error("Server error", "error", err)
			}
		}
	}()

	<-sigs
	logger.Info("Received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("Shutting down server...")
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	scheduler.Stop()

	if err := a.Shutdown(); err != nil {
		logger.Error("Application shutdown error", "error", err)
	}

	logger.Info("Shutdown complete")
}
