package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"pagemind/internal/config"
	"pagemind/internal/infrastructure"
	api "pagemind/internal/interfaces/http"
	"pagemind/internal/logger"
	"pagemind/internal/repository"
	"pagemind/internal/usecases"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the webhook server and management API",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)

	// Repositories
	pageRepo := repository.NewPageRepository(cfg.PagesFile(), log)
	settingsRepo := repository.NewSettingsRepository(cfg.SettingsFile(), log)
	knowledgeRepo := repository.NewKnowledgeRepository(cfg.KnowledgeDir, log)

	// Outbound clients
	completer := infrastructure.NewOpenRouterClient(cfg.OpenRouterURL, log)
	messenger := infrastructure.NewMessengerClient(cfg.GraphAPIURL, log)

	// Pipeline
	events := infrastructure.NewEventLog()
	pipeline := usecases.NewPipelineService(pageRepo, settingsRepo, knowledgeRepo, completer, messenger, events, log)

	// Operator auth
	authUsecase, err := usecases.NewAuthUsecase(cfg.AdminUsername, cfg.AdminPassword, cfg.JWTSecret)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize operator auth")
	}
	middleware := api.NewMiddleware(cfg.JWTSecret)

	r := gin.Default()
	h := api.NewHandler(pipeline, pageRepo, settingsRepo, knowledgeRepo, events, log)
	api.SetupRoutes(r, h, authUsecase, middleware, cfg.DashboardDir)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Forced shutdown")
	}
}
