package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quiz_admin_console/internal/api"
	"quiz_admin_console/internal/app/controller"
	"quiz_admin_console/internal/common/security"
	"quiz_admin_console/internal/platform/config"
	"quiz_admin_console/internal/platform/session"
	"quiz_admin_console/internal/platform/upstream"
	"quiz_admin_console/internal/web"
)

func main() {
	// 1. Load Configuration
	config.Load()
	log.Println("Configuration loaded.")

	// 2. Initialize JWT (session cookie signing)
	security.InitJWT()

	// 3. Initialize Redis (session storage)
	session.ConnectRedis()
	defer session.CloseRedis()
	log.Println("Redis connected.")

	// 4. Upstream admin API client
	client := upstream.New(config.AppConfig.UpstreamBaseURL, config.AppConfig.UpstreamTimeout)

	// 5. Session store and controllers
	sessions := session.NewRedisStore(session.RDB)
	controllers := api.Controllers{
		Auth:          controller.NewAuthController(client, sessions, config.AppConfig.SessionTTL),
		Dashboard:     controller.NewDashboardController(client),
		Users:         controller.NewUsersController(client, config.AppConfig.UsersPageSize),
		Quizzes:       controller.NewQuizzesController(client, config.AppConfig.QuestionsPageSize),
		Transactions:  controller.NewTransactionsController(client, config.AppConfig.TransactionsPageSize),
		Notifications: controller.NewNotificationsController(client),
		Analytics:     controller.NewAnalyticsController(client),
		Settings:      controller.NewSettingsController(client),
	}

	// 6. Templates & Router
	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}
	router := api.NewRouter(renderer, sessions, controllers)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.ListenPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 7. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Console starting on port %s", config.AppConfig.ListenPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.ListenPort, err)
		}
	}()

	<-stop

	log.Println("Shutting down console...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Console stopped gracefully.")
}
