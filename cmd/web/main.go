package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/zenathia/zenathia-web/internal/config"
	"github.com/zenathia/zenathia-web/internal/handler"
	"github.com/zenathia/zenathia-web/internal/middleware"
	"github.com/zenathia/zenathia-web/internal/repository"
	"github.com/zenathia/zenathia-web/internal/service"
	"github.com/zenathia/zenathia-web/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repository.Migrate(context.Background(), db); err != nil {
		slog.Error("schema migration failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo)
	sessions := session.NewManager(cfg.SecretKey, cfg.Env == "production")

	webHandler, err := handler.NewWebHandler(authService, sessions)
	if err != nil {
		slog.Error("template parsing failed", "error", err)
		os.Exit(1)
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.WithSession(sessions))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/", webHandler.HandleHome)
	r.Get("/registration", webHandler.HandleRegistrationPage)
	r.Post("/register", webHandler.HandleRegister)
	r.Post("/login", webHandler.HandleLogin)
	r.Get("/logout", webHandler.HandleLogout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession)
		r.Get("/dashboard", webHandler.HandleDashboard)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
