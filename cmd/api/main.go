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

	"github.com/daybook/daybook-go/internal/config"
	"github.com/daybook/daybook-go/internal/handler"
	"github.com/daybook/daybook-go/internal/middleware"
	"github.com/daybook/daybook-go/internal/repository"
	"github.com/daybook/daybook-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	accountRepo := repository.NewAccountRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	accountService := service.NewAccountService(accountRepo, settingRepo, cfg.JWTSecret, cfg.JWTExpiry)
	accountHandler := handler.NewAccountHandler(accountService)

	diaryRepo := repository.NewDiaryRepository(db)
	diaryService := service.NewDiaryService(diaryRepo)
	diaryHandler := handler.NewDiaryHandler(diaryService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/v1/accounts/register", accountHandler.HandleRegister)
		r.Post("/api/v1/accounts/login", accountHandler.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))

		r.Get("/api/v1/accounts/info", accountHandler.HandleGetInfo)
		r.Post("/api/v1/accounts/info", accountHandler.HandleChangeInfo)
		r.Post("/api/v1/accounts/email", accountHandler.HandleChangeEmail)
		r.Post("/api/v1/accounts/password", accountHandler.HandleChangePassword)
		r.Get("/api/v1/accounts/setting", accountHandler.HandleGetSetting)
		r.Post("/api/v1/accounts/setting", accountHandler.HandleChangeSetting)

		r.Get("/api/v1/diary", diaryHandler.HandleList)
		r.Get("/api/v1/diary/post/{diaryId}", diaryHandler.HandleGetByID)
		r.Post("/api/v1/diary/post", diaryHandler.HandleCreate)
		r.Post("/api/v1/diary/post/{diaryId}", diaryHandler.HandleUpdate)
		r.Post("/api/v1/diary/post/{diaryId}/delete", diaryHandler.HandleDelete)
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
