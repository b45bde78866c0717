package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"tickethub/internal/config"
	"tickethub/internal/http-server/handlers/analytics/getAnalytics"
	"tickethub/internal/http-server/handlers/auth/login"
	"tickethub/internal/http-server/handlers/auth/me"
	"tickethub/internal/http-server/handlers/auth/register"
	"tickethub/internal/http-server/handlers/event/archiveEvent"
	"tickethub/internal/http-server/handlers/event/createEvent"
	"tickethub/internal/http-server/handlers/event/getAllEvents"
	"tickethub/internal/http-server/handlers/event/getEvent"
	"tickethub/internal/http-server/handlers/event/likeEvent"
	"tickethub/internal/http-server/handlers/event/updateEvent"
	"tickethub/internal/http-server/handlers/ticket/cancelTicket"
	"tickethub/internal/http-server/handlers/ticket/getAllTickets"
	"tickethub/internal/http-server/handlers/ticket/getEventTickets"
	"tickethub/internal/http-server/handlers/ticket/getUserTickets"
	"tickethub/internal/http-server/handlers/ticket/purchaseTickets"
	"tickethub/internal/http-server/handlers/ticket/useTicket"
	"tickethub/internal/http-server/handlers/user/getAllUsers"
	authmw "tickethub/internal/http-server/middleware/auth"
	"tickethub/internal/http-server/middleware/mwlogger"
	"tickethub/internal/lib/logger/handlers/slogpretty"
	"tickethub/internal/lib/logger/sl"
	"tickethub/internal/models"
	"tickethub/internal/storage/postgres"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting tickethub", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/auth/register", register.New(log, storage, cfg.Auth.Secret, cfg.Auth.TokenTTL))
	router.Post("/auth/login", login.New(log, storage, cfg.Auth.Secret, cfg.Auth.TokenTTL))

	router.Get("/events", getAllEvents.New(log, storage))
	router.Get("/events/{id}", getEvent.New(log, storage))

	router.Group(func(r chi.Router) {
		r.Use(authmw.New(log, cfg.Auth.Secret))

		r.Get("/auth/me", me.New(log, storage))

		r.With(authmw.RequireRole(models.RoleAdmin)).
			Get("/users", getAllUsers.New(log, storage))

		r.With(authmw.RequireRole(models.RoleOrganizer, models.RoleAdmin)).
			Post("/events", createEvent.New(log, storage))
		r.With(authmw.RequireRole(models.RoleOrganizer, models.RoleAdmin)).
			Patch("/events/{id}", updateEvent.New(log, storage))
		r.With(authmw.RequireRole(models.RoleAdmin)).
			Delete("/events/{id}", archiveEvent.New(log, storage))

		r.With(authmw.RequireRole(models.RoleOrganizer, models.RoleAdmin)).
			Get("/events/{id}/tickets", getEventTickets.New(log, storage))

		r.Post("/events/{id}/like", likeEvent.New(log, storage))
		r.Delete("/events/{id}/like", likeEvent.NewUnlike(log, storage))

		r.Post("/tickets/purchase", purchaseTickets.New(log, storage))
		r.Post("/tickets/{id}/cancel", cancelTicket.New(log, storage))
		r.With(authmw.RequireRole(models.RoleOrganizer, models.RoleAdmin)).
			Post("/tickets/{id}/use", useTicket.New(log, storage))

		r.Get("/tickets/my", getUserTickets.New(log, storage))
		r.With(authmw.RequireRole(models.RoleAdmin)).
			Get("/tickets", getAllTickets.New(log, storage))

		r.With(authmw.RequireRole(models.RoleOrganizer, models.RoleAdmin)).
			Get("/analytics", getAnalytics.New(log, storage))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
