package me

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"tickethub/internal/http-server/middleware/auth"
	"tickethub/internal/lib/api/response"
	"tickethub/internal/lib/logger/sl"
	"tickethub/internal/models"
	"tickethub/internal/storage"
)

type MeResponse struct {
	response.Response
	User *models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserProvider
type UserProvider interface {
	GetUserByID(id string) (*models.User, error)
}

// New resolves the caller's token to the current user record, so clients can
// refresh their profile without re-logging in. Tokens of deleted or
// deactivated accounts are rejected even though the signature still verifies.
func New(log *slog.Logger, provider UserProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.me.New"

		log = log.With(slog.String("op", op))

		claims, ok := auth.ClaimsFromContext(r.Context())
		if !ok {
			log.Error("no identity in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		user, err := provider.GetUserByID(claims.UserID)
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				log.Info("token for missing user", slog.String("user_id", claims.UserID))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
				return
			}

			log.Error("failed to get user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get user"))
			return
		}

		if !user.IsActive {
			log.Info("token for deactivated account", slog.String("user_id", user.ID))
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("account is deactivated"))
			return
		}

		log.Info("current user resolved", slog.String("user_id", user.ID))

		render.JSON(w, r, MeResponse{
			Response: response.OK(),
			User:     user,
		})
	}
}
