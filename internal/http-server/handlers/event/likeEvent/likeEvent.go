package likeEvent

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"tickethub/internal/http-server/middleware/auth"
	"tickethub/internal/lib/api/response"
	"tickethub/internal/lib/logger/sl"
	"tickethub/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventLiker
type EventLiker interface {
	LikeEvent(userID, eventID string) error
	UnlikeEvent(userID, eventID string) error
}

// New handles putting a like on an event. Liking the same event twice is a
// no-op, not an error.
func New(log *slog.Logger, liker EventLiker) http.HandlerFunc {
	return handle(log, "handlers.event.likeEvent.New", "like", liker.LikeEvent)
}

// NewUnlike handles removing a like. Removing a like that was never set is a
// no-op as well.
func NewUnlike(log *slog.Logger, liker EventLiker) http.HandlerFunc {
	return handle(log, "handlers.event.likeEvent.NewUnlike", "unlike", liker.UnlikeEvent)
}

func handle(log *slog.Logger, op, action string, fn func(userID, eventID string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := log.With(slog.String("op", op))

		claims, ok := auth.ClaimsFromContext(r.Context())
		if !ok {
			log.Error("no identity in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(
			slog.String("event_id", eventID),
			slog.String("user_id", claims.UserID),
		)

		if err := fn(claims.UserID, eventID); err != nil {
			log.Error("failed to "+action+" event", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, storage.ErrUserNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to "+action+" event"))
			}
			return
		}

		log.Info("event " + action + "d")

		render.JSON(w, r, response.OK())
	}
}
