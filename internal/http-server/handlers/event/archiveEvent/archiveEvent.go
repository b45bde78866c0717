package archiveEvent

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"tickethub/internal/lib/api/response"
	"tickethub/internal/lib/logger/sl"
	"tickethub/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventArchiver
type EventArchiver interface {
	ArchiveEvent(id string) error
}

// New archives an event instead of deleting it, so already issued tickets
// keep a valid reference. Archived events reject further purchases.
func New(log *slog.Logger, archiver EventArchiver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.archiveEvent.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		if err := archiver.ArchiveEvent(eventID); err != nil {
			log.Error("failed to archive event", sl.Err(err))

			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to archive event"))
			return
		}

		log.Info("event archived")

		render.JSON(w, r, response.OK())
	}
}
