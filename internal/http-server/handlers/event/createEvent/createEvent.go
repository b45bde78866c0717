package createEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"tickethub/internal/http-server/middleware/auth"
	"tickethub/internal/lib/api/response"
	"tickethub/internal/lib/logger/sl"
	"tickethub/internal/models"
)

type EventRequest struct {
	Title        string    `json:"title" validate:"required"`
	Description  string    `json:"description"`
	Location     string    `json:"location" validate:"required"`
	Category     string    `json:"category"`
	EventDate    time.Time `json:"event_date" validate:"required"`
	Price        float64   `json:"price" validate:"gte=0"`
	TotalTickets int       `json:"total_tickets" validate:"required,gt=0"`
}

type EventResponse struct {
	response.Response
	Event models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(event models.Event) error
}

func New(log *slog.Logger, creator EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(slog.String("op", op))

		claims, ok := auth.ClaimsFromContext(r.Context())
		if !ok {
			log.Error("no identity in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		now := time.Now()
		event := models.Event{
			ID:           uuid.New().String(),
			Title:        req.Title,
			Description:  req.Description,
			Location:     req.Location,
			Category:     req.Category,
			EventDate:    req.EventDate,
			Price:        req.Price,
			TotalTickets: req.TotalTickets,
			// A new event starts fully available.
			AvailableTickets: req.TotalTickets,
			OrganizerID:      claims.UserID,
			IsArchived:       false,
			CreatedAt:        now,
			UpdatedAt:        now,
		}

		if err = creator.CreateEvent(event); err != nil {
			log.Error("failed to create event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create event"))
			return
		}

		log.Info("event created", slog.String("event_id", event.ID))

		render.JSON(w, r, EventResponse{
			Response: response.OK(),
			Event:    event,
		})
	}
}
