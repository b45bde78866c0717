package useTicket

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"tickethub/internal/lib/api/response"
	"tickethub/internal/lib/logger/sl"
	"tickethub/internal/models"
	"tickethub/internal/storage"
)

type UseResponse struct {
	response.Response
	Ticket *models.Ticket `json:"ticket"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketRedeemer
type TicketRedeemer interface {
	UseTicket(ticketID string) (*models.Ticket, error)
}

func New(log *slog.Logger, redeemer TicketRedeemer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.useTicket.New"

		log = log.With(slog.String("op", op))

		ticketID := chi.URLParam(r, "id")
		if ticketID == "" {
			log.Error("ticket id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("ticket id is required"))
			return
		}

		log = log.With(slog.String("ticket_id", ticketID))

		ticket, err := redeemer.UseTicket(ticketID)
		if err != nil {
			log.Error("failed to use ticket", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrTicketNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("ticket not found"))
			case errors.Is(err, storage.ErrTicketNotActive):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("ticket is not active"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to use ticket"))
			}
			return
		}

		log.Info("ticket used", slog.String("ticket_number", ticket.TicketNumber))

		responseOK(w, r, ticket)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, ticket *models.Ticket) {
	render.JSON(w, r, UseResponse{
		Response: response.OK(),
		Ticket:   ticket,
	})
}
