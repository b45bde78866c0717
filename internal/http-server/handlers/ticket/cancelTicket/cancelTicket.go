package cancelTicket

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"tickethub/internal/http-server/middleware/auth"
	"tickethub/internal/lib/api/response"
	"tickethub/internal/lib/logger/sl"
	"tickethub/internal/models"
	"tickethub/internal/storage"
)

type CancelResponse struct {
	response.Response
	Ticket *models.Ticket `json:"ticket"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketCanceller
type TicketCanceller interface {
	CancelTicket(ticketID, userID string) (*models.Ticket, error)
}

func New(log *slog.Logger, canceller TicketCanceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.cancelTicket.New"

		log = log.With(slog.String("op", op))

		claims, ok := auth.ClaimsFromContext(r.Context())
		if !ok {
			log.Error("no identity in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		ticketID := chi.URLParam(r, "id")
		if ticketID == "" {
			log.Error("ticket id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("ticket id is required"))
			return
		}

		log = log.With(slog.String("ticket_id", ticketID))

		ticket, err := canceller.CancelTicket(ticketID, claims.UserID)
		if err != nil {
			log.Error("failed to cancel ticket", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrTicketNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("ticket not found"))
			case errors.Is(err, storage.ErrNotOwner):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("you can only cancel your own tickets"))
			case errors.Is(err, storage.ErrTicketNotActive):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("ticket is not active"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to cancel ticket"))
			}
			return
		}

		log.Info("ticket cancelled", slog.String("user_id", claims.UserID))

		responseOK(w, r, ticket)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, ticket *models.Ticket) {
	render.JSON(w, r, CancelResponse{
		Response: response.OK(),
		Ticket:   ticket,
	})
}
