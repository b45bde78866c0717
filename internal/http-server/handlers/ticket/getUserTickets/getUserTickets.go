package getUserTickets

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

type TicketsResponse struct {
	response.Response
	Tickets []models.Ticket `json:"tickets"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserTicketsProvider
type UserTicketsProvider interface {
	GetUserTickets(userID string) ([]models.Ticket, error)
}

func New(log *slog.Logger, provider UserTicketsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.getUserTickets.New"

		log = log.With(slog.String("op", op))

		claims, ok := auth.ClaimsFromContext(r.Context())
		if !ok {
			log.Error("no identity in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		tickets, err := provider.GetUserTickets(claims.UserID)
		if err != nil {
			log.Error("failed to get tickets", sl.Err(err))

			if errors.Is(err, storage.ErrUserNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get tickets"))
			return
		}

		log.Info("tickets retrieved", slog.Int("count", len(tickets)))

		render.JSON(w, r, TicketsResponse{
			Response: response.OK(),
			Tickets:  tickets,
		})
	}
}
