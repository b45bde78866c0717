package getAllTickets

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"tickethub/internal/lib/api/response"
	"tickethub/internal/lib/logger/sl"
	"tickethub/internal/models"
)

type TicketsResponse struct {
	response.Response
	Tickets []models.Ticket `json:"tickets"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketsProvider
type TicketsProvider interface {
	GetAllTickets() ([]models.Ticket, error)
}

func New(log *slog.Logger, provider TicketsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.getAllTickets.New"

		log = log.With(slog.String("op", op))

		tickets, err := provider.GetAllTickets()
		if err != nil {
			log.Error("failed to get tickets", sl.Err(err))
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
