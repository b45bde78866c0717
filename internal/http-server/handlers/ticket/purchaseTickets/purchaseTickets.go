package purchaseTickets

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"tickethub/internal/http-server/middleware/auth"
	"tickethub/internal/lib/api/response"
	"tickethub/internal/lib/logger/sl"
	"tickethub/internal/models"
	"tickethub/internal/storage"
)

type PurchaseRequest struct {
	EventID  string `json:"event_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"omitempty,gt=0"`
}

type PurchaseResponse struct {
	response.Response
	Tickets     []models.Ticket `json:"tickets"`
	TotalAmount float64         `json:"total_amount"`
}

type SoldOutResponse struct {
	response.Response
	Available int `json:"available"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketPurchaser
type TicketPurchaser interface {
	PurchaseTickets(userID, eventID string, quantity int) (*storage.PurchaseResult, error)
}

func New(log *slog.Logger, purchaser TicketPurchaser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.purchaseTickets.New"

		log = log.With(slog.String("op", op))

		claims, ok := auth.ClaimsFromContext(r.Context())
		if !ok {
			log.Error("no identity in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		var req PurchaseRequest

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

		if req.Quantity == 0 {
			req.Quantity = 1
		}

		result, err := purchaser.PurchaseTickets(claims.UserID, req.EventID, req.Quantity)
		if err != nil {
			log.Error("failed to purchase tickets", sl.Err(err))

			var notEnough *storage.NotEnoughTicketsError
			switch {
			case errors.As(err, &notEnough):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, SoldOutResponse{
					Response:  response.Error(notEnough.Error()),
					Available: notEnough.Available,
				})
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, storage.ErrUserNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
			case errors.Is(err, storage.ErrInvalidQuantity):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("quantity must be positive"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to purchase tickets"))
			}
			return
		}

		log.Info("tickets purchased",
			slog.String("event_id", req.EventID),
			slog.Int("quantity", req.Quantity),
		)

		responseOK(w, r, result)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, result *storage.PurchaseResult) {
	render.JSON(w, r, PurchaseResponse{
		Response:    response.OK(),
		Tickets:     result.Tickets,
		TotalAmount: result.TotalAmount,
	})
}
