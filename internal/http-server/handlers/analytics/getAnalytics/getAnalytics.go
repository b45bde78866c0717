package getAnalytics

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"tickethub/internal/lib/api/response"
	"tickethub/internal/lib/logger/sl"
	"tickethub/internal/models"
)

type AnalyticsResponse struct {
	response.Response
	Analytics *models.Analytics `json:"analytics"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AnalyticsProvider
type AnalyticsProvider interface {
	GetAnalytics() (*models.Analytics, error)
}

func New(log *slog.Logger, provider AnalyticsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.analytics.getAnalytics.New"

		log = log.With(slog.String("op", op))

		analytics, err := provider.GetAnalytics()
		if err != nil {
			log.Error("failed to get analytics", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get analytics"))
			return
		}

		log.Info("analytics retrieved")

		render.JSON(w, r, AnalyticsResponse{
			Response:  response.OK(),
			Analytics: analytics,
		})
	}
}
