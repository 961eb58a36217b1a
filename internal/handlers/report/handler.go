package report

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/report/model/dto"
	"lodge/internal/domains/report/service"
	"lodge/shared/constant"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/dashboard", handler.GetDashboard)
		routerGroup.Get("/revenue", handler.GetRevenue)
	})
}

// GetDashboard returns the operational summary.
// @Summary Get the dashboard summary
// @Description Retrieve current counts of active bookings, today's check-ins, available rooms and customers.
// @Tags Report
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.DashboardResponse] "Dashboard summary"
// @Failure 500 {object} response.Error
// @Router /v1/reports/dashboard [get]
// @Security BearerAuth
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	dashboard, err := handler.service.Dashboard(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dashboard retrieved successfully")

	response.WithJSON(w, http.StatusOK, dashboard)
}

// GetRevenue returns revenue aggregated over a date window.
// @Summary Get the revenue report
// @Description Aggregate revenue per room type for bookings checking in within the given window.
// @Tags Report
// @Accept json
// @Produce json
// @Param from query string true "Window start (YYYY-MM-DD)"
// @Param to query string true "Window end (YYYY-MM-DD), inclusive"
// @Success 200 {object} response.Data[dto.RevenueResponse] "Revenue report"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/revenue [get]
// @Security BearerAuth
func (handler *Handler) GetRevenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRevenue")
	defer scope.End()

	req := dto.RevenueRequest{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query parameters")

		response.WithError(w, err)

		return
	}

	revenue, err := handler.service.Revenue(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get revenue report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Revenue report retrieved successfully")

	response.WithJSON(w, http.StatusOK, revenue)
}
