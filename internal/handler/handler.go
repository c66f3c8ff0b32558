package handler

import (
	"github.com/gin-gonic/gin"

	"tobacco-dashboard-service/internal/config"
	"tobacco-dashboard-service/internal/usecase"
)

type Handler struct {
	dashboardUC *usecase.DashboardUseCase
	seriesUC    *usecase.TimeSeriesUseCase
	defaults    config.DashboardConfig
}

func New(dashboardUC *usecase.DashboardUseCase, seriesUC *usecase.TimeSeriesUseCase, defaults config.DashboardConfig) *Handler {
	return &Handler{dashboardUC: dashboardUC, seriesUC: seriesUC, defaults: defaults}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Country selector & KPIs
	r.GET("/countries", h.ListCountries)
	r.GET("/countries/:country/kpis", h.GetCountryKPIs)

	// Global views
	r.GET("/map", h.GetMap)
	r.GET("/income-groups", h.GetIncomeGroups)
	r.GET("/rankings", h.GetRankings)

	// Per-country views
	r.GET("/countries/:country/timeseries", h.GetCountrySeries)
	r.GET("/countries/:country/indicators", h.GetIndicatorStack)
}
