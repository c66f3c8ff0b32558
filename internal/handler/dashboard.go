package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"tobacco-dashboard-service/internal/chart"
	"tobacco-dashboard-service/internal/domain"
	"tobacco-dashboard-service/internal/dto"
)

func (h *Handler) ListCountries(c *gin.Context) {
	countries, err := h.dashboardUC.Countries(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("list countries failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CountriesResponse{Items: countries, Total: len(countries)})
}

func (h *Handler) GetCountryKPIs(c *gin.Context) {
	kpis, err := h.dashboardUC.CountryKPIs(c.Request.Context(), c.Param("country"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCountryKPIsResponse(kpis))
}

func (h *Handler) GetMap(c *gin.Context) {
	metric, err := metricQuery(c, domain.MetricMortality)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	filter, err := filterQuery(c)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	entries, err := h.dashboardUC.MapAverages(c.Request.Context(), metric, filter)
	if err != nil {
		log.WithError(err).Error("map averages failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MapResponse{
		Metric: string(metric),
		Map:    chart.Choropleth(mapTitle(metric), mapLegend(metric), entries),
	})
}

func (h *Handler) GetIncomeGroups(c *gin.Context) {
	metric, err := metricQuery(c, domain.MetricPrevalence)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	filter, err := filterQuery(c)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	groups, err := h.dashboardUC.IncomeGroupAverages(c.Request.Context(), metric, filter)
	if err != nil {
		log.WithError(err).Error("income group averages failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ChartResponse{
		Metric: string(metric),
		Chart:  chart.Donut(incomeTitle(metric), unitLabel(metric), groups),
	})
}

func (h *Handler) GetRankings(c *gin.Context) {
	metric, err := metricQuery(c, domain.MetricPrevalence)
	if err != nil {
		mapDomainError(c, err)
		return
	}
	filter, err := filterQuery(c)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(h.defaults.TopN)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidLimit.Error()})
		return
	}

	groups, err := h.dashboardUC.Rankings(c.Request.Context(), metric, limit, filter)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ChartResponse{
		Metric: string(metric),
		Chart:  chart.Ranking(rankingTitle(metric, limit), unitLabel(metric), groups),
	})
}

// metricQuery reads the metric query param, falling back per endpoint to
// the metric the original dashboard showed there.
func metricQuery(c *gin.Context, fallback domain.Metric) (domain.Metric, error) {
	raw := c.Query("metric")
	if raw == "" {
		return fallback, nil
	}
	return domain.ParseMetric(raw)
}

// filterQuery reads the shared year-range / sex / income filter params.
func filterQuery(c *gin.Context) (domain.ObservationFilter, error) {
	var filter domain.ObservationFilter

	if raw := c.Query("from"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return filter, domain.ErrInvalidYearRange
		}
		filter.FromYear = year
	}
	if raw := c.Query("to"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return filter, domain.ErrInvalidYearRange
		}
		filter.ToYear = year
	}
	if filter.FromYear != 0 && filter.ToYear != 0 && filter.FromYear > filter.ToYear {
		return filter, domain.ErrInvalidYearRange
	}

	if raw := c.Query("sex"); raw != "" {
		sex, err := domain.ParseSex(raw)
		if err != nil {
			return filter, err
		}
		filter.Sex = sex
	}

	filter.Income = c.Query("income")
	return filter, nil
}

func unitLabel(metric domain.Metric) string {
	if metric == domain.MetricMortality {
		return "Deaths per 100 000"
	}
	return "Avg %"
}

func mapTitle(metric domain.Metric) string {
	if metric == domain.MetricMortality {
		return "Tracheal, Bronchus & Lung Cancer Mortality Rates"
	}
	return "Tobacco Use Prevalence"
}

func mapLegend(metric domain.Metric) string {
	if metric == domain.MetricMortality {
		return "Deaths per 100k"
	}
	return "Prevalence %"
}

func incomeTitle(metric domain.Metric) string {
	if metric == domain.MetricMortality {
		return "Mortality by Income Group"
	}
	return "Tobacco Prevalence by Income Group"
}

func rankingTitle(metric domain.Metric, limit int) string {
	if metric == domain.MetricMortality {
		return "Top " + strconv.Itoa(limit) + " Countries with Highest Mortality"
	}
	return "Top " + strconv.Itoa(limit) + " Countries with Highest Tobacco Use"
}
