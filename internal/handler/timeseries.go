package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"tobacco-dashboard-service/internal/chart"
	"tobacco-dashboard-service/internal/domain"
	"tobacco-dashboard-service/internal/dto"
)

func (h *Handler) GetCountrySeries(c *gin.Context) {
	country := c.Param("country")

	metric, err := metricQuery(c, domain.MetricPrevalence)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	horizon, err := strconv.Atoi(c.DefaultQuery("horizon", strconv.Itoa(h.defaults.ForecastHorizon)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidHorizon.Error()})
		return
	}

	series, err := h.seriesUC.CountrySeries(c.Request.Context(), country, metric, horizon)
	if err != nil {
		log.WithError(err).WithField("country", country).Error("country series failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SeriesResponse{
		Country: country,
		Metric:  string(metric),
		Horizon: horizon,
		Series:  series,
		Chart:   chart.TimeSeries(seriesTitle(country, metric), unitLabel(metric), series),
	})
}

func (h *Handler) GetIndicatorStack(c *gin.Context) {
	country := c.Param("country")

	slices, err := h.seriesUC.IndicatorStack(c.Request.Context(), country)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ChartResponse{
		Chart: chart.IndicatorStack(fmt.Sprintf("Tobacco Use Indicators by Year and Sex – %s", country), slices),
	})
}

func seriesTitle(country string, metric domain.Metric) string {
	if metric == domain.MetricMortality {
		return fmt.Sprintf("%s: Cancer Mortality Over Time", country)
	}
	return fmt.Sprintf("%s: Tobacco Prevalence Over Time", country)
}
