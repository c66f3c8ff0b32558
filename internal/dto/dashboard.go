package dto

import (
	"tobacco-dashboard-service/internal/chart"
	"tobacco-dashboard-service/internal/domain"
)

type CountriesResponse struct {
	Items []string `json:"items"`
	Total int      `json:"total"`
}

type KPI struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type CountryKPIsResponse struct {
	Country string `json:"country"`
	Items   []KPI  `json:"items"`
}

// ChartResponse wraps a chart artifact with the query that produced it.
type ChartResponse struct {
	Metric string        `json:"metric,omitempty"`
	Chart  *chart.Config `json:"chart"`
}

type MapResponse struct {
	Metric string           `json:"metric"`
	Map    *chart.MapConfig `json:"map"`
}

type SeriesResponse struct {
	Country string                             `json:"country"`
	Metric  string                             `json:"metric"`
	Horizon int                                `json:"horizon"`
	Series  map[domain.Sex][]domain.SeriesPoint `json:"series"`
	Chart   *chart.Config                      `json:"chart"`
}

type HealthResponse struct {
	Status string               `json:"status"`
	Counts domain.DatasetCounts `json:"counts"`
}
