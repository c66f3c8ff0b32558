package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tobacco-dashboard-service/internal/domain"
)

func TestRanking(t *testing.T) {
	cfg := Ranking("Top 2", "Avg %", []domain.GroupAverage{
		{Key: "Chile", Mean: 44.123, Count: 1},
		{Key: "Lebanon", Mean: 40.0, Count: 2},
	})

	assert.Equal(t, "hbar", cfg.Type)
	require.Len(t, cfg.Series, 1)
	require.Len(t, cfg.Series[0].Data, 2)
	// Input order is preserved; values round to two decimals.
	assert.Equal(t, "Chile", cfg.Series[0].Data[0].Label)
	assert.Equal(t, 44.12, cfg.Series[0].Data[0].Value)
}

func TestDonut(t *testing.T) {
	cfg := Donut("By income", "Avg %", []domain.GroupAverage{
		{Key: "High income", Mean: 25.0},
		{Key: "Low income", Mean: 18.0},
	})

	assert.Equal(t, "donut", cfg.Type)
	assert.True(t, cfg.ShowLegend)
	assert.Len(t, cfg.Colors, 2)
}

func TestTimeSeries_ForecastOverlay(t *testing.T) {
	series := map[domain.Sex][]domain.SeriesPoint{
		domain.SexMale: {
			{Year: 2018, Value: 20.1},
			{Year: 2019, Value: 19.8},
			{Year: 2019, Value: 19.8, Forecast: true},
			{Year: 2020, Value: 19.5, Forecast: true},
		},
		domain.SexFemale: {
			{Year: 2018, Value: 22.0},
		},
	}

	cfg := TimeSeries("Lebanon", "% of pop", series)

	// Female first (one actual series, nothing to project), then the two
	// male series.
	require.Len(t, cfg.Series, 3)
	assert.Equal(t, "Female (Actual)", cfg.Series[0].Name)
	assert.Equal(t, "Male (Actual)", cfg.Series[1].Name)
	assert.Equal(t, "Male (Forecast)", cfg.Series[2].Name)
	assert.True(t, cfg.Series[2].Dashed)
	// Forecast overlay shares the actual series color.
	assert.Equal(t, cfg.Series[1].Color, cfg.Series[2].Color)
	require.Len(t, cfg.Series[2].Data, 2)
	assert.Equal(t, "2020", cfg.Series[2].Data[1].Label)
}

func TestIndicatorStack(t *testing.T) {
	cfg := IndicatorStack("Indicators", []domain.IndicatorSlice{
		{Year: 2019, Sex: domain.SexMale, Indicator: "B", Value: 2},
		{Year: 2018, Sex: domain.SexFemale, Indicator: "A", Value: 1},
		{Year: 2018, Sex: domain.SexMale, Indicator: "A", Value: 3},
	})

	assert.True(t, cfg.Stacked)
	require.Len(t, cfg.Series, 2)
	assert.Equal(t, "A", cfg.Series[0].Name)
	assert.Equal(t, "B", cfg.Series[1].Name)

	// Every series carries a point for every bucket, zero-filled.
	for _, s := range cfg.Series {
		assert.Len(t, s.Data, 3)
	}
	assert.Equal(t, "2018 – Female", cfg.Series[0].Data[0].Label)
}

func TestChoropleth(t *testing.T) {
	cfg := Choropleth("Mortality", "Deaths per 100k", []domain.MapEntry{
		{Country: "Lebanon", ISO3: "LBN", Mean: 50.456},
	})

	assert.Equal(t, []string{"LBN"}, cfg.Locations)
	assert.Equal(t, []float64{50.46}, cfg.Values)
	assert.Equal(t, []string{"Lebanon"}, cfg.Hover)
	assert.Equal(t, "Reds", cfg.Scale)
}
