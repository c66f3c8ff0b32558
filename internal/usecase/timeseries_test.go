package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tobacco-dashboard-service/internal/domain"
	"tobacco-dashboard-service/internal/testutil"
)

func TestTimeSeriesUseCase_CountrySeries(t *testing.T) {
	repo := new(testutil.MockDatasetRepo)
	uc := NewTimeSeriesUseCase(repo)

	repo.On("Tobacco", mock.Anything, domain.ObservationFilter{
		Country:   "Lebanon",
		Indicator: domain.IndicatorTobaccoUse,
	}).Return([]domain.Observation{
		obs("Lebanon", 2018, domain.SexMale, 20.1),
		obs("Lebanon", 2019, domain.SexMale, 19.8),
		obs("Lebanon", 2018, domain.SexFemale, 22.0),
	}, nil)

	series, err := uc.CountrySeries(context.Background(), "Lebanon", domain.MetricPrevalence, 2)
	require.NoError(t, err)

	male := series[domain.SexMale]
	// 2 historical + horizon-anchor + 2 projected years.
	require.Len(t, male, 5)
	assert.False(t, male[0].Forecast)
	assert.False(t, male[1].Forecast)
	assert.True(t, male[2].Forecast)
	assert.Equal(t, 2019, male[2].Year)
	assert.InDelta(t, 19.8, male[2].Value, 1e-9)
	assert.Equal(t, 2021, male[4].Year)
	assert.InDelta(t, 19.2, male[4].Value, 1e-9)

	// Single-year series keeps its history but gets no projection.
	female := series[domain.SexFemale]
	require.Len(t, female, 1)
	assert.False(t, female[0].Forecast)
}

func TestTimeSeriesUseCase_CountrySeries_NoForecastAtZeroHorizon(t *testing.T) {
	repo := new(testutil.MockDatasetRepo)
	uc := NewTimeSeriesUseCase(repo)

	repo.On("Tobacco", mock.Anything, mock.AnythingOfType("domain.ObservationFilter")).Return([]domain.Observation{
		obs("Lebanon", 2018, domain.SexMale, 20.1),
		obs("Lebanon", 2019, domain.SexMale, 19.8),
	}, nil)

	series, err := uc.CountrySeries(context.Background(), "Lebanon", domain.MetricPrevalence, 0)
	require.NoError(t, err)
	require.Len(t, series[domain.SexMale], 2)
	for _, p := range series[domain.SexMale] {
		assert.False(t, p.Forecast)
	}
}

func TestTimeSeriesUseCase_CountrySeries_YearlyMeans(t *testing.T) {
	repo := new(testutil.MockDatasetRepo)
	uc := NewTimeSeriesUseCase(repo)

	// Mortality has a single indicator; duplicate years collapse to means.
	repo.On("Mortality", mock.Anything, domain.ObservationFilter{Country: "Lebanon"}).Return([]domain.Observation{
		{Country: "Lebanon", Year: 2019, Sex: domain.SexMale, Indicator: domain.IndicatorLungCancer, Value: 50.0},
		{Country: "Lebanon", Year: 2018, Sex: domain.SexMale, Indicator: domain.IndicatorLungCancer, Value: 40.0},
	}, nil)

	series, err := uc.CountrySeries(context.Background(), "Lebanon", domain.MetricMortality, 0)
	require.NoError(t, err)

	male := series[domain.SexMale]
	require.Len(t, male, 2)
	assert.Equal(t, 2018, male[0].Year)
	assert.Equal(t, 2019, male[1].Year)
}

func TestTimeSeriesUseCase_CountrySeries_InvalidHorizon(t *testing.T) {
	repo := new(testutil.MockDatasetRepo)
	uc := NewTimeSeriesUseCase(repo)

	_, err := uc.CountrySeries(context.Background(), "Lebanon", domain.MetricPrevalence, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidHorizon)

	_, err = uc.CountrySeries(context.Background(), "Lebanon", domain.MetricPrevalence, 51)
	assert.ErrorIs(t, err, domain.ErrInvalidHorizon)
}

func TestTimeSeriesUseCase_CountrySeries_UnknownCountry(t *testing.T) {
	repo := new(testutil.MockDatasetRepo)
	uc := NewTimeSeriesUseCase(repo)

	repo.On("Tobacco", mock.Anything, mock.AnythingOfType("domain.ObservationFilter")).Return([]domain.Observation{}, nil)

	_, err := uc.CountrySeries(context.Background(), "Atlantis", domain.MetricPrevalence, 5)
	assert.ErrorIs(t, err, domain.ErrCountryNotFound)
}

func TestTimeSeriesUseCase_IndicatorStack(t *testing.T) {
	repo := new(testutil.MockDatasetRepo)
	uc := NewTimeSeriesUseCase(repo)

	repo.On("Tobacco", mock.Anything, domain.ObservationFilter{Country: "Lebanon"}).Return([]domain.Observation{
		{Country: "Lebanon", Year: 2019, Sex: domain.SexMale, Indicator: "Current tobacco use among adults (%)", Value: 35.0},
		{Country: "Lebanon", Year: 2018, Sex: domain.SexFemale, Indicator: "Current cigarette smoking among adults (%)", Value: 20.0},
		{Country: "Lebanon", Year: 2018, Sex: domain.SexMale, Indicator: "Current cigarette smoking among adults (%)", Value: 30.0},
	}, nil)

	slices, err := uc.IndicatorStack(context.Background(), "Lebanon")
	require.NoError(t, err)
	require.Len(t, slices, 3)

	// Ordered by year, then sex, then indicator.
	assert.Equal(t, 2018, slices[0].Year)
	assert.Equal(t, domain.SexFemale, slices[0].Sex)
	assert.Equal(t, 2018, slices[1].Year)
	assert.Equal(t, domain.SexMale, slices[1].Sex)
	assert.Equal(t, 2019, slices[2].Year)
}

func TestTimeSeriesUseCase_IndicatorStack_UnknownCountry(t *testing.T) {
	repo := new(testutil.MockDatasetRepo)
	uc := NewTimeSeriesUseCase(repo)

	repo.On("Tobacco", mock.Anything, mock.AnythingOfType("domain.ObservationFilter")).Return([]domain.Observation{}, nil)

	_, err := uc.IndicatorStack(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, domain.ErrCountryNotFound)
}
