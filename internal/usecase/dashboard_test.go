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

func obs(country string, year int, sex domain.Sex, value float64) domain.Observation {
	return domain.Observation{Country: country, Year: year, Sex: sex, Indicator: domain.IndicatorTobaccoUse, Value: value}
}

func TestDashboardUseCase_CountryKPIs(t *testing.T) {
	repo := new(testutil.MockDatasetRepo)
	uc := NewDashboardUseCase(repo)

	repo.On("Tobacco", mock.Anything, domain.ObservationFilter{
		Country:   "Lebanon",
		Indicator: domain.IndicatorTobaccoUse,
	}).Return([]domain.Observation{
		obs("Lebanon", 2018, domain.SexMale, 38.0),
		obs("Lebanon", 2019, domain.SexMale, 36.0),
		obs("Lebanon", 2018, domain.SexFemale, 22.0),
	}, nil)
	repo.On("Mortality", mock.Anything, domain.ObservationFilter{Country: "Lebanon"}).Return([]domain.Observation{
		{Country: "Lebanon", Year: 2018, Sex: domain.SexMale, Indicator: domain.IndicatorLungCancer, Value: 52.0},
	}, nil)

	kpis, err := uc.CountryKPIs(context.Background(), "Lebanon")
	require.NoError(t, err)

	assert.InDelta(t, 37.0, kpis.MalePrevalence, 1e-9)
	assert.InDelta(t, 22.0, kpis.FemalePrevalence, 1e-9)
	assert.InDelta(t, 52.0, kpis.MaleMortality, 1e-9)
	assert.Zero(t, kpis.FemaleMortality)
	repo.AssertExpectations(t)
}

func TestDashboardUseCase_CountryKPIs_NotFound(t *testing.T) {
	repo := new(testutil.MockDatasetRepo)
	uc := NewDashboardUseCase(repo)

	repo.On("Tobacco", mock.Anything, mock.AnythingOfType("domain.ObservationFilter")).Return([]domain.Observation{}, nil)
	repo.On("Mortality", mock.Anything, mock.AnythingOfType("domain.ObservationFilter")).Return([]domain.Observation{}, nil)

	_, err := uc.CountryKPIs(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, domain.ErrCountryNotFound)
}

func TestDashboardUseCase_Rankings(t *testing.T) {
	repo := new(testutil.MockDatasetRepo)
	uc := NewDashboardUseCase(repo)

	repo.On("Tobacco", mock.Anything, domain.ObservationFilter{Indicator: domain.IndicatorTobaccoUse}).Return([]domain.Observation{
		obs("Lebanon", 2018, domain.SexMale, 40.0),
		obs("Lebanon", 2019, domain.SexMale, 36.0), // mean 38
		obs("France", 2018, domain.SexMale, 38.0),  // mean 38, ties with Lebanon
		obs("Chile", 2018, domain.SexMale, 44.0),   // mean 44
		obs("Nauru", 2018, domain.SexMale, 12.0),
	}, nil)

	groups, err := uc.Rankings(context.Background(), domain.MetricPrevalence, 3, domain.ObservationFilter{})
	require.NoError(t, err)
	require.Len(t, groups, 3)

	// Descending by mean; the 38.0 tie breaks by country name ascending.
	assert.Equal(t, "Chile", groups[0].Key)
	assert.Equal(t, "France", groups[1].Key)
	assert.Equal(t, "Lebanon", groups[2].Key)
	assert.InDelta(t, 38.0, groups[2].Mean, 1e-9)
}

func TestDashboardUseCase_Rankings_InvalidLimit(t *testing.T) {
	repo := new(testutil.MockDatasetRepo)
	uc := NewDashboardUseCase(repo)

	_, err := uc.Rankings(context.Background(), domain.MetricPrevalence, 0, domain.ObservationFilter{})
	assert.ErrorIs(t, err, domain.ErrInvalidLimit)
}

func TestDashboardUseCase_Rankings_UnknownMetric(t *testing.T) {
	repo := new(testutil.MockDatasetRepo)
	uc := NewDashboardUseCase(repo)

	_, err := uc.Rankings(context.Background(), domain.Metric("bogus"), 5, domain.ObservationFilter{})
	assert.ErrorIs(t, err, domain.ErrUnknownMetric)
}

func TestDashboardUseCase_IncomeGroupAverages(t *testing.T) {
	repo := new(testutil.MockDatasetRepo)
	uc := NewDashboardUseCase(repo)

	repo.On("Tobacco", mock.Anything, domain.ObservationFilter{Indicator: domain.IndicatorTobaccoUse}).Return([]domain.Observation{
		obs("France", 2018, domain.SexMale, 30.0),
		obs("Germany", 2018, domain.SexMale, 20.0),
		obs("Lebanon", 2018, domain.SexMale, 40.0),
		obs("Atlantis", 2018, domain.SexMale, 10.0),
	}, nil)
	repo.On("Meta", mock.Anything, "France").Return(domain.CountryMeta{Country: "France", IncomeGroup: "High income"}, nil)
	repo.On("Meta", mock.Anything, "Germany").Return(domain.CountryMeta{Country: "Germany", IncomeGroup: "High income"}, nil)
	repo.On("Meta", mock.Anything, "Lebanon").Return(domain.CountryMeta{Country: "Lebanon", IncomeGroup: "Lower middle income"}, nil)
	repo.On("Meta", mock.Anything, "Atlantis").Return(domain.CountryMeta{}, domain.ErrCountryNotFound)

	groups, err := uc.IncomeGroupAverages(context.Background(), domain.MetricPrevalence, domain.ObservationFilter{})
	require.NoError(t, err)
	require.Len(t, groups, 3)

	// Sorted by tier name.
	assert.Equal(t, "High income", groups[0].Key)
	assert.InDelta(t, 25.0, groups[0].Mean, 1e-9)
	assert.Equal(t, 2, groups[0].Count)
	assert.Equal(t, "Lower middle income", groups[1].Key)
	assert.Equal(t, "Unclassified", groups[2].Key)
}

func TestDashboardUseCase_MapAverages(t *testing.T) {
	repo := new(testutil.MockDatasetRepo)
	uc := NewDashboardUseCase(repo)

	repo.On("Mortality", mock.Anything, domain.ObservationFilter{}).Return([]domain.Observation{
		{Country: "Lebanon", ISO3: "LBN", Year: 2018, Sex: domain.SexMale, Indicator: domain.IndicatorLungCancer, Value: 52.0},
		{Country: "Lebanon", ISO3: "LBN", Year: 2019, Sex: domain.SexMale, Indicator: domain.IndicatorLungCancer, Value: 48.0},
		{Country: "Nowhere", Year: 2018, Sex: domain.SexMale, Indicator: domain.IndicatorLungCancer, Value: 10.0},
	}, nil)
	repo.On("Meta", mock.Anything, "Nowhere").Return(domain.CountryMeta{}, domain.ErrCountryNotFound)

	entries, err := uc.MapAverages(context.Background(), domain.MetricMortality, domain.ObservationFilter{})
	require.NoError(t, err)

	// Countries without an ISO3 code cannot be drawn and are skipped.
	require.Len(t, entries, 1)
	assert.Equal(t, "LBN", entries[0].ISO3)
	assert.InDelta(t, 50.0, entries[0].Mean, 1e-9)
	assert.Equal(t, 2, entries[0].Count)
}

func TestDashboardUseCase_Countries(t *testing.T) {
	repo := new(testutil.MockDatasetRepo)
	uc := NewDashboardUseCase(repo)

	repo.On("Countries", mock.Anything).Return([]string{"France", "Lebanon"}, nil)

	countries, err := uc.Countries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"France", "Lebanon"}, countries)
}
