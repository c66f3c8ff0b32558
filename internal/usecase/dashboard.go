package usecase

import (
	"context"
	"sort"

	"tobacco-dashboard-service/internal/domain"
)

// DashboardUseCase computes the descriptive aggregates behind the KPI,
// map, income-group and ranking views. All aggregates are arithmetic
// means recomputed per request from the read-only tables.
type DashboardUseCase struct {
	repo domain.DatasetRepository
}

func NewDashboardUseCase(repo domain.DatasetRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

func (uc *DashboardUseCase) Countries(ctx context.Context) ([]string, error) {
	return uc.repo.Countries(ctx)
}

// CountryKPIs returns the per-sex headline means for one country.
func (uc *DashboardUseCase) CountryKPIs(ctx context.Context, country string) (*domain.CountryKPIs, error) {
	tob, err := uc.repo.Tobacco(ctx, domain.ObservationFilter{
		Country:   country,
		Indicator: domain.IndicatorTobaccoUse,
	})
	if err != nil {
		return nil, err
	}
	mor, err := uc.repo.Mortality(ctx, domain.ObservationFilter{Country: country})
	if err != nil {
		return nil, err
	}
	if len(tob) == 0 && len(mor) == 0 {
		return nil, domain.ErrCountryNotFound
	}

	kpis := &domain.CountryKPIs{Country: country}
	kpis.MalePrevalence = meanBySex(tob, domain.SexMale)
	kpis.FemalePrevalence = meanBySex(tob, domain.SexFemale)
	kpis.MaleMortality = meanBySex(mor, domain.SexMale)
	kpis.FemaleMortality = meanBySex(mor, domain.SexFemale)
	return kpis, nil
}

// MapAverages returns the mean of a metric per country keyed by ISO3, for
// the choropleth. Countries without an ISO3 code cannot be placed on the
// map and are skipped.
func (uc *DashboardUseCase) MapAverages(ctx context.Context, metric domain.Metric, filter domain.ObservationFilter) ([]domain.MapEntry, error) {
	obs, err := uc.metricObservations(ctx, metric, filter)
	if err != nil {
		return nil, err
	}

	type acc struct {
		iso3  string
		sum   float64
		count int
	}
	byCountry := make(map[string]*acc)
	for _, o := range obs {
		a, ok := byCountry[o.Country]
		if !ok {
			a = &acc{}
			byCountry[o.Country] = a
		}
		if a.iso3 == "" {
			a.iso3 = o.ISO3
		}
		a.sum += o.Value
		a.count++
	}

	entries := make([]domain.MapEntry, 0, len(byCountry))
	for country, a := range byCountry {
		iso3 := a.iso3
		if iso3 == "" {
			if m, err := uc.repo.Meta(ctx, country); err == nil {
				iso3 = m.ISO3
			}
		}
		if iso3 == "" {
			continue
		}
		entries = append(entries, domain.MapEntry{
			Country: country,
			ISO3:    iso3,
			Mean:    a.sum / float64(a.count),
			Count:   a.count,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Country < entries[j].Country })
	return entries, nil
}

// IncomeGroupAverages returns the mean of a metric per World Bank income
// tier. Observations for countries without a tier are grouped under
// "Unclassified".
func (uc *DashboardUseCase) IncomeGroupAverages(ctx context.Context, metric domain.Metric, filter domain.ObservationFilter) ([]domain.GroupAverage, error) {
	obs, err := uc.metricObservations(ctx, metric, filter)
	if err != nil {
		return nil, err
	}

	keyed := make([]keyedValue, 0, len(obs))
	for _, o := range obs {
		tier := "Unclassified"
		if m, err := uc.repo.Meta(ctx, o.Country); err == nil && m.IncomeGroup != "" {
			tier = m.IncomeGroup
		}
		keyed = append(keyed, keyedValue{key: tier, value: o.Value})
	}

	groups := meanByKey(keyed)
	sort.Slice(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
	return groups, nil
}

// Rankings returns the top-N countries by mean metric value, sorted
// descending; ties break by country name ascending.
func (uc *DashboardUseCase) Rankings(ctx context.Context, metric domain.Metric, limit int, filter domain.ObservationFilter) ([]domain.GroupAverage, error) {
	if limit <= 0 {
		return nil, domain.ErrInvalidLimit
	}

	obs, err := uc.metricObservations(ctx, metric, filter)
	if err != nil {
		return nil, err
	}

	keyed := make([]keyedValue, 0, len(obs))
	for _, o := range obs {
		keyed = append(keyed, keyedValue{key: o.Country, value: o.Value})
	}

	groups := meanByKey(keyed)
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Mean != groups[j].Mean {
			return groups[i].Mean > groups[j].Mean
		}
		return groups[i].Key < groups[j].Key
	})
	if len(groups) > limit {
		groups = groups[:limit]
	}
	return groups, nil
}

// metricObservations resolves a metric to its source table: prevalence
// reads the headline tobacco series, mortality reads the mortality table.
func (uc *DashboardUseCase) metricObservations(ctx context.Context, metric domain.Metric, filter domain.ObservationFilter) ([]domain.Observation, error) {
	switch metric {
	case domain.MetricPrevalence:
		filter.Indicator = domain.IndicatorTobaccoUse
		return uc.repo.Tobacco(ctx, filter)
	case domain.MetricMortality:
		filter.Indicator = ""
		return uc.repo.Mortality(ctx, filter)
	}
	return nil, domain.ErrUnknownMetric
}

type keyedValue struct {
	key   string
	value float64
}

func meanByKey(values []keyedValue) []domain.GroupAverage {
	type acc struct {
		sum   float64
		count int
	}
	byKey := make(map[string]*acc)
	order := make([]string, 0)
	for _, v := range values {
		a, ok := byKey[v.key]
		if !ok {
			a = &acc{}
			byKey[v.key] = a
			order = append(order, v.key)
		}
		a.sum += v.value
		a.count++
	}

	groups := make([]domain.GroupAverage, 0, len(order))
	for _, key := range order {
		a := byKey[key]
		groups = append(groups, domain.GroupAverage{
			Key:   key,
			Mean:  a.sum / float64(a.count),
			Count: a.count,
		})
	}
	return groups
}

func meanBySex(obs []domain.Observation, sex domain.Sex) float64 {
	var sum float64
	var count int
	for _, o := range obs {
		if o.Sex != sex {
			continue
		}
		sum += o.Value
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
