package usecase

import (
	"context"
	"errors"
	"sort"

	log "github.com/sirupsen/logrus"

	"tobacco-dashboard-service/internal/domain"
	"tobacco-dashboard-service/internal/forecast"
)

// TimeSeriesUseCase produces per-country time series with trend
// projections and the stacked indicator comparison.
type TimeSeriesUseCase struct {
	repo domain.DatasetRepository
}

func NewTimeSeriesUseCase(repo domain.DatasetRepository) *TimeSeriesUseCase {
	return &TimeSeriesUseCase{repo: repo}
}

// CountrySeries returns, per sex, the historical yearly means of a metric
// for one country followed by fitted-trend projections for `horizon`
// years. Series too short to fit keep their historical points and get no
// projection.
func (uc *TimeSeriesUseCase) CountrySeries(ctx context.Context, country string, metric domain.Metric, horizon int) (map[domain.Sex][]domain.SeriesPoint, error) {
	if horizon < 0 || horizon > 50 {
		return nil, domain.ErrInvalidHorizon
	}

	var (
		obs []domain.Observation
		err error
	)
	filter := domain.ObservationFilter{Country: country}
	switch metric {
	case domain.MetricPrevalence:
		filter.Indicator = domain.IndicatorTobaccoUse
		obs, err = uc.repo.Tobacco(ctx, filter)
	case domain.MetricMortality:
		obs, err = uc.repo.Mortality(ctx, filter)
	default:
		return nil, domain.ErrUnknownMetric
	}
	if err != nil {
		return nil, err
	}
	if len(obs) == 0 {
		return nil, domain.ErrCountryNotFound
	}

	series := make(map[domain.Sex][]domain.SeriesPoint, len(domain.Sexes))
	for _, sex := range domain.Sexes {
		points := yearlyMeans(obs, sex)
		if len(points) == 0 {
			continue
		}

		if horizon > 0 {
			projected, err := forecast.Project(points, horizon)
			switch {
			case errors.Is(err, forecast.ErrInsufficientData):
				log.WithFields(log.Fields{
					"country": country,
					"sex":     sex,
					"metric":  metric,
				}).Debug("series too short for trend projection")
			case err != nil:
				return nil, err
			default:
				points = append(points, projected...)
			}
		}
		series[sex] = points
	}
	return series, nil
}

// IndicatorStack returns every tobacco indicator value for one country,
// ordered by (year, sex, indicator) for the stacked comparison chart.
func (uc *TimeSeriesUseCase) IndicatorStack(ctx context.Context, country string) ([]domain.IndicatorSlice, error) {
	obs, err := uc.repo.Tobacco(ctx, domain.ObservationFilter{Country: country})
	if err != nil {
		return nil, err
	}
	if len(obs) == 0 {
		return nil, domain.ErrCountryNotFound
	}

	slices := make([]domain.IndicatorSlice, 0, len(obs))
	for _, o := range obs {
		slices = append(slices, domain.IndicatorSlice{
			Year:      o.Year,
			Sex:       o.Sex,
			Indicator: o.Indicator,
			Value:     o.Value,
		})
	}
	sort.Slice(slices, func(i, j int) bool {
		if slices[i].Year != slices[j].Year {
			return slices[i].Year < slices[j].Year
		}
		if slices[i].Sex != slices[j].Sex {
			return slices[i].Sex < slices[j].Sex
		}
		return slices[i].Indicator < slices[j].Indicator
	})
	return slices, nil
}

// yearlyMeans collapses one sex's observations into a year-sorted series
// of mean values.
func yearlyMeans(obs []domain.Observation, sex domain.Sex) []domain.SeriesPoint {
	type acc struct {
		sum   float64
		count int
	}
	byYear := make(map[int]*acc)
	for _, o := range obs {
		if o.Sex != sex {
			continue
		}
		a, ok := byYear[o.Year]
		if !ok {
			a = &acc{}
			byYear[o.Year] = a
		}
		a.sum += o.Value
		a.count++
	}

	points := make([]domain.SeriesPoint, 0, len(byYear))
	for year, a := range byYear {
		points = append(points, domain.SeriesPoint{
			Year:  year,
			Value: a.sum / float64(a.count),
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Year < points[j].Year })
	return points
}
