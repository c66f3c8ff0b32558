package repository

import (
	"context"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"

	"tobacco-dashboard-service/internal/domain"
)

// Store implements domain.DatasetRepository over the tables loaded at
// startup. All fields are read-only after New returns, so the store is
// safe for concurrent handlers without locking.
type Store struct {
	tobacco   []domain.Observation
	mortality []domain.Observation
	joined    []domain.JoinedRow
	meta      map[string]domain.CountryMeta
	countries []string
}

// New builds the store and performs the inner join of the headline
// prevalence series against the mortality series on (country, year, sex).
// Rows without a match on both sides are dropped; the count is logged.
func New(tobacco, mortality []domain.Observation, meta map[string]domain.CountryMeta) *Store {
	s := &Store{
		tobacco:   tobacco,
		mortality: mortality,
		meta:      meta,
	}

	countrySet := make(map[string]bool)
	for _, o := range tobacco {
		countrySet[o.Country] = true
	}
	s.countries = make([]string, 0, len(countrySet))
	for c := range countrySet {
		s.countries = append(s.countries, c)
	}
	sort.Strings(s.countries)

	s.joined = join(tobacco, mortality)
	return s
}

func joinKey(country string, year int, sex domain.Sex) string {
	return fmt.Sprintf("%s|%d|%s", country, year, sex)
}

func join(tobacco, mortality []domain.Observation) []domain.JoinedRow {
	byKey := make(map[string]float64, len(mortality))
	for _, o := range mortality {
		byKey[joinKey(o.Country, o.Year, o.Sex)] = o.Value
	}

	var (
		joined  []domain.JoinedRow
		dropped int
	)
	matched := make(map[string]bool)
	for _, o := range tobacco {
		if o.Indicator != domain.IndicatorTobaccoUse {
			continue
		}
		key := joinKey(o.Country, o.Year, o.Sex)
		mort, ok := byKey[key]
		if !ok {
			dropped++
			continue
		}
		matched[key] = true
		joined = append(joined, domain.JoinedRow{
			Country:    o.Country,
			Year:       o.Year,
			Sex:        o.Sex,
			Prevalence: o.Value,
			Mortality:  mort,
		})
	}
	dropped += len(byKey) - len(matched)

	if dropped > 0 {
		log.WithField("dropped_rows", dropped).Warn("join mismatch: unmatched rows dropped")
	}
	return joined
}

func (s *Store) Countries(ctx context.Context) ([]string, error) {
	return s.countries, nil
}

func (s *Store) Meta(ctx context.Context, country string) (domain.CountryMeta, error) {
	m, ok := s.meta[country]
	if !ok {
		return domain.CountryMeta{}, domain.ErrCountryNotFound
	}
	return m, nil
}

func (s *Store) Tobacco(ctx context.Context, filter domain.ObservationFilter) ([]domain.Observation, error) {
	return s.filterObservations(s.tobacco, filter), nil
}

func (s *Store) Mortality(ctx context.Context, filter domain.ObservationFilter) ([]domain.Observation, error) {
	return s.filterObservations(s.mortality, filter), nil
}

func (s *Store) Joined(ctx context.Context, filter domain.ObservationFilter) ([]domain.JoinedRow, error) {
	var out []domain.JoinedRow
	for _, r := range s.joined {
		if filter.Country != "" && r.Country != filter.Country {
			continue
		}
		if filter.Sex != "" && r.Sex != filter.Sex {
			continue
		}
		if filter.FromYear != 0 && r.Year < filter.FromYear {
			continue
		}
		if filter.ToYear != 0 && r.Year > filter.ToYear {
			continue
		}
		if !s.incomeMatches(r.Country, filter.Income) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *Store) Counts(ctx context.Context) (domain.DatasetCounts, error) {
	return domain.DatasetCounts{
		Tobacco:   len(s.tobacco),
		Mortality: len(s.mortality),
		Joined:    len(s.joined),
	}, nil
}

func (s *Store) filterObservations(obs []domain.Observation, filter domain.ObservationFilter) []domain.Observation {
	var out []domain.Observation
	for _, o := range obs {
		if !filter.Matches(o) {
			continue
		}
		if !s.incomeMatches(o.Country, filter.Income) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func (s *Store) incomeMatches(country, income string) bool {
	if income == "" {
		return true
	}
	return s.meta[country].IncomeGroup == income
}
