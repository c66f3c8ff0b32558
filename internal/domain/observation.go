package domain

import "fmt"

// Sex is the subgroup dimension of every observation. Source data carries
// aggregate subgroups as well ("Both sexes"); only Male/Female survive load.
type Sex string

const (
	SexMale   Sex = "Male"
	SexFemale Sex = "Female"
)

// Sexes lists the subgroups in render order (female first, matching charts).
var Sexes = []Sex{SexFemale, SexMale}

func ParseSex(s string) (Sex, error) {
	switch s {
	case string(SexMale), "male", "M", "m":
		return SexMale, nil
	case string(SexFemale), "female", "F", "f":
		return SexFemale, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSex, s)
}

// Metric selects which of the two joined measures an endpoint reports on.
type Metric string

const (
	MetricPrevalence Metric = "prevalence"
	MetricMortality  Metric = "mortality"
)

func ParseMetric(s string) (Metric, error) {
	switch s {
	case string(MetricPrevalence):
		return MetricPrevalence, nil
	case string(MetricMortality):
		return MetricMortality, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMetric, s)
}

// Indicator names as they appear in the source spreadsheets.
const (
	// IndicatorTobaccoUse is the headline prevalence series used for KPIs,
	// rankings and time series.
	IndicatorTobaccoUse = "Estimate of current tobacco use prevalence (age-standardized) (%)"

	// IndicatorLungCancer is the only mortality indicator loaded.
	IndicatorLungCancer = "2.A.05 Tracheal, bronchus, and lung cancer incidence (age standardized) (per 100 000 population)"
)

// Observation is one measured value from either source table.
// (Country, Year, Sex, Indicator) is unique within a dataset post-load.
type Observation struct {
	Country   string
	ISO3      string
	Year      int
	Sex       Sex
	Indicator string
	Value     float64
}

// Key returns the uniqueness key for an observation within its dataset.
func (o Observation) Key() string {
	return fmt.Sprintf("%s|%d|%s|%s", o.Country, o.Year, o.Sex, o.Indicator)
}

// CountryMeta is the static per-country lookup table, immutable after load.
type CountryMeta struct {
	Country     string
	ISO3        string
	IncomeGroup string
}

// JoinedRow is the inner join of the headline prevalence and mortality
// series on (country, year, sex). Rows without a match on both sides are
// dropped at load time.
type JoinedRow struct {
	Country    string
	Year       int
	Sex        Sex
	Prevalence float64
	Mortality  float64
}

// GroupAverage is a derived aggregate: mean of a measure over one group
// (an income tier, a country, a year). Recomputed per request, never stored.
type GroupAverage struct {
	Key   string  `json:"key"`
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}

// MapEntry is one country on the choropleth: mean measure keyed by ISO3.
type MapEntry struct {
	Country string  `json:"country"`
	ISO3    string  `json:"iso3"`
	Mean    float64 `json:"mean"`
	Count   int     `json:"count"`
}

// SeriesPoint is one element of a per-country time series. Forecast points
// are fitted-trend extrapolations, not measurements.
type SeriesPoint struct {
	Year     int     `json:"year"`
	Value    float64 `json:"value"`
	Forecast bool    `json:"forecast"`
}

// CountryKPIs holds the per-sex headline means for one country.
type CountryKPIs struct {
	Country          string  `json:"country"`
	MalePrevalence   float64 `json:"male_prevalence"`
	FemalePrevalence float64 `json:"female_prevalence"`
	MaleMortality    float64 `json:"male_mortality"`
	FemaleMortality  float64 `json:"female_mortality"`
}

// IndicatorSlice is one cell of the stacked indicator comparison:
// the value of one tobacco indicator in one (year, sex) bucket.
type IndicatorSlice struct {
	Year      int     `json:"year"`
	Sex       Sex     `json:"sex"`
	Indicator string  `json:"indicator"`
	Value     float64 `json:"value"`
}

// ObservationFilter narrows repository queries. Zero values mean "no
// constraint"; Sex empty means both sexes.
type ObservationFilter struct {
	Country   string
	Indicator string
	Sex       Sex
	FromYear  int
	ToYear    int
	Income    string
}

// Matches reports whether an observation passes the filter's dimension
// constraints. Income is resolved by the repository, which owns the
// country metadata.
func (f ObservationFilter) Matches(o Observation) bool {
	if f.Country != "" && o.Country != f.Country {
		return false
	}
	if f.Indicator != "" && o.Indicator != f.Indicator {
		return false
	}
	if f.Sex != "" && o.Sex != f.Sex {
		return false
	}
	if f.FromYear != 0 && o.Year < f.FromYear {
		return false
	}
	if f.ToYear != 0 && o.Year > f.ToYear {
		return false
	}
	return true
}

// DatasetCounts reports loaded table sizes for health reporting.
type DatasetCounts struct {
	Tobacco   int `json:"tobacco"`
	Mortality int `json:"mortality"`
	Joined    int `json:"joined"`
}
