package domain

import "context"

// DatasetRepository is the read-only port over the loaded tables. All
// methods are safe for concurrent use: nothing mutates after startup.
type DatasetRepository interface {
	// Countries returns the distinct countries of the tobacco table,
	// sorted ascending.
	Countries(ctx context.Context) ([]string, error)

	// Meta returns the static metadata for a country.
	Meta(ctx context.Context, country string) (CountryMeta, error)

	// Tobacco returns tobacco observations passing the filter.
	Tobacco(ctx context.Context, filter ObservationFilter) ([]Observation, error)

	// Mortality returns mortality observations passing the filter.
	Mortality(ctx context.Context, filter ObservationFilter) ([]Observation, error)

	// Joined returns joined prevalence/mortality rows passing the filter.
	// Indicator constraints do not apply to joined rows.
	Joined(ctx context.Context, filter ObservationFilter) ([]JoinedRow, error)

	// Counts reports table sizes for health reporting.
	Counts(ctx context.Context) (DatasetCounts, error)
}
