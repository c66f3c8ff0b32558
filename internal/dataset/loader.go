package dataset

import (
	"strconv"

	log "github.com/sirupsen/logrus"

	"tobacco-dashboard-service/internal/domain"
)

// TobaccoIndicators is the full indicator set kept from the tobacco
// dataset: the headline prevalence series plus the adolescent/adult
// breakdown used by the stacked comparison.
var TobaccoIndicators = []string{
	domain.IndicatorTobaccoUse,
	"Current cigarette smoking among adolescents (%)",
	"Current e-cigarette use among adolescents (%)",
	"Current smokeless tobacco use among adolescents (%)",
	"Current tobacco smoking among adolescents (%)",
	"Current tobacco use among adolescents (%)",
	"Daily cigarette smoking among adolescents (%)",
	"Daily tobacco smoking among adolescents (%)",
	"Current cigarette smoking among adults (%)",
	"Current e-cigarette use among adults (%)",
	"Current smokeless tobacco use among adults (%)",
	"Current tobacco smoking among adults (%)",
	"Current tobacco use among adults (%)",
	"Daily cigarette smoking among adults (%)",
	"Daily e-cigarette use among adults (%)",
	"Daily smokeless tobacco use among adults (%)",
	"Daily tobacco smoking among adults (%)",
	"Daily tobacco use among adults (%)",
}

// Dataset holds everything loaded at startup. Read-only afterwards.
type Dataset struct {
	Tobacco   []domain.Observation
	Mortality []domain.Observation
	Meta      map[string]domain.CountryMeta
}

// Load reads both source spreadsheets and normalizes them into observation
// tables. Fatal errors (missing file, missing column) abort startup; rows
// that fail row-level parsing are skipped and counted.
func Load(tobaccoPath, mortalityPath string) (*Dataset, error) {
	meta := make(map[string]domain.CountryMeta)

	tobacco, err := loadFile(tobaccoPath, indicatorSet(TobaccoIndicators), meta)
	if err != nil {
		return nil, err
	}
	mortality, err := loadFile(mortalityPath, indicatorSet([]string{domain.IndicatorLungCancer}), meta)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"tobacco_rows":   len(tobacco),
		"mortality_rows": len(mortality),
		"countries":      len(meta),
	}).Info("datasets loaded")

	return &Dataset{Tobacco: tobacco, Mortality: mortality, Meta: meta}, nil
}

func indicatorSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// loadFile reads one spreadsheet into observations, keeping only Male and
// Female subgroups and the requested indicators. The first occurrence of a
// (country, year, sex, indicator) key wins; duplicates are dropped.
func loadFile(path string, indicators map[string]bool, meta map[string]domain.CountryMeta) ([]domain.Observation, error) {
	header, rows, err := readTable(path)
	if err != nil {
		return nil, err
	}

	idx, err := indexColumns(path, header)
	if err != nil {
		return nil, err
	}

	var (
		obs       []domain.Observation
		seen      = make(map[string]bool)
		skipped   int
		duplicate int
	)

	for _, row := range rows {
		indicator := cell(row, idx.indicator)
		if !indicators[indicator] {
			continue
		}

		sex, err := domain.ParseSex(cell(row, idx.sex))
		if err != nil {
			continue // "Both sexes" and other aggregate subgroups
		}

		country := cell(row, idx.country)
		if country == "" {
			skipped++
			continue
		}

		year, err := strconv.Atoi(cell(row, idx.year))
		if err != nil {
			skipped++
			continue
		}

		value, err := strconv.ParseFloat(cell(row, idx.value), 64)
		if err != nil {
			skipped++
			continue
		}

		o := domain.Observation{
			Country:   country,
			ISO3:      cell(row, idx.iso3),
			Year:      year,
			Sex:       sex,
			Indicator: indicator,
			Value:     value,
		}

		if seen[o.Key()] {
			duplicate++
			continue
		}
		seen[o.Key()] = true
		obs = append(obs, o)

		mergeMeta(meta, country, o.ISO3, cell(row, idx.income))
	}

	if skipped > 0 || duplicate > 0 {
		log.WithFields(log.Fields{
			"path":      path,
			"skipped":   skipped,
			"duplicate": duplicate,
		}).Warn("rows dropped during load")
	}

	return obs, nil
}

// mergeMeta fills country metadata from whichever dataset carries it;
// the first non-empty value wins.
func mergeMeta(meta map[string]domain.CountryMeta, country, iso3, income string) {
	m, ok := meta[country]
	if !ok {
		m = domain.CountryMeta{Country: country}
	}
	if m.ISO3 == "" {
		m.ISO3 = iso3
	}
	if m.IncomeGroup == "" {
		m.IncomeGroup = income
	}
	meta[country] = m
}
