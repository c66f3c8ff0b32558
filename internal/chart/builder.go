package chart

import (
	"fmt"
	"sort"

	"tobacco-dashboard-service/internal/domain"
)

// Ranking builds the horizontal top-N bar.
func Ranking(title, unit string, groups []domain.GroupAverage) *Config {
	points := make([]Point, 0, len(groups))
	for _, g := range groups {
		points = append(points, Point{Label: g.Key, Value: round2(g.Mean)})
	}
	return &Config{
		Type:       "hbar",
		Title:      title,
		XAxis:      unit,
		ShowLegend: false,
		Series:     []Series{{Name: unit, Color: colorAt(0), Data: points}},
		Colors:     assignColors(1),
	}
}

// Donut builds the income-tier breakdown.
func Donut(title, unit string, groups []domain.GroupAverage) *Config {
	points := make([]Point, 0, len(groups))
	for _, g := range groups {
		points = append(points, Point{Label: g.Key, Value: round2(g.Mean)})
	}
	return &Config{
		Type:       "donut",
		Title:      title,
		ShowLegend: true,
		Series:     []Series{{Name: unit, Data: points}},
		Colors:     assignColors(len(points)),
	}
}

// TimeSeries builds the per-country chart: grouped actual bars per sex
// with a dashed forecast line overlaid per sex.
func TimeSeries(title, yAxis string, series map[domain.Sex][]domain.SeriesPoint) *Config {
	cfg := &Config{
		Type:       "timeseries",
		Title:      title,
		XAxis:      "Year",
		YAxis:      yAxis,
		ShowLegend: true,
	}

	for i, sex := range domain.Sexes {
		points, ok := series[sex]
		if !ok {
			continue
		}

		var actual, projected []Point
		for _, p := range points {
			pt := Point{Label: fmt.Sprintf("%d", p.Year), Value: round2(p.Value)}
			if p.Forecast {
				projected = append(projected, pt)
			} else {
				actual = append(actual, pt)
			}
		}

		cfg.Series = append(cfg.Series, Series{
			Name:  fmt.Sprintf("%s (Actual)", sex),
			Color: colorAt(i),
			Data:  actual,
		})
		if len(projected) > 0 {
			cfg.Series = append(cfg.Series, Series{
				Name:   fmt.Sprintf("%s (Forecast)", sex),
				Color:  colorAt(i),
				Dashed: true,
				Data:   projected,
			})
		}
	}
	return cfg
}

// IndicatorStack builds the stacked indicator comparison: one bar per
// "year – sex" bucket, one stacked series per indicator.
func IndicatorStack(title string, slices []domain.IndicatorSlice) *Config {
	bucketSet := make(map[string]bool)
	var buckets []string
	indicatorSet := make(map[string]bool)
	var indicators []string
	values := make(map[string]map[string]float64)

	for _, s := range slices {
		bucket := fmt.Sprintf("%d – %s", s.Year, s.Sex)
		if !bucketSet[bucket] {
			bucketSet[bucket] = true
			buckets = append(buckets, bucket)
		}
		if !indicatorSet[s.Indicator] {
			indicatorSet[s.Indicator] = true
			indicators = append(indicators, s.Indicator)
		}
		if values[s.Indicator] == nil {
			values[s.Indicator] = make(map[string]float64)
		}
		values[s.Indicator][bucket] = s.Value
	}
	sort.Strings(buckets)
	sort.Strings(indicators)

	cfg := &Config{
		Type:       "bar",
		Title:      title,
		XAxis:      "Year – Sex",
		YAxis:      "Prevalence (%)",
		Stacked:    true,
		ShowLegend: true,
		Colors:     assignColors(len(indicators)),
	}
	for i, ind := range indicators {
		points := make([]Point, 0, len(buckets))
		for _, b := range buckets {
			points = append(points, Point{Label: b, Value: round2(values[ind][b])})
		}
		cfg.Series = append(cfg.Series, Series{Name: ind, Color: colorAt(i), Data: points})
	}
	return cfg
}

// Choropleth builds the world-map artifact from per-country means.
func Choropleth(title, legend string, entries []domain.MapEntry) *MapConfig {
	cfg := &MapConfig{
		Title:  title,
		Scale:  "Reds",
		Legend: legend,
	}
	for _, e := range entries {
		cfg.Locations = append(cfg.Locations, e.ISO3)
		cfg.Values = append(cfg.Values, round2(e.Mean))
		cfg.Hover = append(cfg.Hover, e.Country)
	}
	return cfg
}
