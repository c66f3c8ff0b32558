package forecast

import (
	"errors"

	"gonum.org/v1/gonum/stat"

	"tobacco-dashboard-service/internal/domain"
)

// ErrInsufficientData is returned when a series has fewer than two
// distinct years; a line cannot be fitted through a single point.
var ErrInsufficientData = errors.New("series needs at least two distinct years to fit a trend")

// Fit is an ordinary least-squares line value = Intercept + Slope*year.
// It is a decorative trend line: no confidence intervals, no outlier
// handling.
type Fit struct {
	Intercept float64
	Slope     float64
}

// At evaluates the fitted line at a year.
func (f Fit) At(year int) float64 {
	return f.Intercept + f.Slope*float64(year)
}

// FitSeries fits a line through the historical points of a series.
func FitSeries(points []domain.SeriesPoint) (Fit, error) {
	xs := make([]float64, 0, len(points))
	ys := make([]float64, 0, len(points))
	years := make(map[int]bool)
	for _, p := range points {
		if p.Forecast {
			continue
		}
		xs = append(xs, float64(p.Year))
		ys = append(ys, p.Value)
		years[p.Year] = true
	}
	if len(years) < 2 {
		return Fit{}, ErrInsufficientData
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	return Fit{Intercept: alpha, Slope: beta}, nil
}

// Project returns fitted-trend points for the last historical year and
// `horizon` years beyond it. The first returned point (offset zero) is the
// fitted value at the last historical year, anchoring the overlay to the
// trend rather than the raw last measurement.
func Project(points []domain.SeriesPoint, horizon int) ([]domain.SeriesPoint, error) {
	fit, err := FitSeries(points)
	if err != nil {
		return nil, err
	}

	last := 0
	for _, p := range points {
		if !p.Forecast && p.Year > last {
			last = p.Year
		}
	}

	out := make([]domain.SeriesPoint, 0, horizon+1)
	for offset := 0; offset <= horizon; offset++ {
		year := last + offset
		out = append(out, domain.SeriesPoint{
			Year:     year,
			Value:    fit.At(year),
			Forecast: true,
		})
	}
	return out, nil
}
