package dto

import (
	"fmt"
	"math"

	"tobacco-dashboard-service/internal/domain"
)

// ToCountryKPIsResponse lays the per-sex means out in the dashboard's
// reading order: prevalence row, then mortality row.
func ToCountryKPIsResponse(k *domain.CountryKPIs) CountryKPIsResponse {
	return CountryKPIsResponse{
		Country: k.Country,
		Items: []KPI{
			{Label: fmt.Sprintf("%s Male Prevalence", k.Country), Value: round2(k.MalePrevalence), Unit: "%"},
			{Label: fmt.Sprintf("%s Female Prevalence", k.Country), Value: round2(k.FemalePrevalence), Unit: "%"},
			{Label: fmt.Sprintf("%s Male Mortality", k.Country), Value: round2(k.MaleMortality), Unit: "per 100 000"},
			{Label: fmt.Sprintf("%s Female Mortality", k.Country), Value: round2(k.FemaleMortality), Unit: "per 100 000"},
		},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
