package services

import (
	"math"
	"time"

	"finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

type seasonalityService struct {
	opts SeasonalityOptions
}

// NewSeasonalityService creates the seasonality detector
func NewSeasonalityService(opts SeasonalityOptions) SeasonalityServiceInterface {
	return &seasonalityService{opts: opts}
}

// DetectSeasonality compares each calendar month's average against the overall
// average. Keys that are not YYYY-MM are ignored.
func (s *seasonalityService) DetectSeasonality(periodValues map[string]decimal.Decimal) models.SeasonalityResult {
	result := models.SeasonalityResult{
		Indices:    make(map[int]decimal.Decimal),
		Strength:   decimal.Zero,
		Confidence: models.SeasonalityConfidenceLow,
	}

	monthValues := make(map[int][]float64)
	years := make(map[int]struct{})
	var all []float64

	for key, value := range periodValues {
		period, err := time.Parse(monthKeyLayout, key)
		if err != nil {
			continue
		}
		v := value.InexactFloat64()
		month := int(period.Month())
		monthValues[month] = append(monthValues[month], v)
		years[period.Year()] = struct{}{}
		all = append(all, v)
	}

	result.Years = len(years)
	if result.Years >= s.opts.MinYearsForHigh {
		result.Confidence = models.SeasonalityConfidenceHigh
	}

	overallMean := mean(all)
	if len(monthValues) < 2 || math.Abs(overallMean) < epsilon {
		return result
	}

	indices := make(map[int]float64, len(monthValues))
	sumSquares := 0.0
	for month, values := range monthValues {
		index := mean(values) / overallMean
		indices[month] = index
		sumSquares += (index - 1) * (index - 1)
	}
	strength := math.Sqrt(sumSquares / float64(len(indices)))

	// Walking months in calendar order keeps ties on the lower month number.
	peak, low := 0, 0
	for month := 1; month <= 12; month++ {
		index, ok := indices[month]
		if !ok {
			continue
		}
		result.Indices[month] = toRatio(index)
		if peak == 0 || index > indices[peak] {
			peak = month
		}
		if low == 0 || index < indices[low] {
			low = month
		}
	}

	result.Strength = toRatio(strength)
	result.HasSeasonality = strength > s.opts.StrengthThreshold
	result.PeakMonth = peak
	result.LowMonth = low

	return result
}
