package services

import (
	"errors"
	"math"

	"finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

var ErrInvalidHorizon = errors.New("forecast horizon must be between one and the configured maximum")

const (
	// minSelectionPoints is the shortest cleaned series the best-fit selector will
	// hold points out of; shorter series always use the simple average.
	minSelectionPoints = 6
	maxHoldoutPoints   = 3
)

type forecastService struct {
	opts ForecastOptions
}

// fittedModel is one forecasting method fitted to a series: its out-of-sample
// forecast plus the in-sample baseline the residuals are measured against.
type fittedModel struct {
	method   models.ForecastMethod
	forecast []float64
	baseline []float64
}

type lineFit struct {
	slope     float64
	intercept float64
	r2        float64
	fitMean   float64
}

// NewForecastService creates the forecasting engine
func NewForecastService(opts ForecastOptions) ForecastServiceInterface {
	return &forecastService{opts: opts}
}

// Forecast runs every method over the series and picks the best fit.
// Only a horizon outside [1, MaxHorizon] is an error; short or empty series produce
// a flat, band-less result.
func (s *forecastService) Forecast(series []decimal.Decimal, horizon int) (*models.ForecastSummary, error) {
	if horizon <= 0 || (s.opts.MaxHorizon > 0 && horizon > s.opts.MaxHorizon) {
		return nil, ErrInvalidHorizon
	}

	values := toFloats(series)
	volatility := s.volatility(values)

	if len(values) < 2 {
		return s.degenerate(values, horizon, volatility), nil
	}

	outliers := s.outlierMask(values)
	outlierCount := 0
	for _, isOutlier := range outliers {
		if isOutlier {
			outlierCount++
		}
	}

	fit := fitLine(values, outliers)
	simple := s.fitSimple(values, horizon)
	exponential := s.fitExponential(values, horizon)
	regression := fitRegression(values, fit, horizon)

	dataQuality := models.DataQuality{R2: toRatio(fit.r2)}
	selected := s.selectMethod(values, outliers)

	chosen := simple
	switch selected {
	case models.ForecastMethodExponential:
		chosen = exponential
	case models.ForecastMethodRegression:
		chosen = regression
	}

	summary := &models.ForecastSummary{
		Simple:         s.result(simple, nil, volatility, dataQuality, outlierCount),
		Exponential:    s.result(exponential, nil, volatility, dataQuality, outlierCount),
		Regression:     s.result(regression, nil, volatility, dataQuality, outlierCount),
		SelectedMethod: selected,
		Volatility:     volatility,
		DataQuality:    dataQuality,
		Outliers:       outlierCount,
		Slope:          toRatio(fit.slope),
		Trend:          s.trend(fit),
	}

	summary.Best = s.result(chosen, s.confidenceBand(values, chosen), volatility, dataQuality, outlierCount)
	summary.Best.Method = models.ForecastMethodBest

	return summary, nil
}

func (s *forecastService) degenerate(values []float64, horizon int, volatility models.Volatility) *models.ForecastSummary {
	last := 0.0
	if len(values) > 0 {
		last = values[len(values)-1]
	}

	flat := fittedModel{forecast: make([]float64, horizon)}
	for i := range flat.forecast {
		flat.forecast[i] = last
	}

	dataQuality := models.DataQuality{R2: decimal.Zero}
	build := func(method models.ForecastMethod) models.ForecastResult {
		flat.method = method
		return s.result(flat, nil, volatility, dataQuality, 0)
	}

	return &models.ForecastSummary{
		Simple:         build(models.ForecastMethodSimple),
		Exponential:    build(models.ForecastMethodExponential),
		Regression:     build(models.ForecastMethodRegression),
		Best:           build(models.ForecastMethodBest),
		SelectedMethod: models.ForecastMethodSimple,
		Volatility:     volatility,
		DataQuality:    dataQuality,
		Slope:          decimal.Zero,
		Trend:          models.TrendStable,
	}
}

func (s *forecastService) result(model fittedModel, band *models.ConfidenceBand, volatility models.Volatility, dataQuality models.DataQuality, outliers int) models.ForecastResult {
	forecast := make([]decimal.Decimal, len(model.forecast))
	for i, v := range model.forecast {
		forecast[i] = toAmount(v)
	}

	return models.ForecastResult{
		Method:       model.method,
		Forecast:     forecast,
		Confidence:   band,
		Volatility:   volatility,
		DataQuality:  dataQuality,
		OutlierCount: outliers,
	}
}

// fitSimple forecasts the mean of the trailing window (the whole series when
// SimpleWindow is 0 or longer than the series)
func (s *forecastService) fitSimple(values []float64, horizon int) fittedModel {
	window := values
	if s.opts.SimpleWindow > 0 && len(values) > s.opts.SimpleWindow {
		window = values[len(values)-s.opts.SimpleWindow:]
	}

	level := mean(window)
	model := fittedModel{
		method:   models.ForecastMethodSimple,
		forecast: make([]float64, horizon),
		baseline: make([]float64, len(values)),
	}
	for i := range model.forecast {
		model.forecast[i] = level
	}
	for i := range model.baseline {
		model.baseline[i] = level
	}
	return model
}

// fitExponential applies single exponential smoothing seeded with the first value.
// The baseline is the one-step-ahead level, so residuals are honest prediction errors.
func (s *forecastService) fitExponential(values []float64, horizon int) fittedModel {
	alpha := s.opts.SmoothingAlpha
	model := fittedModel{
		method:   models.ForecastMethodExponential,
		forecast: make([]float64, horizon),
		baseline: make([]float64, len(values)),
	}
	if len(values) == 0 {
		return model
	}

	level := values[0]
	for i, v := range values {
		model.baseline[i] = level
		level = alpha*v + (1-alpha)*level
	}
	for i := range model.forecast {
		model.forecast[i] = level
	}
	return model
}

func fitRegression(values []float64, fit lineFit, horizon int) fittedModel {
	n := len(values)
	model := fittedModel{
		method:   models.ForecastMethodRegression,
		forecast: make([]float64, horizon),
		baseline: make([]float64, n),
	}
	for i := range model.baseline {
		model.baseline[i] = fit.intercept + fit.slope*float64(i)
	}
	for h := range model.forecast {
		model.forecast[h] = fit.intercept + fit.slope*float64(n+h)
	}
	return model
}

// fitLine runs ordinary least squares of value against index over the points not
// masked out. With fewer than two usable points the line is flat at their mean.
func fitLine(values []float64, exclude []bool) lineFit {
	var xs, ys []float64
	for i, v := range values {
		if exclude != nil && exclude[i] {
			continue
		}
		xs = append(xs, float64(i))
		ys = append(ys, v)
	}

	yMean := mean(ys)
	if len(xs) < 2 {
		return lineFit{intercept: yMean, fitMean: yMean}
	}

	xMean := mean(xs)
	var sxy, sxx float64
	for i := range xs {
		sxy += (xs[i] - xMean) * (ys[i] - yMean)
		sxx += (xs[i] - xMean) * (xs[i] - xMean)
	}
	if sxx < epsilon {
		return lineFit{intercept: yMean, fitMean: yMean}
	}

	slope := sxy / sxx
	intercept := yMean - slope*xMean

	var ssRes, ssTot float64
	for i := range xs {
		predicted := intercept + slope*xs[i]
		ssRes += (ys[i] - predicted) * (ys[i] - predicted)
		ssTot += (ys[i] - yMean) * (ys[i] - yMean)
	}

	r2 := 0.0
	if ssTot > epsilon {
		r2 = math.Max(0, 1-ssRes/ssTot)
	}

	return lineFit{slope: slope, intercept: intercept, r2: r2, fitMean: yMean}
}

// outlierMask flags points further than OutlierSigma population deviations from the mean
func (s *forecastService) outlierMask(values []float64) []bool {
	mask := make([]bool, len(values))
	if len(values) < 3 {
		return mask
	}

	m := mean(values)
	sd := stdDev(values)
	if sd < epsilon {
		return mask
	}

	for i, v := range values {
		mask[i] = math.Abs(v-m) > s.opts.OutlierSigma*sd
	}
	return mask
}

// selectMethod compares hold-out error of each method on the outlier-free series.
// Methods are considered from simplest to most complex and a more complex one only
// wins when it beats the current pick by more than SelectionMargin.
func (s *forecastService) selectMethod(values []float64, outliers []bool) models.ForecastMethod {
	cleaned := make([]float64, 0, len(values))
	for i, v := range values {
		if !outliers[i] {
			cleaned = append(cleaned, v)
		}
	}

	n := len(cleaned)
	if n < minSelectionPoints {
		return models.ForecastMethodSimple
	}

	holdout := n / 4
	if holdout > maxHoldoutPoints {
		holdout = maxHoldoutPoints
	}
	if holdout < 1 {
		holdout = 1
	}

	train := cleaned[:n-holdout]
	actual := cleaned[n-holdout:]

	candidates := []fittedModel{
		s.fitSimple(train, holdout),
		s.fitExponential(train, holdout),
		fitRegression(train, fitLine(train, nil), holdout),
	}

	selected := candidates[0].method
	bestErr := meanAbsoluteError(candidates[0].forecast, actual)
	for _, candidate := range candidates[1:] {
		candidateErr := meanAbsoluteError(candidate.forecast, actual)
		if candidateErr < bestErr*(1-s.opts.SelectionMargin) {
			selected = candidate.method
			bestErr = candidateErr
		}
	}

	return selected
}

// confidenceBand widens with the square root of the step so uncertainty compounds
// further into the future
func (s *forecastService) confidenceBand(values []float64, model fittedModel) *models.ConfidenceBand {
	residuals := make([]float64, len(values))
	for i, v := range values {
		residuals[i] = v - model.baseline[i]
	}
	sd := stdDev(residuals)

	nonNegative := true
	for _, v := range values {
		if v < 0 {
			nonNegative = false
			break
		}
	}

	band := &models.ConfidenceBand{
		Upper: make([]decimal.Decimal, len(model.forecast)),
		Lower: make([]decimal.Decimal, len(model.forecast)),
	}
	for i, f := range model.forecast {
		width := s.opts.ConfidenceZ * sd * math.Sqrt(float64(i+1))
		upper, lower := f+width, f-width
		if nonNegative {
			upper = math.Max(upper, 0)
			lower = math.Max(lower, 0)
		}
		band.Upper[i] = toAmount(upper)
		band.Lower[i] = toAmount(lower)
	}
	return band
}

func (s *forecastService) volatility(values []float64) models.Volatility {
	m := mean(values)
	sd := stdDev(values)

	if math.Abs(m) < epsilon {
		level := models.VolatilityLow
		if sd > epsilon {
			level = models.VolatilityHigh
		}
		return models.Volatility{Level: level, CoefficientOfVariation: decimal.Zero}
	}

	cv := sd / math.Abs(m)
	level := models.VolatilityMedium
	if cv < s.opts.VolatilityLow {
		level = models.VolatilityLow
	} else if cv > s.opts.VolatilityHigh {
		level = models.VolatilityHigh
	}

	return models.Volatility{Level: level, CoefficientOfVariation: toRatio(cv)}
}

func (s *forecastService) trend(fit lineFit) models.TrendDirection {
	if math.Abs(fit.fitMean) < epsilon || fit.r2 < s.opts.TrendR2Threshold {
		return models.TrendStable
	}

	ratio := fit.slope / math.Abs(fit.fitMean)
	switch {
	case ratio >= s.opts.TrendMinSlopeRatio:
		return models.TrendIncreasing
	case ratio <= -s.opts.TrendMinSlopeRatio:
		return models.TrendDecreasing
	default:
		return models.TrendStable
	}
}
