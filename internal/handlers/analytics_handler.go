package handlers

import (
	goerrors "errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"
	"finance-dashboard/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const (
	defaultGranularity = models.GranularityMonth
	defaultSeries      = models.SeriesExpense
	defaultScope       = models.AnomalyScopeCategory
	analyticsCacheTTL  = time.Minute
)

// AnalyticsHandler exposes the analytics engine over HTTP
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServiceInterface
	metricsCollector services.MetricsRecorderInterface
	defaultHorizon   int
	maxHorizon       int
}

// NewAnalyticsHandler creates a new analytics handler. defaultHorizon applies when a
// forecast request names no horizon; requests above maxHorizon are rejected.
func NewAnalyticsHandler(
	analyticsService services.AnalyticsServiceInterface,
	metricsCollector services.MetricsRecorderInterface,
	defaultHorizon int,
	maxHorizon int,
) *AnalyticsHandler {
	if maxHorizon <= 0 || maxHorizon > dto.MaxForecastHorizon {
		maxHorizon = dto.MaxForecastHorizon
	}
	if defaultHorizon <= 0 || defaultHorizon > maxHorizon {
		defaultHorizon = 3
	}
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		metricsCollector: metricsCollector,
		defaultHorizon:   defaultHorizon,
		maxHorizon:       maxHorizon,
	}
}

// RegisterRoutes mounts the analytics endpoints on g
func (h *AnalyticsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/periods", h.GetPeriods)
	g.GET("/forecast", h.GetForecast)
	g.POST("/forecast", h.ForecastSeries)
	g.GET("/seasonality", h.GetSeasonality)
	g.GET("/anomalies", h.GetAnomalies)
	g.GET("/recurring", h.GetRecurring)
	g.GET("/insights", h.GetInsights)
}

// GetPeriods aggregates transactions into calendar periods
// @Summary Period totals
// @Description Income, expense and net per day, month or year. A full date range zero-fills empty periods.
// @Tags Analytics
// @Produce json
// @Param granularity query string false "Period unit" Enums(day, month, year) default(month)
// @Param startDate query string false "Inclusive start date"
// @Param endDate query string false "Inclusive end date"
// @Param account query string false "Filter by account"
// @Param category query string false "Filter by category"
// @Success 200 {object} dto.PeriodsResponse
// @Failure 400 {object} errors.ErrorResponse "ANALYTICS_001 - Invalid granularity or VALIDATION_005 - Invalid date"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /analytics/periods [get]
func (h *AnalyticsHandler) GetPeriods(c echo.Context) error {
	defer h.recordRequest(c, "periods")

	var query dto.PeriodsQuery
	if err := bindQuery(c, &query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}
	if query.Granularity == "" {
		query.Granularity = string(defaultGranularity)
	}
	if err := c.Validate(query); err != nil {
		return sendValidationError(c, err)
	}

	filters, err := toTransactionFilters(query.AnalyticsFilters)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	granularity := models.Granularity(query.Granularity)
	periods, err := h.analyticsService.Aggregate(filters, granularity)
	if err != nil {
		return sendAnalyticsError(c, err)
	}

	setCacheHeader(c)
	return c.JSON(http.StatusOK, dto.PeriodsResponse{
		Granularity: granularity,
		Periods:     periods,
	})
}

// GetForecast forecasts the monthly series of the stored transactions
// @Summary Forecast a stored series
// @Description Runs every forecasting method over the monthly totals and selects the best one
// @Tags Analytics
// @Produce json
// @Param series query string false "Series" Enums(expense, income, net) default(expense)
// @Param horizon query int false "Months to forecast"
// @Success 200 {object} dto.ForecastResponse
// @Failure 400 {object} errors.ErrorResponse "ANALYTICS_002 - Invalid horizon, ANALYTICS_003 - Invalid series or VALIDATION_004 - Horizon too large"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /analytics/forecast [get]
func (h *AnalyticsHandler) GetForecast(c echo.Context) error {
	defer h.recordRequest(c, "forecast")

	var query dto.ForecastQuery
	if err := bindQuery(c, &query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}
	if query.Series == "" {
		query.Series = string(defaultSeries)
	}
	if err := c.Validate(query); err != nil {
		return sendValidationError(c, err)
	}

	horizon := h.defaultHorizon
	if query.Horizon != "" {
		parsed, err := strconv.Atoi(query.Horizon)
		if err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("horizon must be a whole number"))
		}
		horizon = parsed
	}
	if horizon > h.maxHorizon {
		return h.sendHorizonTooLarge(c)
	}

	filters, err := toTransactionFilters(query.AnalyticsFilters)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	kind := models.SeriesKind(query.Series)
	summary, err := h.analyticsService.Forecast(filters, kind, horizon)
	if err != nil {
		return sendAnalyticsError(c, err)
	}

	setCacheHeader(c)
	return c.JSON(http.StatusOK, dto.ForecastResponse{
		Series:  kind,
		Horizon: horizon,
		Summary: summary,
	})
}

// ForecastSeries forecasts a series supplied in the request body
// @Summary Forecast a supplied series
// @Tags Analytics
// @Accept json
// @Produce json
// @Param request body dto.ForecastSeriesRequest true "Series and horizon"
// @Success 200 {object} dto.ForecastResponse
// @Failure 400 {object} errors.ErrorResponse "ANALYTICS_002 - Invalid horizon, VALIDATION_001 - Invalid body or VALIDATION_004 - Horizon too large"
// @Router /analytics/forecast [post]
func (h *AnalyticsHandler) ForecastSeries(c echo.Context) error {
	defer h.recordRequest(c, "forecast_series")

	var req dto.ForecastSeriesRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return sendValidationError(c, err)
	}

	horizon := h.defaultHorizon
	if req.Horizon != nil {
		horizon = *req.Horizon
	}
	if horizon > h.maxHorizon {
		return h.sendHorizonTooLarge(c)
	}

	summary, err := h.analyticsService.ForecastSeries(req.Series, horizon)
	if err != nil {
		return sendAnalyticsError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ForecastResponse{
		Horizon: horizon,
		Summary: summary,
	})
}

// GetSeasonality detects a yearly shape in the monthly series
// @Summary Seasonality
// @Tags Analytics
// @Produce json
// @Param series query string false "Series" Enums(expense, income, net) default(expense)
// @Success 200 {object} dto.SeasonalityResponse
// @Failure 400 {object} errors.ErrorResponse "ANALYTICS_003 - Invalid series"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /analytics/seasonality [get]
func (h *AnalyticsHandler) GetSeasonality(c echo.Context) error {
	defer h.recordRequest(c, "seasonality")

	var query dto.SeasonalityQuery
	if err := bindQuery(c, &query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}
	if query.Series == "" {
		query.Series = string(defaultSeries)
	}
	if err := c.Validate(query); err != nil {
		return sendValidationError(c, err)
	}

	filters, err := toTransactionFilters(query.AnalyticsFilters)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	kind := models.SeriesKind(query.Series)
	result, err := h.analyticsService.Seasonality(filters, kind)
	if err != nil {
		return sendAnalyticsError(c, err)
	}

	setCacheHeader(c)
	return c.JSON(http.StatusOK, dto.SeasonalityResponse{
		Series: kind,
		Result: result,
	})
}

// GetAnomalies flags unusual expenses
// @Summary Anomalies
// @Tags Analytics
// @Produce json
// @Param scope query string false "Baseline population" Enums(category, global) default(category)
// @Success 200 {object} dto.AnomaliesResponse
// @Failure 400 {object} errors.ErrorResponse "ANALYTICS_004 - Invalid scope"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /analytics/anomalies [get]
func (h *AnalyticsHandler) GetAnomalies(c echo.Context) error {
	defer h.recordRequest(c, "anomalies")

	var query dto.AnomaliesQuery
	if err := bindQuery(c, &query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}
	if query.Scope == "" {
		query.Scope = string(defaultScope)
	}
	if err := c.Validate(query); err != nil {
		return sendValidationError(c, err)
	}

	filters, err := toTransactionFilters(query.AnalyticsFilters)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	scope := models.AnomalyScope(query.Scope)
	anomalies, err := h.analyticsService.Anomalies(filters, scope)
	if err != nil {
		return sendAnalyticsError(c, err)
	}

	setCacheHeader(c)
	return c.JSON(http.StatusOK, dto.AnomaliesResponse{
		Scope:     scope,
		Anomalies: anomalies,
		Total:     len(anomalies),
	})
}

// GetRecurring lists recurring payments and income
// @Summary Recurring patterns
// @Tags Analytics
// @Produce json
// @Success 200 {object} dto.RecurringResponse
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /analytics/recurring [get]
func (h *AnalyticsHandler) GetRecurring(c echo.Context) error {
	defer h.recordRequest(c, "recurring")

	var query dto.AnalyticsFilters
	if err := bindQuery(c, &query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(query); err != nil {
		return sendValidationError(c, err)
	}

	filters, err := toTransactionFilters(query)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	patterns, err := h.analyticsService.Recurring(filters)
	if err != nil {
		return sendAnalyticsError(c, err)
	}

	monthlyExpense, expenseCount := services.MonthlyTotal(patterns, models.TransactionTypeExpense)
	monthlyIncome, incomeCount := services.MonthlyTotal(patterns, models.TransactionTypeIncome)

	setCacheHeader(c)
	return c.JSON(http.StatusOK, dto.RecurringResponse{
		Patterns:       patterns,
		MonthlyExpense: monthlyExpense,
		MonthlyIncome:  monthlyIncome,
		MonthlyCount:   expenseCount + incomeCount,
	})
}

// GetInsights returns ranked insights against the stored budgets
// @Summary Insights
// @Tags Analytics
// @Produce json
// @Success 200 {object} dto.InsightsResponse
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /analytics/insights [get]
func (h *AnalyticsHandler) GetInsights(c echo.Context) error {
	defer h.recordRequest(c, "insights")

	var query dto.AnalyticsFilters
	if err := bindQuery(c, &query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(query); err != nil {
		return sendValidationError(c, err)
	}

	filters, err := toTransactionFilters(query)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	report, err := h.analyticsService.Insights(filters)
	if err != nil {
		return sendAnalyticsError(c, err)
	}

	setCacheHeader(c)
	return c.JSON(http.StatusOK, dto.InsightsResponse{
		InsightReport: report,
		Total:         len(report.All),
	})
}

func (h *AnalyticsHandler) recordRequest(c echo.Context, endpoint string) {
	if h.metricsCollector == nil {
		return
	}
	h.metricsCollector.IncrementCounter("http.request", map[string]string{
		"endpoint": endpoint,
		"status":   statusClass(c.Response().Status),
	})
}

func statusClass(status int) string {
	return fmt.Sprintf("%dxx", status/100)
}

func bindQuery(c echo.Context, target interface{}) error {
	return (&echo.DefaultBinder{}).BindQueryParams(c, target)
}

func setCacheHeader(c echo.Context) {
	c.Response().Header().Set("Cache-Control", fmt.Sprintf("private, max-age=%d", int(analyticsCacheTTL.Seconds())))
}

// toTransactionFilters converts already validated query filters to repository filters
func toTransactionFilters(f dto.AnalyticsFilters) (models.TransactionFilters, error) {
	filters := models.TransactionFilters{
		Account:  f.Account,
		Category: f.Category,
		Type:     f.Type,
	}

	if f.StartDate != "" {
		start, ok := models.ParseDate(f.StartDate)
		if !ok {
			return filters, fmt.Errorf("invalid startDate")
		}
		filters.StartDate = &start
	}

	if f.EndDate != "" {
		end, ok := models.ParseDate(f.EndDate)
		if !ok {
			return filters, fmt.Errorf("invalid endDate")
		}
		filters.EndDate = &end
	}

	if filters.StartDate != nil && filters.EndDate != nil && filters.StartDate.After(*filters.EndDate) {
		return filters, fmt.Errorf("startDate must not be after endDate")
	}

	return filters, nil
}

// sendValidationError maps the first failed rule to its error code
func sendValidationError(c echo.Context, err error) error {
	code := errors.ValidationGeneral

	var fieldErrors validator.ValidationErrors
	if goerrors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		switch fieldErrors[0].Tag() {
		case "granularity":
			code = errors.AnalyticsInvalidGranularity
		case "series_kind":
			code = errors.AnalyticsInvalidSeriesKind
		case "anomaly_scope":
			code = errors.AnalyticsInvalidScope
		case "calendar_date":
			code = errors.ValidationInvalidDate
		case "required":
			code = errors.ValidationRequiredField
		case "numeric":
			code = errors.ValidationInvalidFormat
		case "max", "min":
			code = errors.ValidationOutOfRange
		}
	}

	return SendError(c, code, errors.WithDetails(validation.FormatError(err).Error()))
}

func (h *AnalyticsHandler) sendHorizonTooLarge(c echo.Context) error {
	return SendError(c, errors.ValidationOutOfRange,
		errors.WithDetails(fmt.Sprintf("horizon must be at most %d", h.maxHorizon)))
}

// sendAnalyticsError maps service sentinel errors to client errors and hides everything else
func sendAnalyticsError(c echo.Context, err error) error {
	switch {
	case goerrors.Is(err, services.ErrInvalidGranularity):
		return SendError(c, errors.AnalyticsInvalidGranularity)
	case goerrors.Is(err, services.ErrInvalidHorizon):
		return SendError(c, errors.AnalyticsInvalidHorizon)
	case goerrors.Is(err, services.ErrInvalidSeriesKind):
		return SendError(c, errors.AnalyticsInvalidSeriesKind)
	case goerrors.Is(err, services.ErrInvalidScope):
		return SendError(c, errors.AnalyticsInvalidScope)
	default:
		return SendSystemError(c, err)
	}
}
