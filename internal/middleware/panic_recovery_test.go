package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-dashboard/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// PanicRecoverySuite runs analytics-shaped routes behind RequestID and PanicRecovery
type PanicRecoverySuite struct {
	suite.Suite
	echo *echo.Echo
}

func TestPanicRecoverySuite(t *testing.T) {
	suite.Run(t, new(PanicRecoverySuite))
}

func (s *PanicRecoverySuite) SetupTest() {
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
	s.echo.Use(RequestID(), PanicRecovery())

	api := s.echo.Group("/api/v1/analytics")
	api.GET("/periods", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"granularity": "month"})
	})
	api.GET("/forecast", func(c echo.Context) error {
		horizon := -1
		_ = make([]float64, horizon)
		return nil
	})
	api.GET("/seasonality", func(c echo.Context) error {
		var indices map[int]float64
		indices[1] = 1.2
		return nil
	})
	api.GET("/anomalies", func(c echo.Context) error {
		panic(errors.AnalyticsInvalidScope)
	})
	api.GET("/insights", func(c echo.Context) error {
		_ = c.JSON(http.StatusOK, map[string]string{"status": "partial"})
		panic("detector failed after write")
	})
}

func (s *PanicRecoverySuite) serve(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set(TraceIDHeader, "trace-panic")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *PanicRecoverySuite) TestRecoveredRoutesAnswerSystemError() {
	tests := []struct {
		name string
		path string
	}{
		{"runtime error in forecast", "/api/v1/analytics/forecast"},
		{"nil map write in seasonality", "/api/v1/analytics/seasonality"},
		{"non-error panic value", "/api/v1/analytics/anomalies"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			var rec *httptest.ResponseRecorder
			s.NotPanics(func() { rec = s.serve(tt.path) })

			s.Equal(http.StatusInternalServerError, rec.Code)
			var resp errors.ErrorResponse
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
			s.Equal(string(errors.SystemInternalError), resp.Error.Code)
			s.Equal("trace-panic", resp.Error.TraceID)
			s.Equal("trace-panic", rec.Header().Get(TraceIDHeader))
		})
	}
}

func (s *PanicRecoverySuite) TestHealthyRouteIsUntouched() {
	rec := s.serve("/api/v1/analytics/periods?granularity=month")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"granularity":"month"}`, rec.Body.String())
}

func (s *PanicRecoverySuite) TestPanicAfterCommitKeepsWrittenBody() {
	rec := s.serve("/api/v1/analytics/insights")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "partial")
	s.NotContains(rec.Body.String(), string(errors.SystemInternalError))
}

func (s *PanicRecoverySuite) TestMissingTraceIDFallsBackToUnknown() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/forecast", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		panic("analytics engine unavailable")
	})

	s.NotPanics(func() { s.NoError(handler(c)) })
	s.Equal(http.StatusInternalServerError, rec.Code)

	var resp errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("unknown", resp.Error.TraceID)
}
