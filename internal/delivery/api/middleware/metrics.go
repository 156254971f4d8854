package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// HTTPObserver receives one observation per served request.
type HTTPObserver interface {
	ObserveHTTP(method, path string, status int, seconds float64)
}

// MetricsMiddleware records request counts and latencies per route pattern.
type MetricsMiddleware struct {
	observer HTTPObserver
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(observer HTTPObserver) *MetricsMiddleware {
	return &MetricsMiddleware{observer: observer}
}

// Handle observes the request once the error handler has written the response.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			// Commit the response now so the final status is known.
			c.Error(err)
		}

		// Route pattern, not the raw URL.
		path := c.Path()
		if path == "" {
			path = "unmatched"
		}
		m.observer.ObserveHTTP(c.Request().Method, path, c.Response().Status, time.Since(start).Seconds())

		return err
	}
}
