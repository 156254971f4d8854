package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse is the liveness body polled by the mobile apps. It is not
// wrapped in the data envelope.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HealthCheck reports that the API process is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Message: "GazExpress API is running"})
}
