package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lms-api/pkg/metrics"
)

// MetricsMiddleware registra conteo y duración por método, ruta registrada y status.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else if he, ok := err.(*HTTPError); ok {
				status = he.Status
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		path := c.Route().Path
		if path == "" || path == "/" {
			path = "unmatched"
		}
		labels := []string{c.Method(), path, strconv.Itoa(status)}
		metrics.RequestCount.WithLabelValues(labels...).Inc()
		metrics.RequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		return err
	}
}
