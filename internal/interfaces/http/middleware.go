package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/biztime-api/pkg/logger"
)

// HeaderRequestID cabecera con el identificador de la petición.
const HeaderRequestID = "X-Request-ID"

// LocalRequestID key en c.Locals para el request id.
const LocalRequestID = "request_id"

// RequestObserver asigna un request id, registra cada petición en el log y, si
// metrics no es nil, alimenta los colectores Prometheus.
//
// Debe ser el primer middleware: traduce el error de la cadena con el
// ErrorHandler de la app para conocer el status real antes de registrar.
func RequestObserver(log *logger.Logger, metrics *Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Locals(LocalRequestID, reqID)
		c.Set(HeaderRequestID, reqID)

		if metrics != nil {
			metrics.begin()
		}

		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		elapsed := time.Since(start)
		if metrics != nil {
			metrics.observe(c.Method(), c.Route().Path, status, elapsed)
		}

		evt := log.Info()
		if status >= fiber.StatusInternalServerError {
			evt = log.Error()
		} else if status >= fiber.StatusBadRequest {
			evt = log.Warn()
		}
		evt.Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", elapsed).
			Msg("petición HTTP")
		return nil
	}
}

// GetRequestID devuelve el request id asignado por RequestObserver.
func GetRequestID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRequestID).(string)
	return s
}
