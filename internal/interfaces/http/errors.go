package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/pkg/logger"
)

// errInvalidBody cuerpo ausente o que no es JSON válido.
var errInvalidBody = fmt.Errorf("%w: cuerpo JSON inválido o ausente", domain.ErrInvalidInput)

// NewErrorHandler traduce los errores devueltos por los handlers a respuestas
// JSON con código HTTP. Se instala en fiber.Config.ErrorHandler.
//
//   - domain.ErrInvalidInput    → 400 VALIDATION (INVALID_BODY si no se pudo leer el body)
//   - domain.ErrCompanyNotFound → 404 COMPANY_NOT_FOUND
//   - domain.ErrNotFound        → 404 NOT_FOUND
//   - domain.ErrDuplicate       → 409 DUPLICATE
//   - *fiber.Error              → su código (p. ej. 404 de ruta inexistente)
//   - cualquier otro            → 500 INTERNAL, se registra en el log
func NewErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := translateError(err)
		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).
				Str("request_id", GetRequestID(c)).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("error no controlado")
		}
		return c.Status(status).JSON(body)
	}
}

func translateError(err error) (int, dto.ErrorResponse) {
	var fiberErr *fiber.Error
	switch {
	case errors.Is(err, errInvalidBody):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_BODY", Message: err.Error()}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()}
	case errors.Is(err, domain.ErrCompanyNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "COMPANY_NOT_FOUND", Message: err.Error()}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()}
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()}
	case errors.As(err, &fiberErr):
		return fiberErr.Code, dto.ErrorResponse{Code: statusCode(fiberErr.Code), Message: fiberErr.Message}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()}
	}
}

// statusCode convierte 404 en "NOT_FOUND", 405 en "METHOD_NOT_ALLOWED", etc.
func statusCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "ERROR"
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}
