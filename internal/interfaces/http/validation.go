package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/biztime-api/internal/domain"
)

var validate = newValidator()

// newValidator usa el nombre JSON de cada campo en los mensajes de error.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// parseBody decodifica el JSON en out y valida sus tags `validate`.
// Un body ausente o ilegible es errInvalidBody; campos faltantes, domain.ErrInvalidInput.
func parseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return errInvalidBody
	}
	if err := c.BodyParser(out); err != nil {
		return fmt.Errorf("%w (%v)", errInvalidBody, err)
	}
	return validateStruct(out)
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fe.Field())
	}
	return fmt.Errorf("%w: campos requeridos: %s", domain.ErrInvalidInput, strings.Join(missing, ", "))
}
