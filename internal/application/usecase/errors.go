package usecase

import (
	"errors"
	"fmt"

	"github.com/jhoicas/biztime-api/internal/domain"
)

// wrapNotFound añade el recurso y la clave al mensaje de un domain.ErrNotFound
// devuelto por el repositorio; el resto de errores pasa sin cambios.
func wrapNotFound(err error, resource string, key any) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: %s %v", domain.ErrNotFound, resource, key)
	}
	return err
}
