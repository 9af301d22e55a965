package repository

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	// List devuelve todas las empresas ordenadas por código.
	List(ctx context.Context) ([]*entity.Company, error)
	// GetByCode devuelve (nil, nil) si no existe.
	GetByCode(ctx context.Context, code string) (*entity.Company, error)
	// Create devuelve domain.ErrDuplicate si el código ya existe.
	Create(ctx context.Context, company *entity.Company) error
	// Update modifica name y description; domain.ErrNotFound si no hay fila.
	Update(ctx context.Context, company *entity.Company) error
	// Delete borra la empresa (y sus facturas en cascada); domain.ErrNotFound si no hay fila.
	Delete(ctx context.Context, code string) error
}
