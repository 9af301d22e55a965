package repository

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	// List devuelve todas las facturas ordenadas por id ascendente.
	List(ctx context.Context) ([]*entity.Invoice, error)
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Invoice, error)
	// Create inserta comp_code y amt y completa el resto de campos con los
	// valores asignados por la base. domain.ErrCompanyNotFound si comp_code no existe.
	Create(ctx context.Context, invoice *entity.Invoice) error
	// UpdateAmount cambia solo amt; domain.ErrNotFound si no hay fila.
	UpdateAmount(ctx context.Context, id int64, amt decimal.Decimal) (*entity.Invoice, error)
	// Delete domain.ErrNotFound si no hay fila.
	Delete(ctx context.Context, id int64) error
}
