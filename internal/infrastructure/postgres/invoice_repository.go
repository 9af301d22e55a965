package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `id, comp_code, amt, paid, add_date, paid_date`

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// List devuelve id y comp_code de todas las facturas, por id ascendente.
func (r *InvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(ctx, `SELECT id, comp_code FROM invoices ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Invoice, 0)
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.CompCode); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// GetByID obtiene una factura completa por ID.
func (r *InvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	row := r.q.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
	inv, err := scanInvoice(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// Create persiste la factura; paid y add_date quedan con los defaults de la tabla.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (comp_code, amt)
		VALUES ($1, $2)
		RETURNING ` + invoiceColumns
	created, err := scanInvoice(r.q.QueryRow(ctx, query, invoice.CompCode, invoice.Amt))
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCompanyNotFound
		}
		if isInvalidAmount(err) {
			return fmt.Errorf("%w: amt debe ser mayor que cero y caber en numeric(10,2)", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	*invoice = *created
	return nil
}

// UpdateAmount actualiza solo el monto.
func (r *InvoiceRepo) UpdateAmount(ctx context.Context, id int64, amt decimal.Decimal) (*entity.Invoice, error) {
	query := `
		UPDATE invoices SET amt = $2
		WHERE id = $1
		RETURNING ` + invoiceColumns
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, id, amt))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrNotFound
		}
		if isInvalidAmount(err) {
			return nil, fmt.Errorf("%w: amt debe ser mayor que cero y caber en numeric(10,2)", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("update invoice: %w", err)
	}
	return inv, nil
}

// Delete elimina una factura por ID.
func (r *InvoiceRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	if err := row.Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate); err != nil {
		return nil, err
	}
	return &inv, nil
}
