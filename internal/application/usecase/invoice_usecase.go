package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// InvoiceUseCase casos de uso de facturas.
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	companyRepo repository.CompanyRepository
}

// NewInvoiceUseCase construye el caso de uso. companyRepo se usa para anidar la
// empresa en GetByID.
func NewInvoiceUseCase(invoiceRepo repository.InvoiceRepository, companyRepo repository.CompanyRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo, companyRepo: companyRepo}
}

// List devuelve {id, comp_code} de todas las facturas, por id ascendente.
func (uc *InvoiceUseCase) List(ctx context.Context) (*dto.InvoiceListResponse, error) {
	list, err := uc.invoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceSummary, 0, len(list))
	for _, inv := range list {
		items = append(items, dto.InvoiceSummary{ID: inv.ID, CompCode: inv.CompCode})
	}
	return &dto.InvoiceListResponse{Invoices: items}, nil
}

// GetByID obtiene la factura y luego su empresa, y devuelve la empresa anidada.
//
// Retorna:
//   - domain.ErrNotFound        si la factura no existe.
//   - domain.ErrCompanyNotFound si la factura apunta a una empresa que ya no existe.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id int64) (*dto.InvoiceDetailEnvelope, error) {
	inv, company, err := loadInvoiceWithCompany(ctx, uc.invoiceRepo, uc.companyRepo, id)
	if err != nil {
		return nil, err
	}
	return &dto.InvoiceDetailEnvelope{Invoice: dto.InvoiceDetailResponse{
		ID:       inv.ID,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate.Format(dto.DateLayout),
		PaidDate: formatDate(inv.PaidDate),
		Company:  entityToCompanyResponse(company),
	}}, nil
}

// Create inserta la factura con comp_code y amt; el resto lo asigna la base.
// domain.ErrCompanyNotFound si comp_code no corresponde a ninguna empresa.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceEnvelope, error) {
	if in.CompCode == "" {
		return nil, fmt.Errorf("%w: comp_code es requerido", domain.ErrInvalidInput)
	}
	if err := requireAmount(in.Amt); err != nil {
		return nil, err
	}
	inv := &entity.Invoice{CompCode: in.CompCode, Amt: *in.Amt}
	if err := uc.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return &dto.InvoiceEnvelope{Invoice: entityToInvoiceResponse(inv)}, nil
}

// Update cambia solo amt.
func (uc *InvoiceUseCase) Update(ctx context.Context, id int64, in dto.UpdateInvoiceRequest) (*dto.InvoiceEnvelope, error) {
	if err := requireAmount(in.Amt); err != nil {
		return nil, err
	}
	inv, err := uc.invoiceRepo.UpdateAmount(ctx, id, *in.Amt)
	if err != nil {
		return nil, wrapNotFound(err, "factura", id)
	}
	return &dto.InvoiceEnvelope{Invoice: entityToInvoiceResponse(inv)}, nil
}

// Delete elimina la factura.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id int64) (*dto.StatusResponse, error) {
	if err := uc.invoiceRepo.Delete(ctx, id); err != nil {
		return nil, wrapNotFound(err, "factura", id)
	}
	return &dto.StatusResponse{Status: dto.StatusDeleted}, nil
}

// loadInvoiceWithCompany hace las dos lecturas secuenciales (factura, empresa).
func loadInvoiceWithCompany(
	ctx context.Context,
	invoiceRepo repository.InvoiceRepository,
	companyRepo repository.CompanyRepository,
	id int64,
) (*entity.Invoice, *entity.Company, error) {
	inv, err := invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if inv == nil {
		return nil, nil, fmt.Errorf("%w: factura %d", domain.ErrNotFound, id)
	}
	company, err := companyRepo.GetByCode(ctx, inv.CompCode)
	if err != nil {
		return nil, nil, err
	}
	if company == nil {
		return nil, nil, fmt.Errorf("%w: %q (factura %d)", domain.ErrCompanyNotFound, inv.CompCode, id)
	}
	return inv, company, nil
}

// requireAmount exige amt presente y distinto de cero.
func requireAmount(amt *decimal.Decimal) error {
	if amt == nil || amt.IsZero() {
		return fmt.Errorf("%w: amt es requerido", domain.ErrInvalidInput)
	}
	return nil
}

func entityToInvoiceResponse(inv *entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate.Format(dto.DateLayout),
		PaidDate: formatDate(inv.PaidDate),
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dto.DateLayout)
	return &s
}
