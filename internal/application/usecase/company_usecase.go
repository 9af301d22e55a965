package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// List devuelve todas las empresas como pares {code, name}.
func (uc *CompanyUseCase) List(ctx context.Context) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanySummary, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CompanySummary{Code: c.Code, Name: c.Name})
	}
	return &dto.CompanyListResponse{Companies: items}, nil
}

// GetByCode obtiene una empresa. domain.ErrNotFound si no existe.
func (uc *CompanyUseCase) GetByCode(ctx context.Context, code string) (*dto.CompanyEnvelope, error) {
	company, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("%w: empresa %q", domain.ErrNotFound, code)
	}
	return &dto.CompanyEnvelope{Company: entityToCompanyResponse(company)}, nil
}

// Create crea una empresa. domain.ErrDuplicate si el código (o el nombre) ya existe.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyEnvelope, error) {
	if in.Code == "" || in.Name == "" || in.Description == "" {
		return nil, fmt.Errorf("%w: code, name y description son requeridos", domain.ErrInvalidInput)
	}
	company := &entity.Company{
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return &dto.CompanyEnvelope{Company: entityToCompanyResponse(company)}, nil
}

// Update cambia name y description. El código no se puede modificar.
func (uc *CompanyUseCase) Update(ctx context.Context, code string, in dto.UpdateCompanyRequest) (*dto.CompanyEnvelope, error) {
	if in.HasCode() {
		return nil, fmt.Errorf("%w: no se permite modificar code", domain.ErrInvalidInput)
	}
	if in.Name == "" || in.Description == "" {
		return nil, fmt.Errorf("%w: name y description son requeridos", domain.ErrInvalidInput)
	}
	company := &entity.Company{
		Code:        code,
		Name:        in.Name,
		Description: in.Description,
	}
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, wrapNotFound(err, "empresa", code)
	}
	return &dto.CompanyEnvelope{Company: entityToCompanyResponse(company)}, nil
}

// Delete elimina la empresa y, en cascada, sus facturas.
func (uc *CompanyUseCase) Delete(ctx context.Context, code string) (*dto.StatusResponse, error) {
	if err := uc.repo.Delete(ctx, code); err != nil {
		return nil, wrapNotFound(err, "empresa", code)
	}
	return &dto.StatusResponse{Status: dto.StatusDeleted}, nil
}

func entityToCompanyResponse(c *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
	}
}
