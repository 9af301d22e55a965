package usecase_test

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mocks de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type mockCompanyRepo struct{ mock.Mock }

func (m *mockCompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.Company)
	return list, args.Error(1)
}

func (m *mockCompanyRepo) GetByCode(ctx context.Context, code string) (*entity.Company, error) {
	args := m.Called(ctx, code)
	c, _ := args.Get(0).(*entity.Company)
	return c, args.Error(1)
}

func (m *mockCompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	return m.Called(ctx, company).Error(0)
}

func (m *mockCompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	return m.Called(ctx, company).Error(0)
}

func (m *mockCompanyRepo) Delete(ctx context.Context, code string) error {
	return m.Called(ctx, code).Error(0)
}

type mockInvoiceRepo struct{ mock.Mock }

func (m *mockInvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.Invoice)
	return list, args.Error(1)
}

func (m *mockInvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	args := m.Called(ctx, id)
	inv, _ := args.Get(0).(*entity.Invoice)
	return inv, args.Error(1)
}

func (m *mockInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	return m.Called(ctx, invoice).Error(0)
}

func (m *mockInvoiceRepo) UpdateAmount(ctx context.Context, id int64, amt decimal.Decimal) (*entity.Invoice, error) {
	args := m.Called(ctx, id, amt)
	inv, _ := args.Get(0).(*entity.Invoice)
	return inv, args.Error(1)
}

func (m *mockInvoiceRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockPDFGenerator struct{ mock.Mock }

func (m *mockPDFGenerator) GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, company *entity.Company) ([]byte, error) {
	args := m.Called(ctx, invoice, company)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}
