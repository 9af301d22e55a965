package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// InvoicePDFGenerator puerto para renderizar una factura con su empresa.
// La implementación con Maroto vive en infrastructure/pdf.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, company *entity.Company) ([]byte, error)
}

// PDFUseCase genera el PDF de una factura.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	companyRepo repository.CompanyRepository
	generator   InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	companyRepo repository.CompanyRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo: invoiceRepo,
		companyRepo: companyRepo,
		generator:   generator,
	}
}

// DownloadInvoicePDF carga factura y empresa con las mismas reglas que
// InvoiceUseCase.GetByID y genera el PDF.
//
// Retorna (pdfBytes, filename, nil) si todo sale bien.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, id int64) (pdfBytes []byte, filename string, err error) {
	inv, company, err := loadInvoiceWithCompany(ctx, uc.invoiceRepo, uc.companyRepo, id)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv, company)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("invoice_%s_%d.pdf", inv.CompCode, inv.ID), nil
}
