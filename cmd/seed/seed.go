package main

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
	"github.com/jhoicas/biztime-api/pkg/logger"
	"github.com/shopspring/decimal"
)

var sampleCompanies = []entity.Company{
	{Code: "apple", Name: "Apple Computer", Description: "Maker of OSX."},
	{Code: "ibm", Name: "IBM", Description: "Big blue."},
}

var sampleInvoices = []struct {
	compCode string
	amt      string
}{
	{"apple", "100"},
	{"apple", "200"},
	{"apple", "300"},
	{"ibm", "400"},
}

// seedSamples inserta las empresas que falten y todas las facturas de ejemplo.
// Un error dentro de la transacción la aborta; por eso cada empresa se consulta
// antes de insertarla en lugar de tratar el duplicado.
func seedSamples(
	ctx context.Context,
	log *logger.Logger,
	companies repository.CompanyRepository,
	invoices repository.InvoiceRepository,
) error {
	for i := range sampleCompanies {
		c := sampleCompanies[i]
		existing, err := companies.GetByCode(ctx, c.Code)
		if err != nil {
			return err
		}
		if existing != nil {
			log.Info().Str("code", c.Code).Msg("empresa ya existe, se omite")
			continue
		}
		if err := companies.Create(ctx, &c); err != nil {
			return err
		}
	}

	for _, s := range sampleInvoices {
		inv := &entity.Invoice{CompCode: s.compCode, Amt: decimal.RequireFromString(s.amt)}
		if err := invoices.Create(ctx, inv); err != nil {
			return err
		}
	}
	return nil
}
