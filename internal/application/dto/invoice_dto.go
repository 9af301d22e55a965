package dto

import "github.com/shopspring/decimal"

// DateLayout formato de add_date y paid_date en las respuestas.
const DateLayout = "2006-01-02"

// CreateInvoiceRequest body para POST /invoices.
type CreateInvoiceRequest struct {
	CompCode string           `json:"comp_code" validate:"required"`
	Amt      *decimal.Decimal `json:"amt" validate:"required" swaggertype:"number"`
}

// UpdateInvoiceRequest body para PUT /invoices/:id.
type UpdateInvoiceRequest struct {
	Amt *decimal.Decimal `json:"amt" validate:"required" swaggertype:"number"`
}

// InvoiceSummary factura en el listado.
type InvoiceSummary struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// InvoiceResponse fila completa de una factura (POST y PUT).
type InvoiceResponse struct {
	ID       int64           `json:"id"`
	CompCode string          `json:"comp_code"`
	Amt      decimal.Decimal `json:"amt" swaggertype:"string"`
	Paid     bool            `json:"paid"`
	AddDate  string          `json:"add_date"`
	PaidDate *string         `json:"paid_date"`
}

// InvoiceDetailResponse factura con su empresa anidada (GET /invoices/:id).
// No lleva comp_code: la empresa va completa en Company.
type InvoiceDetailResponse struct {
	ID       int64           `json:"id"`
	Amt      decimal.Decimal `json:"amt" swaggertype:"string"`
	Paid     bool            `json:"paid"`
	AddDate  string          `json:"add_date"`
	PaidDate *string         `json:"paid_date"`
	Company  CompanyResponse `json:"company"`
}

// InvoiceListResponse salida de GET /invoices.
type InvoiceListResponse struct {
	Invoices []InvoiceSummary `json:"invoices"`
}

// InvoiceEnvelope salida de POST/PUT de una factura.
type InvoiceEnvelope struct {
	Invoice InvoiceResponse `json:"invoice"`
}

// InvoiceDetailEnvelope salida de GET /invoices/:id.
type InvoiceDetailEnvelope struct {
	Invoice InvoiceDetailResponse `json:"invoice"`
}
