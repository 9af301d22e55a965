package dto

import "encoding/json"

// CreateCompanyRequest body para POST /companies.
type CreateCompanyRequest struct {
	Code        string `json:"code" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// UpdateCompanyRequest body para PUT /companies/:code.
// Code solo existe para detectar si el cliente intentó cambiar la clave: su
// presencia, con cualquier valor, invalida la petición.
type UpdateCompanyRequest struct {
	Code        json.RawMessage `json:"code,omitempty" swaggerignore:"true"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description" validate:"required"`
}

// HasCode informa si el body traía la clave "code".
func (r UpdateCompanyRequest) HasCode() bool {
	return r.Code != nil
}

// CompanySummary empresa en el listado (sin description).
type CompanySummary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CompanyResponse empresa completa.
type CompanyResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CompanyListResponse salida de GET /companies.
type CompanyListResponse struct {
	Companies []CompanySummary `json:"companies"`
}

// CompanyEnvelope salida de GET/POST/PUT de una empresa.
type CompanyEnvelope struct {
	Company CompanyResponse `json:"company"`
}
