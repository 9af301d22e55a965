package dto

// StatusDeleted valor de StatusResponse tras un DELETE exitoso.
const StatusDeleted = "deleted"

// StatusResponse cuerpo de respuesta de los DELETE.
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
