package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa una factura emitida a una empresa (CompCode).
// Paid y AddDate los asigna la base de datos al insertar; PaidDate nunca lo
// escribe la API.
type Invoice struct {
	ID       int64
	CompCode string
	Amt      decimal.Decimal
	Paid     bool
	AddDate  time.Time
	PaidDate *time.Time
}
