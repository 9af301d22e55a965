package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE que se traducen a errores de dominio.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNumericOutOfRange   = "22003"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return hasCode(err, codeUniqueViolation)
}

// isForeignKeyViolation verifica si un error es una violación de clave foránea (23503).
func isForeignKeyViolation(err error) bool {
	return hasCode(err, codeForeignKeyViolation)
}

// isCheckViolation verifica si un error viola un CHECK (23514), p. ej. amt <= 0.
func isCheckViolation(err error) bool {
	return hasCode(err, codeCheckViolation)
}

// isNumericOutOfRange verifica si un valor excede la precisión de la columna (22003),
// p. ej. amt mayor que numeric(10,2).
func isNumericOutOfRange(err error) bool {
	return hasCode(err, codeNumericOutOfRange)
}

// isInvalidAmount agrupa los rechazos de la base sobre amt: CHECK o fuera de rango.
func isInvalidAmount(err error) bool {
	return isCheckViolation(err) || isNumericOutOfRange(err)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
