package entity

// Company representa una empresa identificada por un código corto.
// El código es la clave primaria y no cambia después de creada.
type Company struct {
	Code        string
	Name        string
	Description string
}
