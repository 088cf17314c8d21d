package pets

import "time"

// Pet representa una mascota registrada. Image es el path web-servible de
// la foto subida ("" = sin foto, NULL en el store).
type Pet struct {
	ID      string
	OwnerID string

	Name  string
	Type  string // dog, cat, ...
	Breed string
	Image string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PetView es la fila para listados y detalle: Pet + nombre del dueño
// (el join lo resuelve el repo).
type PetView struct {
	Pet
	OwnerName string
}
