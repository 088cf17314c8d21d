package servicerequests

import "time"

// Request es un pedido de servicio (grooming, paseo, etc.) para una
// mascota. UserID es siempre el usuario de la sesión que lo creó.
type Request struct {
	ID string

	Type     string
	Date     time.Time
	Location string

	PetID  string
	UserID string

	CreatedAt time.Time
}

// RequestView es la fila de listado: Request + nombres para mostrar.
type RequestView struct {
	Request
	PetName  string
	UserName string
}
