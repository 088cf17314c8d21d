package users

import "time"

// User representa una cuenta registrada. PasswordHash es bcrypt, nunca
// guardamos la password en claro.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string

	CreatedAt time.Time
}
