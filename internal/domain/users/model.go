package users

import "time"

// User es una cuenta registrada. La contraseña solo existe como hash bcrypt y
// nunca se serializa.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
