package users

import "context"

type Repository interface {
	// Create asigna el ID y agrega el usuario al final de la colección.
	Create(ctx context.Context, u User) (User, error)
	// ListByEmail devuelve todos los usuarios con ese email (no es único), en orden de alta.
	ListByEmail(ctx context.Context, email string) ([]User, error)
	List(ctx context.Context) ([]User, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
}
