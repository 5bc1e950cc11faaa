package resource

import "context"

// Repository es el contrato de almacenamiento de una colección ordenada.
// Las implementaciones (memory, sqlstore) garantizan que cada operación es
// atómica respecto de las demás sobre la misma colección.
type Repository[T any] interface {
	// Create asigna un ID nuevo (creciente) y agrega el registro al final.
	Create(ctx context.Context, rec T) (T, error)
	// ListByOwner devuelve los registros del usuario en orden de inserción.
	ListByOwner(ctx context.Context, userID int64) ([]T, error)
	// Update aplica fn sobre el registro bajo el lock de la colección.
	// Si fn devuelve error no se persiste nada. ErrNotFound si no existe.
	Update(ctx context.Context, id int64, fn func(*T) error) (T, error)
	// Delete devuelve true si había un registro con ese id.
	Delete(ctx context.Context, id int64) (bool, error)
	All(ctx context.Context) ([]T, error)
	Count(ctx context.Context) (int, error)
}
