package resource

// Meta son los campos que comparte todo registro de una colección.
// Se embebe en cada modelo (family.Member, pets.Pet, ...).
type Meta struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"userId"`
}

// Ref da acceso mutable a Meta desde el modelo que la embebe.
func (m *Meta) Ref() *Meta { return m }

// Record restringe los tipos de colección: punteros a modelos que embeben Meta.
type Record[T any] interface {
	*T
	Ref() *Meta
}
