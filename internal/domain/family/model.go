package family

import "family-care/internal/domain/resource"

// Member es un integrante de la familia de un usuario.
type Member struct {
	resource.Meta
	Name     string `json:"name"`
	Age      string `json:"age"`
	Relation string `json:"relation"` // Spouse, Child, ...
}
