package pets

import "family-care/internal/domain/resource"

// Pet es una mascota de un usuario. Age se guarda como texto, igual que lo
// envía el cliente.
type Pet struct {
	resource.Meta
	Name string `json:"name"`
	Type string `json:"type"` // dog, cat, ... (libre)
	Age  string `json:"age"`
}
