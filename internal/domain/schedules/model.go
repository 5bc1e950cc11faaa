package schedules

import "family-care/internal/domain/resource"

// Tipos de agenda. No se validan del lado servidor.
const (
	TypeFamily = "family"
	TypePet    = "pet"
)

// Schedule es un retiro/entrega (pick-up / drop-off) de un familiar o mascota.
// MemberID apunta a un family.Member o pets.Pet según Type; no se verifica.
type Schedule struct {
	resource.Meta
	Type     string `json:"type"`
	MemberID int64  `json:"memberId"`
	Name     string `json:"name"`
	Pickup   string `json:"pickup"`  // datetime-local del cliente, p.ej. 2025-01-31T08:30
	Dropoff  string `json:"dropoff"` // idem
}
