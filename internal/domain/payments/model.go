package payments

import (
	"time"

	"family-care/internal/domain/resource"
)

// StatusPaid es el único estado: no hay pasarela, todo pago se registra como pagado.
const StatusPaid = "Paid"

type Payment struct {
	resource.Meta
	Amount    float64   `json:"amount"`
	Service   string    `json:"service"` // p.ej. "Pick-Up and Drop-Off"
	Status    string    `json:"status"`
	Reference string    `json:"reference"` // id de comprobante (uuid)
	CreatedAt time.Time `json:"createdAt"`
}
