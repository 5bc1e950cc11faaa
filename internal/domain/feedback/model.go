package feedback

import (
	"time"

	"family-care/internal/domain/resource"
)

type Feedback struct {
	resource.Meta
	Message   string    `json:"message"`
	Rating    int       `json:"rating"` // 1..5 en el cliente; no se valida
	CreatedAt time.Time `json:"createdAt"`
}
