package feedback

import (
	"strings"
	"time"

	"family-care/internal/domain/resource"
)

// legacyMessageKey es el nombre que usaba una versión del cliente para el texto.
const legacyMessageKey = "feedback"

type Service = resource.Service[Feedback, *Feedback]

func NewService(repo Repository) *Service {
	return resource.NewService[Feedback](repo, resource.Options[Feedback]{
		ReadOnly:  []string{"createdAt", legacyMessageKey},
		Normalize: normalize,
		OnCreate: func(f *Feedback, now time.Time) {
			f.CreatedAt = now.UTC()
		},
	})
}

// normalize acepta {feedback: "..."} como alias de {message: "..."}.
// Si vienen ambos gana message. Las claves no distinguen mayúsculas, igual que
// el decode.
func normalize(fields map[string]any) {
	var (
		alias    any
		hasAlias bool
	)
	for k, v := range fields {
		if strings.EqualFold(k, "message") {
			return
		}
		if strings.EqualFold(k, legacyMessageKey) {
			alias, hasAlias = v, true
		}
	}
	if hasAlias {
		fields["message"] = alias
	}
}
