package pets

import "family-care/internal/domain/resource"

type Service = resource.Service[Pet, *Pet]

func NewService(repo Repository) *Service {
	return resource.NewService[Pet](repo, resource.Options[Pet]{})
}
