package family

import "family-care/internal/domain/resource"

type Service = resource.Service[Member, *Member]

func NewService(repo Repository) *Service {
	return resource.NewService[Member](repo, resource.Options[Member]{})
}
