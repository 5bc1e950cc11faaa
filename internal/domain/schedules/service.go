package schedules

import "family-care/internal/domain/resource"

type Service = resource.Service[Schedule, *Schedule]

func NewService(repo Repository) *Service {
	return resource.NewService[Schedule](repo, resource.Options[Schedule]{})
}
