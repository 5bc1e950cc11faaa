package schedules

import "family-care/internal/domain/resource"

type Repository = resource.Repository[Schedule]
