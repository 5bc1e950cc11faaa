package family

import "family-care/internal/domain/resource"

type Repository = resource.Repository[Member]
