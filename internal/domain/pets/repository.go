package pets

import "family-care/internal/domain/resource"

type Repository = resource.Repository[Pet]
