package payments

import "family-care/internal/domain/resource"

type Repository = resource.Repository[Payment]
