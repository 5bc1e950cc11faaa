package feedback

import "family-care/internal/domain/resource"

type Repository = resource.Repository[Feedback]
