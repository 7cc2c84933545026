package catalog

import (
	"context"

	"scheduly/models"
)

// Source fetches candidate sections for a term. An empty result is a valid,
// non-error outcome: a course may simply not be offered.
type Source interface {
	GetSections(ctx context.Context, term string, courseCodes []string) ([]models.Section, error)
}
