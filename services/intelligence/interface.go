package ai

import (
	"context"

	"scheduly/models"
)

// PreferenceParser turns a free-text utterance into structured scheduling
// preferences. The scheduling engine never receives raw text; this is the
// boundary where language stops and types begin.
type PreferenceParser interface {
	ParsePreferences(ctx context.Context, utterance string) (models.Preferences, error)
}

// PrereqSearcher looks up prerequisite chains for courses at a school.
type PrereqSearcher interface {
	SearchCoursePrereqs(ctx context.Context, school, course string) ([]string, error)
	BatchSearchPrereqs(ctx context.Context, school string, courses []string) (map[string][]string, error)
}
