package requirements

import (
	"context"
	"fmt"
	"strings"

	"scheduly/models"
)

// Source resolves degree requirements for a school/major pair. The curated
// source answers from an in-process catalog; the AI-backed source in
// services/intelligence answers for everything else.
type Source interface {
	GetRequirements(ctx context.Context, school, major string) (*models.RequirementSet, error)
}

func intPtr(v int) *int { return &v }

// curated holds hand-maintained requirement sets keyed by
// lowercase "school|major". Majors with several common spellings get one
// entry per spelling.
var curated = map[string]models.RequirementSet{}

func init() {
	pittCS := models.RequirementSet{
		CatalogYear: "2025-2026",
		Required:    []string{"CS0401", "CS0441", "CS0445", "CS1501", "CS1502", "CS1550"},
		GenEds: []models.ChooseFrom{
			{Label: "Writing Intensive", Count: 1, Options: []string{"ENGCMP0200", "ENGCMP0205", "ENGCMP0207"}},
			{Label: "Literature", Count: 1, Options: []string{"ENGLIT0200", "ENGLIT0400", "ENGLIT0500"}},
			{Label: "History", Count: 1, Options: []string{"HIST0100", "HIST0600", "HIST0700"}},
			{Label: "Social Science", Count: 1, Options: []string{"PSY0010", "SOC0010", "ANTH0780"}},
			{Label: "Natural Science", Count: 1, Options: []string{"BIOSC0150", "CHEM0110", "PHYS0174"}},
			{Label: "Arts", Count: 1, Options: []string{"MUSIC0211", "THEA0800", "ARTSC0100"}},
			{Label: "Philosophy", Count: 1, Options: []string{"PHIL0080", "PHIL0300", "PHIL0400"}},
		},
		ChooseFrom: []models.ChooseFrom{
			{Label: "Upper Level CS Electives", Count: 2, Options: []string{"CS1621", "CS1653", "CS1674", "CS1699", "CS1695", "CS1690"}},
			{Label: "Math Requirements", Count: 3, Options: []string{"MATH0220", "MATH0230", "MATH1180", "STAT1151"}},
		},
		MinCredits: intPtr(12),
		MaxCredits: intPtr(18),
		Prereqs:    []models.Prereq{},
		MultiTermPrereqs: []models.Prereq{
			{Course: "CS1502", Requires: []string{"CS1501"}},
			{Course: "CS1621", Requires: []string{"CS0445"}},
			{Course: "CS1653", Requires: []string{"CS0445"}},
			{Course: "CS1674", Requires: []string{"CS0445"}},
			{Course: "CS1699", Requires: []string{"CS0445"}},
		},
	}
	for _, major := range []string{"computer science", "cs", "computer science major"} {
		curated[curatedKey("pitt", major)] = pittCS
	}
}

func curatedKey(school, major string) string {
	return strings.ToLower(school) + "|" + strings.ToLower(major)
}

// CuratedSource serves the in-process requirement catalog.
type CuratedSource struct{}

// NewCuratedSource returns a source backed by the curated catalog.
func NewCuratedSource() *CuratedSource {
	return &CuratedSource{}
}

// Supported reports whether the catalog has an entry for the pair.
func (s *CuratedSource) Supported(school, major string) bool {
	_, ok := curated[curatedKey(school, major)]
	return ok
}

func (s *CuratedSource) GetRequirements(_ context.Context, school, major string) (*models.RequirementSet, error) {
	set, ok := curated[curatedKey(school, major)]
	if !ok {
		return nil, fmt.Errorf("no curated requirements for %s %s", school, major)
	}
	// Return a copy so callers can attach searched prereqs without touching
	// the catalog.
	out := set
	return &out, nil
}

// HardcodedMultiTermPrereqs is the development-mode prerequisite set for the
// Pitt CS core sequence, used when AI search is disabled.
func HardcodedMultiTermPrereqs(school, major string) []models.Prereq {
	if strings.ToLower(school) != "pitt" {
		return nil
	}
	switch strings.ToLower(major) {
	case "computer science", "cs", "computer science major":
		return []models.Prereq{
			{Course: "CS1550", Requires: []string{"CS0449", "CS0447"}},
			{Course: "CS1501", Requires: []string{"CS0441", "CS0445"}},
			{Course: "CS0449", Requires: []string{"CS0441"}},
			{Course: "CS0447", Requires: []string{"CS0441"}},
			{Course: "CS0445", Requires: []string{"CS0441"}},
		}
	}
	return nil
}
