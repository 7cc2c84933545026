package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scheduly/models"
)

func intPtr(v int) *int { return &v }

func csPool() []models.Section {
	return []models.Section{
		{Course: "CS0441", CRN: "111", Label: "LEC-101", Days: []string{"Mon", "Wed"}, Start: "09:00", End: "09:50", Credits: 3},
		{Course: "CS0449", CRN: "222", Label: "LEC-101", Days: []string{"Mon", "Wed"}, Start: "09:00", End: "09:50", Credits: 3},
		{Course: "CS1550", CRN: "333", Label: "LEC-101", Days: []string{"Tue", "Thu"}, Start: "10:00", End: "11:15", Credits: 3},
	}
}

func multiTermCS() []models.Prereq {
	return []models.Prereq{{Course: "CS1550", Requires: []string{"CS0449", "CS0447"}}}
}

func chosenCRNs(plan models.SchedulePlan) []string {
	crns := make([]string, 0, len(plan.Sections))
	for _, s := range plan.Sections {
		crns = append(crns, s.CRN)
	}
	return crns
}

func TestBuildScheduleDropsOverlapAndHonorsMultiTermPrereqs(t *testing.T) {
	eng := NewDefaultEngine()
	plan := eng.BuildSchedule(BuildRequest{
		Term:             "2251",
		Sections:         csPool(),
		MultiTermPrereqs: multiTermCS(),
		CompletedCourses: []string{"CS0449", "CS0447"},
	})

	assert.Equal(t, []string{"111", "333"}, chosenCRNs(plan))
	assert.Equal(t, 6, plan.TotalCredits)
	// Overlap drops are silent, so the run reads as fully successful.
	assert.Equal(t, []string{"Schedule built successfully with all constraints satisfied"}, plan.Explanations)
}

func TestBuildSchedulePinOverridesGreedyOrder(t *testing.T) {
	eng := NewDefaultEngine()
	plan := eng.BuildSchedule(BuildRequest{
		Term:             "2251",
		Sections:         csPool(),
		Preferences:      models.Preferences{PinSections: []string{"222"}},
		MultiTermPrereqs: multiTermCS(),
		CompletedCourses: []string{"CS0449", "CS0447"},
	})

	assert.Equal(t, []string{"222", "333"}, chosenCRNs(plan))
	assert.Equal(t, 6, plan.TotalCredits)
	require.NotEmpty(t, plan.Explanations)
	assert.Equal(t, "Pinned section CS0449 LEC-101 (CRN: 222)", plan.Explanations[0])
}

func TestBuildScheduleExcludesDays(t *testing.T) {
	eng := NewDefaultEngine()
	plan := eng.BuildSchedule(BuildRequest{
		Term:        "2251",
		Sections:    csPool(),
		Preferences: models.Preferences{NoDays: []string{"Mon"}},
	})

	assert.Equal(t, []string{"333"}, chosenCRNs(plan))
	assert.Equal(t, 3, plan.TotalCredits)
	assert.Contains(t, plan.Explanations, "Avoided days: Mon")
}

func TestBuildScheduleWarnsBelowMinimumCredits(t *testing.T) {
	eng := NewDefaultEngine()
	plan := eng.BuildSchedule(BuildRequest{
		Term:        "2251",
		Sections:    csPool(),
		Preferences: models.Preferences{NoDays: []string{"Mon"}, MinCredits: intPtr(12)},
	})

	assert.Equal(t, []string{"333"}, chosenCRNs(plan))
	assert.Contains(t, plan.Explanations, "Warning: Total credits (3) below minimum (12)")
}

func TestBuildScheduleEmptyPool(t *testing.T) {
	eng := NewDefaultEngine()
	plan := eng.BuildSchedule(BuildRequest{Term: "2251"})

	assert.Empty(t, plan.Sections)
	assert.Zero(t, plan.TotalCredits)
	assert.Equal(t, []string{"Schedule built successfully with all constraints satisfied"}, plan.Explanations)
	assert.Empty(t, plan.Alternatives)
	assert.NotNil(t, plan.Alternatives)
}

func TestBuildScheduleRejectsPinViolatingHardConstraints(t *testing.T) {
	eng := NewDefaultEngine()
	plan := eng.BuildSchedule(BuildRequest{
		Term:     "2251",
		Sections: csPool(),
		Preferences: models.Preferences{
			NoDays:      []string{"Mon"},
			PinSections: []string{"222"},
		},
	})

	assert.Equal(t, []string{"333"}, chosenCRNs(plan))
	assert.Contains(t, plan.Explanations, "Could not pin section CS0449 LEC-101 (CRN: 222) due to hard constraints")
}

func TestBuildScheduleHonoredPinsMayConflict(t *testing.T) {
	// Two honored pins are accepted even when they collide with each other;
	// the pin resolver only runs the hard-constraint filter.
	eng := NewDefaultEngine()
	plan := eng.BuildSchedule(BuildRequest{
		Term:        "2251",
		Sections:    csPool(),
		Preferences: models.Preferences{PinSections: []string{"111", "222"}},
	})

	assert.Equal(t, []string{"111", "222", "333"}, chosenCRNs(plan))
}

func TestBuildScheduleOnePerCourse(t *testing.T) {
	sections := []models.Section{
		{Course: "CS0441", CRN: "111", Days: []string{"Mon"}, Start: "09:00", End: "09:50", Credits: 3},
		{Course: "CS0441", CRN: "112", Days: []string{"Tue"}, Start: "09:00", End: "09:50", Credits: 3},
	}
	eng := NewDefaultEngine()
	plan := eng.BuildSchedule(BuildRequest{Term: "2251", Sections: sections})

	require.Len(t, plan.Sections, 1)
	assert.Equal(t, "111", plan.Sections[0].CRN)
}

func TestBuildScheduleCourseCap(t *testing.T) {
	sections := make([]models.Section, 0, 8)
	days := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Mon", "Tue", "Wed"}
	starts := []string{"08:00", "08:00", "08:00", "08:00", "08:00", "10:00", "10:00", "10:00"}
	for i := 0; i < 8; i++ {
		sections = append(sections, models.Section{
			Course:  string(rune('A'+i)) + "100",
			CRN:     string(rune('0' + i)),
			Days:    []string{days[i]},
			Start:   starts[i],
			End:     starts[i][:3] + "50",
			Credits: 3,
		})
	}
	eng := NewDefaultEngine()
	plan := eng.BuildSchedule(BuildRequest{Term: "2251", Sections: sections})

	assert.Len(t, plan.Sections, DefaultMaxCourses)
	assert.Equal(t, 18, plan.TotalCredits)
	assert.Contains(t, plan.Explanations, "Reached the maximum of 6 courses for this term")
}

func TestBuildScheduleSameTermPrereqOrdering(t *testing.T) {
	// ZZ100 has no prerequisites and must be considered before AA200, which
	// requires it; ordering by require-count makes the chain resolvable in
	// one pass even though course codes sort the other way.
	sections := []models.Section{
		{Course: "AA200", CRN: "1", Days: []string{"Mon"}, Start: "09:00", End: "09:50", Credits: 3},
		{Course: "ZZ100", CRN: "2", Days: []string{"Tue"}, Start: "09:00", End: "09:50", Credits: 3},
	}
	eng := NewDefaultEngine()
	plan := eng.BuildSchedule(BuildRequest{
		Term:            "2251",
		Sections:        sections,
		SameTermPrereqs: []models.Prereq{{Course: "AA200", Requires: []string{"ZZ100"}}},
	})

	assert.Equal(t, []string{"2", "1"}, chosenCRNs(plan))
}

func TestBuildScheduleSameTermPrereqUnavailable(t *testing.T) {
	sections := []models.Section{
		{Course: "AA200", CRN: "1", Days: []string{"Mon"}, Start: "09:00", End: "09:50", Credits: 3},
	}
	eng := NewDefaultEngine()
	plan := eng.BuildSchedule(BuildRequest{
		Term:             "2251",
		Sections:         sections,
		SameTermPrereqs:  []models.Prereq{{Course: "AA200", Requires: []string{"ZZ100"}}},
		AvailableCourses: []string{"AA200"},
	})

	assert.Empty(t, plan.Sections)
	assert.Contains(t, plan.Explanations, "Skipped due to unmet prerequisites: AA200")
}

func TestBuildScheduleMultiTermPrereqMissing(t *testing.T) {
	eng := NewDefaultEngine()
	plan := eng.BuildSchedule(BuildRequest{
		Term:             "2251",
		Sections:         csPool(),
		MultiTermPrereqs: multiTermCS(),
		CompletedCourses: []string{"CS0449"}, // CS0447 missing
	})

	assert.Equal(t, []string{"111"}, chosenCRNs(plan))
	assert.Contains(t, plan.Explanations, "Skipped due to unmet prerequisites: CS1550")
}

func TestBuildScheduleDeterministic(t *testing.T) {
	req := BuildRequest{
		Term:             "2251",
		Sections:         csPool(),
		Preferences:      models.Preferences{NoDays: []string{"Wed"}, PinSections: []string{"333"}},
		MultiTermPrereqs: multiTermCS(),
		CompletedCourses: []string{"CS0449", "CS0447"},
	}
	eng := NewDefaultEngine()
	first := eng.BuildSchedule(req)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, eng.BuildSchedule(req))
	}
}

func TestBuildSchedulePlanProperties(t *testing.T) {
	prefs := models.Preferences{
		NoDays:        []string{"Fri"},
		EarliestStart: "09:00",
		LatestEnd:     "17:00",
		SkipCourses:   []string{"CS0007"},
	}
	pool := append(csPool(),
		models.Section{Course: "CS0007", CRN: "444", Days: []string{"Tue"}, Start: "10:00", End: "10:50", Credits: 3},
		models.Section{Course: "MATH0220", CRN: "555", Days: []string{"Fri"}, Start: "11:00", End: "11:50", Credits: 4},
		models.Section{Course: "ENGCMP0200", CRN: "666", Days: []string{"Mon"}, Start: "08:00", End: "08:50", Credits: 3},
	)
	eng := NewDefaultEngine()
	plan := eng.BuildSchedule(BuildRequest{Term: "2251", Sections: pool, Preferences: prefs})

	seenCourse := make(map[string]bool)
	total := 0
	for i, a := range plan.Sections {
		assert.False(t, ViolatesHardConstraints(a, prefs), "chosen section %s violates hard constraints", a.CRN)
		assert.False(t, seenCourse[a.Course], "two sections for course %s", a.Course)
		seenCourse[a.Course] = true
		total += a.Credits
		for _, b := range plan.Sections[i+1:] {
			assert.False(t, Overlaps(a, b), "sections %s and %s overlap", a.CRN, b.CRN)
		}
	}
	assert.Equal(t, total, plan.TotalCredits)
}
