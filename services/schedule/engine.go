package schedule

import (
	"sort"

	"scheduly/models"
)

// DefaultMaxCourses caps how many sections a single term schedule may hold.
const DefaultMaxCourses = 6

// BuildRequest carries everything one scheduling run needs. The caller owns
// the inputs; the engine never mutates them and holds no state between calls,
// so a single engine value is safe for concurrent use.
type BuildRequest struct {
	Term             string
	Sections         []models.Section
	Preferences      models.Preferences
	SameTermPrereqs  []models.Prereq
	AvailableCourses []string
	MultiTermPrereqs []models.Prereq
	CompletedCourses []string
}

// Engine builds a term schedule from a candidate section pool.
type Engine interface {
	BuildSchedule(req BuildRequest) models.SchedulePlan
}

// DefaultEngine is the greedy, single-pass scheduler. It makes one
// deterministic pass and never revisits a decision: a different conflict-free
// schedule of higher total value may exist, and that trade-off is deliberate.
// Swapping in a search-based solver would change observable output order and
// must not happen silently.
type DefaultEngine struct {
	// MaxCourses overrides DefaultMaxCourses when positive.
	MaxCourses int
}

// NewDefaultEngine returns an engine with the standard course cap.
func NewDefaultEngine() *DefaultEngine {
	return &DefaultEngine{MaxCourses: DefaultMaxCourses}
}

// BuildSchedule is total for well-typed input: it always returns a plan,
// never an error. Exclusions surface as explanation lines, not failures, and
// an empty section pool yields an empty plan.
func (e *DefaultEngine) BuildSchedule(req BuildRequest) models.SchedulePlan {
	maxCourses := e.MaxCourses
	if maxCourses <= 0 {
		maxCourses = DefaultMaxCourses
	}

	available := availableSet(req.AvailableCourses, req.Sections)
	sameTerm := indexPrereqs(req.SameTermPrereqs)
	multiTerm := indexPrereqs(req.MultiTermPrereqs)
	completed := stringSet(req.CompletedCourses)
	pinned := stringSet(req.Preferences.PinSections)

	ex := newExplainer()
	chosen := make([]models.Section, 0, maxCourses)
	chosenCourses := make(map[string]bool)

	// Pins resolve first and bypass the greedy ordering. A pin is honored as
	// long as it clears the hard constraints; honored pins are not checked
	// against prerequisites or against each other for overlap.
	for _, s := range req.Sections {
		if !pinned[s.CRN] {
			continue
		}
		if ViolatesHardConstraints(s, req.Preferences) {
			ex.pinRejected(s)
			continue
		}
		chosen = append(chosen, s)
		chosenCourses[s.Course] = true
		ex.pinHonored(s)
	}

	// Remaining candidates are ordered so courses with fewer same-term
	// prerequisite requirements come first, unlocking longer chains early.
	// Course code breaks ties; the stable sort keeps pool order for sections
	// of the same course.
	candidates := make([]models.Section, 0, len(req.Sections))
	for _, s := range req.Sections {
		if !pinned[s.CRN] {
			candidates = append(candidates, s)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		ci := sameTerm.requireCount(candidates[i].Course)
		cj := sameTerm.requireCount(candidates[j].Course)
		if ci != cj {
			return ci < cj
		}
		return candidates[i].Course < candidates[j].Course
	})

	for _, s := range candidates {
		if len(chosen) >= maxCourses {
			ex.capReached(maxCourses)
			break
		}
		if chosenCourses[s.Course] {
			continue
		}
		if ViolatesHardConstraints(s, req.Preferences) {
			ex.hardConstraintSkip(s, req.Preferences)
			continue
		}
		if !prereqsMet(s, chosenCourses, sameTerm, available, multiTerm, completed) {
			ex.prereqSkip(s)
			continue
		}
		if overlapsAny(s, chosen) {
			continue
		}
		chosen = append(chosen, s)
		chosenCourses[s.Course] = true
	}

	total := 0
	for _, s := range chosen {
		total += s.Credits
	}

	return models.SchedulePlan{
		Term:         req.Term,
		TotalCredits: total,
		Sections:     chosen,
		Explanations: ex.render(total, req.Preferences),
		Alternatives: []map[string]any{},
	}
}

func overlapsAny(s models.Section, chosen []models.Section) bool {
	for _, c := range chosen {
		if Overlaps(s, c) {
			return true
		}
	}
	return false
}

// availableSet defaults to the distinct courses present in the section pool
// when the caller supplies no explicit availability list.
func availableSet(courses []string, sections []models.Section) map[string]bool {
	if len(courses) > 0 {
		return stringSet(courses)
	}
	set := make(map[string]bool, len(sections))
	for _, s := range sections {
		set[s.Course] = true
	}
	return set
}

func stringSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, s := range items {
		set[s] = true
	}
	return set
}
