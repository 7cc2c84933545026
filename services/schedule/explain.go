package schedule

import (
	"fmt"
	"sort"
	"strings"

	"scheduly/models"
)

var weekdayRank = map[string]int{
	"Mon": 0, "Tue": 1, "Wed": 2, "Thu": 3, "Fri": 4, "Sat": 5, "Sun": 6,
}

// explainer accumulates the rationale for every exclusion over one run and
// renders it in a fixed order: pin outcomes, skip categories, run notes,
// credit warnings, and a lone success line when nothing else was emitted.
type explainer struct {
	pinLines       []string
	skippedCourses map[string]bool
	skippedDays    map[string]bool
	skippedTimes   map[string]bool
	skippedPrereqs map[string]bool
	capLine        string
}

func newExplainer() *explainer {
	return &explainer{
		skippedCourses: make(map[string]bool),
		skippedDays:    make(map[string]bool),
		skippedTimes:   make(map[string]bool),
		skippedPrereqs: make(map[string]bool),
	}
}

func (e *explainer) pinHonored(s models.Section) {
	e.pinLines = append(e.pinLines, fmt.Sprintf("Pinned section %s %s (CRN: %s)", s.Course, s.Label, s.CRN))
}

func (e *explainer) pinRejected(s models.Section) {
	e.pinLines = append(e.pinLines, fmt.Sprintf("Could not pin section %s %s (CRN: %s) due to hard constraints", s.Course, s.Label, s.CRN))
}

// hardConstraintSkip classifies a rejected section into exactly one skip
// category: explicit course skip wins, then excluded days, then the time
// window.
func (e *explainer) hardConstraintSkip(s models.Section, p models.Preferences) {
	if containsString(p.SkipCourses, s.Course) {
		e.skippedCourses[s.Course] = true
		return
	}
	matchedDay := false
	for _, d := range s.Days {
		if containsString(p.NoDays, d) {
			e.skippedDays[d] = true
			matchedDay = true
		}
	}
	if matchedDay {
		return
	}
	e.skippedTimes[s.Course] = true
}

func (e *explainer) prereqSkip(s models.Section) {
	e.skippedPrereqs[s.Course] = true
}

func (e *explainer) capReached(max int) {
	e.capLine = fmt.Sprintf("Reached the maximum of %d courses for this term", max)
}

func (e *explainer) render(totalCredits int, p models.Preferences) []string {
	var out []string
	out = append(out, e.pinLines...)

	if len(e.skippedCourses) > 0 {
		out = append(out, "Skipped courses: "+joinSorted(e.skippedCourses))
	}
	if len(e.skippedDays) > 0 {
		out = append(out, "Avoided days: "+joinDays(e.skippedDays))
	}
	if len(e.skippedTimes) > 0 {
		out = append(out, "Skipped due to time constraints: "+joinSorted(e.skippedTimes))
	}
	if len(e.skippedPrereqs) > 0 {
		out = append(out, "Skipped due to unmet prerequisites: "+joinSorted(e.skippedPrereqs))
	}
	if e.capLine != "" {
		out = append(out, e.capLine)
	}
	if p.MinCredits != nil && totalCredits < *p.MinCredits {
		out = append(out, fmt.Sprintf("Warning: Total credits (%d) below minimum (%d)", totalCredits, *p.MinCredits))
	}
	if p.MaxCredits != nil && totalCredits > *p.MaxCredits {
		out = append(out, fmt.Sprintf("Warning: Total credits (%d) above maximum (%d)", totalCredits, *p.MaxCredits))
	}
	if len(out) == 0 {
		out = append(out, "Schedule built successfully with all constraints satisfied")
	}
	return out
}

func joinSorted(set map[string]bool) string {
	items := make([]string, 0, len(set))
	for s := range set {
		items = append(items, s)
	}
	sort.Strings(items)
	return strings.Join(items, ", ")
}

// joinDays sorts in weekday order so explanations read naturally; unknown
// tokens go last, alphabetically.
func joinDays(set map[string]bool) string {
	days := make([]string, 0, len(set))
	for d := range set {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool {
		ri, iok := weekdayRank[days[i]]
		rj, jok := weekdayRank[days[j]]
		if iok && jok {
			return ri < rj
		}
		if iok != jok {
			return iok
		}
		return days[i] < days[j]
	})
	return strings.Join(days, ", ")
}
