package schedule

import "scheduly/models"

// prereqIndex groups prerequisite entries by the course they gate. A course
// may appear in several entries; all of them must be satisfied.
type prereqIndex map[string][][]string

func indexPrereqs(prereqs []models.Prereq) prereqIndex {
	idx := make(prereqIndex, len(prereqs))
	for _, p := range prereqs {
		idx[p.Course] = append(idx[p.Course], p.Requires)
	}
	return idx
}

// requireCount is the total number of required courses across all same-term
// entries gating the given course. It drives the greedy ordering: courses
// with nothing to unlock them sort first.
func (idx prereqIndex) requireCount(course string) int {
	n := 0
	for _, reqs := range idx[course] {
		n += len(reqs)
	}
	return n
}

// prereqsMet checks a candidate section against both prerequisite
// collections. Same-term requirements are satisfied by a course that is
// already chosen or merely offered this term (the engine trusts that a
// co-enrollable course exists, it does not verify it gets scheduled).
// Multi-term requirements are satisfied only by prior completion. A course
// with no entries in either index is unconstrained.
func prereqsMet(s models.Section, chosenCourses map[string]bool, sameTerm prereqIndex, available map[string]bool, multiTerm prereqIndex, completed map[string]bool) bool {
	for _, reqs := range multiTerm[s.Course] {
		for _, r := range reqs {
			if !completed[r] {
				return false
			}
		}
	}
	for _, reqs := range sameTerm[s.Course] {
		for _, r := range reqs {
			if !chosenCourses[r] && !available[r] {
				return false
			}
		}
	}
	return true
}
