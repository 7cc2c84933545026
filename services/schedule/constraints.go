package schedule

import "scheduly/models"

// Overlaps reports whether two sections collide: they share at least one
// weekday and their time ranges intersect. Back-to-back sections (one ending
// exactly when the other starts) do not overlap. Times must already be
// zero-padded "HH:MM", which makes lexical comparison equivalent to numeric.
func Overlaps(a, b models.Section) bool {
	if !shareDay(a.Days, b.Days) {
		return false
	}
	return !(a.End <= b.Start || b.End <= a.Start)
}

func shareDay(a, b []string) bool {
	for _, da := range a {
		for _, db := range b {
			if da == db {
				return true
			}
		}
	}
	return false
}

// ViolatesHardConstraints reports whether a section breaks any non-negotiable
// preference: an excluded weekday, a start before the earliest allowed time,
// an end after the latest allowed time, or a course the student wants skipped.
// Any single match rejects the section; none of the checks depend on what has
// already been chosen.
func ViolatesHardConstraints(s models.Section, p models.Preferences) bool {
	for _, d := range s.Days {
		if containsString(p.NoDays, d) {
			return true
		}
	}
	if p.EarliestStart != "" && s.Start < p.EarliestStart {
		return true
	}
	if p.LatestEnd != "" && s.End > p.LatestEnd {
		return true
	}
	return containsString(p.SkipCourses, s.Course)
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
