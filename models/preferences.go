package models

// Preferences holds the structured scheduling preferences for a session.
// Every field is optional; a zero value means "no constraint". Pointer fields
// distinguish "unset" from a meaningful zero.
type Preferences struct {
	NoDays        []string `bson:"noDays" json:"noDays"`
	EarliestStart string   `bson:"earliestStart,omitempty" json:"earliestStart,omitempty"`
	LatestEnd     string   `bson:"latestEnd,omitempty" json:"latestEnd,omitempty"`
	MinCredits    *int     `bson:"minCredits,omitempty" json:"minCredits,omitempty"`
	MaxCredits    *int     `bson:"maxCredits,omitempty" json:"maxCredits,omitempty"`
	SkipCourses   []string `bson:"skipCourses" json:"skipCourses"`
	PinSections   []string `bson:"pinSections" json:"pinSections"`
	AvoidGaps     *bool    `bson:"avoidGaps,omitempty" json:"avoidGaps,omitempty"`
}

// Merge folds newer preferences into p. List fields are unioned so that
// constraints accumulate across optimize turns; scalar fields overwrite only
// when the incoming value is set.
func (p *Preferences) Merge(in Preferences) {
	p.NoDays = unionStrings(p.NoDays, in.NoDays)
	p.SkipCourses = unionStrings(p.SkipCourses, in.SkipCourses)
	p.PinSections = unionStrings(p.PinSections, in.PinSections)
	if in.EarliestStart != "" {
		p.EarliestStart = in.EarliestStart
	}
	if in.LatestEnd != "" {
		p.LatestEnd = in.LatestEnd
	}
	if in.MinCredits != nil {
		p.MinCredits = in.MinCredits
	}
	if in.MaxCredits != nil {
		p.MaxCredits = in.MaxCredits
	}
	if in.AvoidGaps != nil {
		p.AvoidGaps = in.AvoidGaps
	}
}

func unionStrings(a, b []string) []string {
	if len(b) == 0 {
		return a
	}
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, s := range a {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, s := range b {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
