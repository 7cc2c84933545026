package models

// Section is one scheduled offering of a course within a term. Times are
// zero-padded "HH:MM" wall-clock strings; upstream sources normalize them
// before a Section is constructed.
type Section struct {
	Course     string   `bson:"course" json:"course"`
	CRN        string   `bson:"crn" json:"crn"`
	Label      string   `bson:"section" json:"section"`
	Days       []string `bson:"days" json:"days"`
	Start      string   `bson:"start" json:"start"`
	End        string   `bson:"end" json:"end"`
	Location   string   `bson:"location,omitempty" json:"location,omitempty"`
	Instructor string   `bson:"instructor,omitempty" json:"instructor,omitempty"`
	Credits    int      `bson:"credits" json:"credits"`
}

// DefaultCredits applies when a catalog source reports no credit value.
const DefaultCredits = 3

// SchedulePlan is the output of one scheduling run: the chosen conflict-free
// sections plus a human-readable rationale for everything that was excluded.
// Alternatives is reserved and always empty for now.
type SchedulePlan struct {
	Term         string           `bson:"term" json:"term"`
	TotalCredits int              `bson:"totalCredits" json:"totalCredits"`
	Sections     []Section        `bson:"sections" json:"sections"`
	Explanations []string         `bson:"explanations" json:"explanations"`
	Alternatives []map[string]any `bson:"alternatives" json:"alternatives"`
}
