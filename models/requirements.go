package models

// Prereq gates one course on a set of other courses. The same shape is used
// for same-term prerequisites (satisfiable by co-enrollment) and multi-term
// prerequisites (satisfiable only by prior completion); which collection a
// Prereq lives in decides its meaning.
type Prereq struct {
	Course   string   `bson:"course" json:"course"`
	Requires []string `bson:"requires" json:"requires"`
}

// ChooseFrom is a pick-N group of interchangeable courses, used for gen-ed
// buckets and major electives.
type ChooseFrom struct {
	Label   string   `bson:"label" json:"label"`
	Count   int      `bson:"count" json:"count"`
	Options []string `bson:"options" json:"options"`
}

// RequirementSet describes the degree requirements for one school/major pair.
type RequirementSet struct {
	CatalogYear      string       `bson:"catalogYear,omitempty" json:"catalogYear,omitempty"`
	Required         []string     `bson:"required" json:"required"`
	GenEds           []ChooseFrom `bson:"genEds" json:"genEds"`
	ChooseFrom       []ChooseFrom `bson:"chooseFrom" json:"chooseFrom"`
	MinCredits       *int         `bson:"minCredits,omitempty" json:"minCredits,omitempty"`
	MaxCredits       *int         `bson:"maxCredits,omitempty" json:"maxCredits,omitempty"`
	Prereqs          []Prereq     `bson:"prereqs" json:"prereqs"`
	MultiTermPrereqs []Prereq     `bson:"multiSemesterPrereqs" json:"multiSemesterPrereqs"`
}
