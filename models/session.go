package models

import "time"

// SessionState is everything a scheduling session carries between the build
// and optimize calls. The engine never sees this type; handlers read it from
// the session store, hand the pieces to the engine, and write the result back.
type SessionState struct {
	School           string        `bson:"school" json:"school"`
	Major            string        `bson:"major" json:"major"`
	Term             string        `bson:"term" json:"term"`
	Preferences      Preferences   `bson:"preferences" json:"preferences"`
	Courses          []string      `bson:"courses" json:"courses"`
	Prereqs          []Prereq      `bson:"prereqs" json:"prereqs"`
	MultiTermPrereqs []Prereq      `bson:"multiSemesterPrereqs" json:"multiSemesterPrereqs"`
	CompletedCourses []string      `bson:"completedCourses" json:"completedCourses"`
	LastPlan         *SchedulePlan `bson:"lastPlan,omitempty" json:"lastPlan,omitempty"`
}

// SessionRecord wraps session state with the bookkeeping the stores need for
// expiry and inspection.
type SessionRecord struct {
	SessionID    string       `bson:"sessionId" json:"sessionId"`
	State        SessionState `bson:"state" json:"state"`
	CreatedAt    time.Time    `bson:"createdAt" json:"createdAt"`
	LastAccessed time.Time    `bson:"lastAccessed" json:"lastAccessed"`
}

// Expired reports whether the record's creation time is older than the given
// session lifetime.
func (r *SessionRecord) Expired(ttl time.Duration) bool {
	return time.Since(r.CreatedAt) > ttl
}
