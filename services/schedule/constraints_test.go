package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scheduly/models"
)

func sec(days []string, start, end string) models.Section {
	return models.Section{Course: "CS0441", CRN: "111", Days: days, Start: start, End: end, Credits: 3}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b models.Section
		want bool
	}{
		{"same day same time", sec([]string{"Mon"}, "09:00", "09:50"), sec([]string{"Mon"}, "09:00", "09:50"), true},
		{"partial time overlap", sec([]string{"Mon"}, "09:00", "10:15"), sec([]string{"Mon"}, "10:00", "10:50"), true},
		{"disjoint days", sec([]string{"Mon", "Wed"}, "09:00", "09:50"), sec([]string{"Tue", "Thu"}, "09:00", "09:50"), false},
		{"one shared day", sec([]string{"Mon", "Wed"}, "09:00", "09:50"), sec([]string{"Wed", "Fri"}, "09:30", "10:20"), true},
		{"back to back", sec([]string{"Mon"}, "09:00", "09:50"), sec([]string{"Mon"}, "09:50", "10:40"), false},
		{"disjoint times", sec([]string{"Mon"}, "08:00", "08:50"), sec([]string{"Mon"}, "13:00", "13:50"), false},
		{"no days at all", sec(nil, "09:00", "09:50"), sec(nil, "09:00", "09:50"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.a, tc.b))
			assert.Equal(t, tc.want, Overlaps(tc.b, tc.a), "overlap must be symmetric")
		})
	}
}

func TestViolatesHardConstraints(t *testing.T) {
	s := sec([]string{"Mon", "Wed"}, "09:00", "10:15")
	cases := []struct {
		name  string
		prefs models.Preferences
		want  bool
	}{
		{"no constraints", models.Preferences{}, false},
		{"excluded day", models.Preferences{NoDays: []string{"Wed"}}, true},
		{"unrelated day", models.Preferences{NoDays: []string{"Fri"}}, false},
		{"starts too early", models.Preferences{EarliestStart: "09:30"}, true},
		{"earliest boundary ok", models.Preferences{EarliestStart: "09:00"}, false},
		{"ends too late", models.Preferences{LatestEnd: "10:00"}, true},
		{"latest boundary ok", models.Preferences{LatestEnd: "10:15"}, false},
		{"skipped course", models.Preferences{SkipCourses: []string{"CS0441"}}, true},
		{"other course skipped", models.Preferences{SkipCourses: []string{"CS1550"}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ViolatesHardConstraints(s, tc.prefs))
		})
	}
}
