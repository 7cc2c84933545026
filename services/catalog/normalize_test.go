package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTime(t *testing.T) {
	cases := []struct{ in, want string }{
		{"15.00", "15:00"},
		{"09.30", "09:30"},
		{"9.5", "09:50"},
		{"1500", "15:00"},
		{"15:00", "15:00"},
		{"15:00:00", "15:00"},
		{"", "00:00"},
		{" 10.15 ", "10:15"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeTime(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeDays(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"MoWeFr", []string{"Mon", "Wed", "Fri"}},
		{"TuTh", []string{"Tue", "Thu"}},
		{"SaSu", []string{"Sat", "Sun"}},
		{"Mo", []string{"Mon"}},
		{"", nil},
		{"TBA", nil},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeDays(tc.in), "input %q", tc.in)
	}
}

func TestSplitCourseCode(t *testing.T) {
	cases := []struct {
		in, subject, number string
	}{
		{"CS150", "CS", "0150"},
		{"CS1501", "CS", "1501"},
		{"ENGCMP0200", "ENGCMP", "0200"},
		{"MATH0220", "MATH", "0220"},
	}
	for _, tc := range cases {
		sub, num := SplitCourseCode(tc.in)
		assert.Equal(t, tc.subject, sub, "input %q", tc.in)
		assert.Equal(t, tc.number, num, "input %q", tc.in)
	}
}

func TestCleanCourseCodes(t *testing.T) {
	in := []string{
		"PHYS 0475 - Introduction to Physics",
		"cs0401",
		"  CS 1501  ",
		"AB",
		"WAYTOOLONGCOURSECODE",
	}
	assert.Equal(t, []string{"PHYS0475", "CS0401", "CS1501"}, CleanCourseCodes(in))
}

func TestMockSectionsOrder(t *testing.T) {
	secs := MockSections("2251", []string{"CS1550", "CS0445", "UNKNOWN"})
	assert.Len(t, secs, 2)
	assert.Equal(t, "CS1550", secs[0].Course)
	assert.Equal(t, "CS0445", secs[1].Course)
}
