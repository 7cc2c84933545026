package requirements

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToTermCode(t *testing.T) {
	cases := []struct {
		season string
		year   int
		want   string
	}{
		{"fall", 2025, "2251"},
		{"Fall", 2025, "2251"},
		{"spring", 2025, "2244"},
		{"summer", 2025, "2257"},
		{"fall", 2030, "2301"},
	}
	for _, tc := range cases {
		got, err := ToTermCode(tc.season, tc.year)
		require.NoError(t, err, "%s %d", tc.season, tc.year)
		assert.Equal(t, tc.want, got)
	}

	_, err := ToTermCode("winter", 2025)
	assert.Error(t, err)
}

func TestValidateTerm(t *testing.T) {
	for _, term := range []string{"2251", "2244", "2257", "3051"} {
		assert.True(t, ValidateTerm(term), term)
	}
	for _, term := range []string{"", "225", "22510", "1951", "2299", "abcd"} {
		assert.False(t, ValidateTerm(term), term)
	}
}

func TestCuratedRequirements(t *testing.T) {
	src := NewCuratedSource()
	assert.True(t, src.Supported("Pitt", "Computer Science"))
	assert.True(t, src.Supported("pitt", "CS"))
	assert.False(t, src.Supported("Pitt", "Philosophy"))

	set, err := src.GetRequirements(context.Background(), "Pitt", "Computer Science")
	require.NoError(t, err)
	assert.Contains(t, set.Required, "CS1550")
	require.NotNil(t, set.MinCredits)
	assert.Equal(t, 12, *set.MinCredits)
	assert.NotEmpty(t, set.MultiTermPrereqs)

	_, err = src.GetRequirements(context.Background(), "Nowhere U", "Basketry")
	assert.Error(t, err)
}

func TestHardcodedMultiTermPrereqs(t *testing.T) {
	prereqs := HardcodedMultiTermPrereqs("Pitt", "Computer Science")
	require.NotEmpty(t, prereqs)
	found := false
	for _, p := range prereqs {
		if p.Course == "CS1550" {
			found = true
			assert.ElementsMatch(t, []string{"CS0449", "CS0447"}, p.Requires)
		}
	}
	assert.True(t, found)

	assert.Empty(t, HardcodedMultiTermPrereqs("Pitt", "History"))
	assert.Empty(t, HardcodedMultiTermPrereqs("CMU", "Computer Science"))
}
