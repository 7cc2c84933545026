package catalog

import (
	"strings"
	"unicode"
)

// NormalizeTime coerces the registrar's assorted time formats ("15.00",
// "09.30", "1500", "15:00") into zero-padded "HH:MM", the only form the
// scheduling engine compares.
func NormalizeTime(t string) string {
	t = strings.TrimSpace(t)
	if t == "" {
		return "00:00"
	}
	if strings.Contains(t, ":") && len(t) >= 5 {
		return t[:5]
	}
	if hh, mm, ok := strings.Cut(t, "."); ok {
		for len(hh) < 2 {
			hh = "0" + hh
		}
		if len(mm) > 2 {
			mm = mm[:2]
		}
		for len(mm) < 2 {
			mm += "0"
		}
		return hh + ":" + mm
	}
	if len(t) == 4 && isDigits(t) {
		return t[:2] + ":" + t[2:]
	}
	if len(t) > 5 {
		return t[:5]
	}
	return t
}

var dayTokens = []struct{ abbr, full string }{
	{"Mo", "Mon"}, {"Tu", "Tue"}, {"We", "Wed"}, {"Th", "Thu"},
	{"Fr", "Fri"}, {"Sa", "Sat"}, {"Su", "Sun"},
}

// NormalizeDays converts a PeopleSoft day string like "MoWeFr" into the
// three-letter tokens the engine uses: ["Mon", "Wed", "Fri"].
func NormalizeDays(raw string) []string {
	var days []string
	for i := 0; i < len(raw); {
		matched := false
		for _, tok := range dayTokens {
			if strings.HasPrefix(raw[i:], tok.abbr) {
				days = append(days, tok.full)
				i += len(tok.abbr)
				matched = true
				break
			}
		}
		if !matched {
			i++
		}
	}
	return days
}

// SplitCourseCode separates a code like "CS150" into its subject and a
// zero-padded four-digit catalog number ("CS", "0150").
func SplitCourseCode(code string) (subject, number string) {
	var sub, num strings.Builder
	for _, c := range code {
		switch {
		case unicode.IsLetter(c):
			sub.WriteRune(c)
		case unicode.IsDigit(c):
			num.WriteRune(c)
		}
	}
	number = num.String()
	for len(number) < 4 {
		number = "0" + number
	}
	return sub.String(), number
}

// CleanCourseCodes validates and canonicalizes caller-supplied course codes:
// uppercase, description stripped after a dash, spaces removed. Codes that
// end up shorter than 3 or longer than 10 characters are dropped.
func CleanCourseCodes(codes []string) []string {
	validated := make([]string, 0, len(codes))
	for _, code := range codes {
		clean := strings.ToUpper(strings.TrimSpace(code))
		if before, _, found := strings.Cut(clean, "-"); found {
			clean = strings.TrimSpace(before)
		}
		clean = strings.ReplaceAll(clean, " ", "")
		if len(clean) >= 3 && len(clean) <= 10 {
			validated = append(validated, clean)
		}
	}
	return validated
}

func isDigits(s string) bool {
	for _, c := range s {
		if !unicode.IsDigit(c) {
			return false
		}
	}
	return true
}
