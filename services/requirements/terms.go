package requirements

import (
	"fmt"
	"strconv"
	"strings"
)

// ToTermCode converts a season and year to a registrar term code, e.g.
// ("fall", 2025) -> "2251". Spring terms are coded against the previous
// calendar year.
func ToTermCode(season string, year int) (string, error) {
	var lastDigit string
	switch strings.ToLower(season) {
	case "fall":
		lastDigit = "1"
	case "spring":
		lastDigit = "4"
	case "summer":
		lastDigit = "7"
	default:
		return "", fmt.Errorf("invalid season %q: must be fall, spring, or summer", season)
	}

	yearCode := year % 100
	if strings.ToLower(season) == "spring" {
		yearCode = (year - 1) % 100
	}
	return fmt.Sprintf("2%02d%s", yearCode, lastDigit), nil
}

// ValidateTerm checks the four-character term code format the registrar
// expects, e.g. "2251" for Fall 2025.
func ValidateTerm(term string) bool {
	if len(term) != 4 {
		return false
	}
	year, err := strconv.Atoi(term[:2])
	if err != nil {
		return false
	}
	code, err := strconv.Atoi(term[2:])
	if err != nil {
		return false
	}
	if year < 20 || year > 30 {
		return false
	}
	return code == 44 || code == 51 || code == 57
}
