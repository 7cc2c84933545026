package catalog

import (
	"context"

	"scheduly/models"
)

// mockCatalog is a small fixed offering used when the registrar yields
// nothing, so the demo flow always has sections to schedule.
var mockCatalog = map[string][]models.Section{
	"CS0445": {
		{Course: "CS0445", CRN: "45678", Label: "LEC-201", Days: []string{"Tue", "Thu"}, Start: "11:00", End: "12:15", Location: "SENSQ 5317", Credits: 3},
	},
	"CS1501": {
		{Course: "CS1501", CRN: "78901", Label: "LEC-101", Days: []string{"Mon", "Wed", "Fri"}, Start: "10:00", End: "10:50", Credits: 3},
	},
	"CS1550": {
		{Course: "CS1550", CRN: "12345", Label: "LEC-101", Days: []string{"Mon", "Wed", "Fri"}, Start: "09:00", End: "09:50", Credits: 3},
	},
}

// MockSections returns the mock offerings for the requested courses, in
// request order.
func MockSections(_ string, courseCodes []string) []models.Section {
	out := make([]models.Section, 0, len(courseCodes))
	for _, code := range courseCodes {
		out = append(out, mockCatalog[code]...)
	}
	return out
}

// MockSource serves only the mock catalog. Useful in tests and local
// development without registrar access.
type MockSource struct{}

func (MockSource) GetSections(_ context.Context, term string, courseCodes []string) ([]models.Section, error) {
	return MockSections(term, courseCodes), nil
}
