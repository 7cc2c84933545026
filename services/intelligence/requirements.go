package ai

import (
	"context"
	"encoding/json"
	"fmt"

	genai "github.com/google/generative-ai-go/genai"

	"scheduly/models"
)

var requirementSetSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"catalogYear": {Type: genai.TypeString},
		"required":    {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"genEds":      chooseFromSchema(),
		"chooseFrom":  chooseFromSchema(),
		"minCredits":  {Type: genai.TypeInteger},
		"maxCredits":  {Type: genai.TypeInteger},
		"prereqs":     prereqListSchema(),
		"multiSemesterPrereqs": prereqListSchema(),
	},
	Required: []string{"required"},
}

func chooseFromSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"label":   {Type: genai.TypeString},
				"count":   {Type: genai.TypeInteger},
				"options": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			},
			Required: []string{"label", "count", "options"},
		},
	}
}

func prereqListSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"course":   {Type: genai.TypeString},
				"requires": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			},
			Required: []string{"course", "requires"},
		},
	}
}

const requirementsPrompt = `Find the official degree requirements for %s %s.
Output JSON only, matching the schema. Normalize course codes exactly as the
catalog prints them, with no spaces. Separate prerequisites that may be taken
in the same term (prereqs) from those that must be completed in an earlier
term (multiSemesterPrereqs).`

// GetRequirements resolves degree requirements for any school/major pair via
// Gemini. It satisfies the requirements.Source interface as the
// production-mode counterpart of the curated catalog.
func (g *GeminiClient) GetRequirements(ctx context.Context, school, major string) (*models.RequirementSet, error) {
	raw, err := g.generateJSON(ctx, fmt.Sprintf(requirementsPrompt, school, major), requirementSetSchema)
	if err != nil {
		return nil, fmt.Errorf("requirement search for %s %s failed: %w", school, major, err)
	}
	var set models.RequirementSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("failed to decode requirements for %s %s: %w", school, major, err)
	}
	return &set, nil
}
