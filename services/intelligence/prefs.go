package ai

import (
	"context"
	"encoding/json"
	"fmt"

	genai "github.com/google/generative-ai-go/genai"

	"scheduly/models"
)

var preferencesSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"noDays":        {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"earliestStart": {Type: genai.TypeString},
		"latestEnd":     {Type: genai.TypeString},
		"minCredits":    {Type: genai.TypeInteger},
		"maxCredits":    {Type: genai.TypeInteger},
		"skipCourses":   {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"pinSections":   {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"avoidGaps":     {Type: genai.TypeBoolean},
	},
}

const preferencesPrompt = `Convert the student's scheduling request into structured preferences.
Days use three-letter tokens (Mon, Tue, Wed, Thu, Fri, Sat, Sun). Times are 24-hour "HH:MM".
Only fill fields the student actually asked for.

Request: %s`

// ParsePreferences converts a free-text utterance into structured
// preferences. Fields the student did not mention stay unset.
func (g *GeminiClient) ParsePreferences(ctx context.Context, utterance string) (models.Preferences, error) {
	var prefs models.Preferences
	if utterance == "" {
		return prefs, nil
	}
	raw, err := g.generateJSON(ctx, fmt.Sprintf(preferencesPrompt, utterance), preferencesSchema)
	if err != nil {
		return prefs, fmt.Errorf("failed to parse preferences: %w", err)
	}
	if err := json.Unmarshal(raw, &prefs); err != nil {
		return models.Preferences{}, fmt.Errorf("failed to decode preferences: %w", err)
	}
	return prefs, nil
}
