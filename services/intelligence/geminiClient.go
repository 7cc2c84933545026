package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-2.0-flash"

// GeminiClient wraps the generative model used for preference parsing and
// requirement search.
type GeminiClient struct {
	client *genai.Client
}

func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is not set")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client}, nil
}

// generateJSON runs one schema-constrained generation and returns the raw
// JSON bytes of the response.
func (g *GeminiClient) generateJSON(ctx context.Context, prompt string, schema *genai.Schema) ([]byte, error) {
	model := g.client.GenerativeModel(geminiModel)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = schema

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	raw := extractJSON(sb.String())
	if raw == "" {
		return nil, fmt.Errorf("gemini returned no JSON payload")
	}
	if !json.Valid([]byte(raw)) {
		return nil, fmt.Errorf("gemini returned malformed JSON")
	}
	return []byte(raw), nil
}

// extractJSON finds the first complete JSON object in a response, trimming
// markdown fences and any surrounding prose the model may add despite the
// JSON response mode.
func extractJSON(raw string) string {
	if _, after, found := strings.Cut(raw, "```json"); found {
		raw = after
		if before, _, found := strings.Cut(raw, "```"); found {
			raw = before
		}
	} else if _, after, found := strings.Cut(raw, "```"); found {
		raw = after
		if before, _, found := strings.Cut(raw, "```"); found {
			raw = before
		}
	}
	start := strings.Index(raw, "{")
	if start == -1 {
		return ""
	}
	end := strings.LastIndex(raw, "}")
	if end == -1 || end < start {
		return ""
	}
	return raw[start : end+1]
}
