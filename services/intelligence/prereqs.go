package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"

	"scheduly/models"
	"scheduly/utils"
)

const prereqCachePrefix = "scheduly:prereq:"

// PrereqCache is a Redis-backed TTL cache for prerequisite search results,
// keyed by (school, course). Searches are slow and expensive; answers change
// at most once a term.
type PrereqCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPrereqCache(client *redis.Client, ttl time.Duration) *PrereqCache {
	return &PrereqCache{client: client, ttl: ttl}
}

func (c *PrereqCache) key(school, course string) string {
	return fmt.Sprintf("%s%s:%s", prereqCachePrefix, school, course)
}

func (c *PrereqCache) Get(ctx context.Context, school, course string) ([]string, bool) {
	data, err := c.client.Get(ctx, c.key(school, course)).Result()
	if err != nil {
		return nil, false
	}
	var requires []string
	if err := json.Unmarshal([]byte(data), &requires); err != nil {
		c.client.Del(ctx, c.key(school, course))
		return nil, false
	}
	return requires, true
}

func (c *PrereqCache) Put(ctx context.Context, school, course string, requires []string) {
	data, err := json.Marshal(requires)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(school, course), data, c.ttl).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache prerequisites",
			zap.String("school", school), zap.String("course", course), zap.Error(err))
	}
}

var prereqSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"requires": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
	},
	Required: []string{"requires"},
}

const prereqPrompt = `List the official course prerequisites for %s at %s.
Output JSON only, matching the schema. Normalize course codes exactly as the
catalog prints them, with no spaces. Use an empty list when the course has no
prerequisites.`

// GeminiPrereqSearcher answers prerequisite lookups via Gemini, consulting
// the cache first. cache may be nil.
type GeminiPrereqSearcher struct {
	Client *GeminiClient
	Cache  *PrereqCache
}

func (s *GeminiPrereqSearcher) SearchCoursePrereqs(ctx context.Context, school, course string) ([]string, error) {
	if s.Cache != nil {
		if requires, ok := s.Cache.Get(ctx, school, course); ok {
			return requires, nil
		}
	}
	raw, err := s.Client.generateJSON(ctx, fmt.Sprintf(prereqPrompt, course, school), prereqSchema)
	if err != nil {
		return nil, fmt.Errorf("prerequisite search for %s failed: %w", course, err)
	}
	var out struct {
		Requires []string `json:"requires"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode prerequisites for %s: %w", course, err)
	}
	if s.Cache != nil {
		s.Cache.Put(ctx, school, course, out.Requires)
	}
	return out.Requires, nil
}

// BatchSearchPrereqs resolves prerequisites for several courses. A failed
// lookup contributes an empty entry rather than failing the batch.
func (s *GeminiPrereqSearcher) BatchSearchPrereqs(ctx context.Context, school string, courses []string) (map[string][]string, error) {
	logger := utils.GetLogger()
	results := make(map[string][]string, len(courses))
	for _, course := range courses {
		requires, err := s.SearchCoursePrereqs(ctx, school, course)
		if err != nil {
			logger.Warn("Prerequisite search failed, assuming none",
				zap.String("course", course), zap.Error(err))
			results[course] = nil
			continue
		}
		results[course] = requires
	}
	return results, nil
}

// MultiTermPrereqs turns batch search results into the prerequisite entries
// the engine consumes, skipping courses with nothing required.
func MultiTermPrereqs(results map[string][]string, courses []string) []models.Prereq {
	prereqs := make([]models.Prereq, 0, len(results))
	for _, course := range courses {
		if requires := results[course]; len(requires) > 0 {
			prereqs = append(prereqs, models.Prereq{Course: course, Requires: requires})
		}
	}
	return prereqs
}
