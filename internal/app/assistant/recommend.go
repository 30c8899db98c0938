package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"google.golang.org/genai"

	"cinevoice/internal/app/model"
)

const recommendPromptTemplate = `Recommend up to five movies for this request: %q.
Use current information where it helps (new releases, what is popular now).
Reply with a JSON array only, each element shaped like
{"title": "...", "year": 1999, "reason": "...", "rating": 8.1}.`

// DefaultRecommendationQuery is used when the caller sends no query
const DefaultRecommendationQuery = "movies that are popular right now"

// RecommendMovies asks the model for suggestions with Google Search
// grounding attached, so replies can reference current releases.
func (a *GeminiAssistant) RecommendMovies(ctx context.Context, query string) ([]model.Recommendation, error) {
	client, err := GetClient(ctx)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(query) == "" {
		query = DefaultRecommendationQuery
	}

	contents := []*genai.Content{
		genai.NewContentFromText(fmt.Sprintf(recommendPromptTemplate, query), genai.RoleUser),
	}
	// JSON response mode cannot be combined with grounding tools, so the
	// JSON shape is requested in the prompt and parsed leniently.
	cfg := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, a.models.ChatModel, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("recommendation call failed: %w", err)
	}

	recommendations, err := parseRecommendations(resp.Text())
	if err != nil {
		return nil, err
	}
	return recommendations, nil
}

// parseRecommendations extracts the JSON array from a model reply that may
// wrap it in markdown fences or surrounding prose.
func parseRecommendations(reply string) ([]model.Recommendation, error) {
	start := strings.Index(reply, "[")
	end := strings.LastIndex(reply, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no recommendation list in model reply")
	}

	var recommendations []model.Recommendation
	if err := json.Unmarshal([]byte(reply[start:end+1]), &recommendations); err != nil {
		return nil, fmt.Errorf("failed to parse recommendations: %w", err)
	}

	recommendations = lo.Filter(recommendations, func(r model.Recommendation, _ int) bool {
		return strings.TrimSpace(r.Title) != ""
	})
	if len(recommendations) == 0 {
		return nil, fmt.Errorf("model reply contained no usable recommendations")
	}
	return recommendations, nil
}

// FormatRecommendations renders suggestions as natural language, one line
// per movie, ready for speech synthesis.
func FormatRecommendations(recommendations []model.Recommendation) string {
	lines := lo.Map(recommendations, func(r model.Recommendation, _ int) string {
		line := r.Title
		if r.Year > 0 {
			line = fmt.Sprintf("%s (%d)", line, r.Year)
		}
		if r.Reason != "" {
			line = fmt.Sprintf("%s: %s", line, r.Reason)
		}
		return line
	})
	return strings.Join(lines, "\n")
}
