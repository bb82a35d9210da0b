package suggester

import (
	"context"
	"fmt"
	"strings"

	"budgetlytic/expense-ai/internal/logging"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// AIClient picks a category name for text that no other tier could score.
type AIClient interface {
	PickCategory(ctx context.Context, text string, categories []string) (string, error)
}

// GeminiClient implements AIClient against the Google Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
	log    logging.Logger
}

// NewGeminiClient creates a GeminiClient for the given API key and model name.
func NewGeminiClient(ctx context.Context, apiKey, modelName string, logger logging.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: creating client: %w", err)
	}
	return &GeminiClient{
		client: client,
		model:  client.GenerativeModel(modelName),
		log:    logger,
	}, nil
}

// Close releases the underlying API client.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// PickCategory asks the model to assign the expense text to exactly one of
// the given category names.
func (c *GeminiClient) PickCategory(ctx context.Context, text string, categories []string) (string, error) {
	prompt := fmt.Sprintf(`Categorize the following expense description:
%s

Assign it to exactly one of the following categories:
%s

Respond in this format:
Category: [Selected Category Name]`, text, strings.Join(categories, ", "))

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: empty response")
	}

	responseText := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	name := extractCategoryFromResponse(responseText, categories)
	if name == "" {
		return "", fmt.Errorf("gemini: no recognizable category in response")
	}

	c.log.WithFields(
		logging.Field{Key: "category", Value: name},
	).Debug("Gemini assigned a category")
	return name, nil
}

// extractCategoryFromResponse parses the model response, preferring the
// structured "Category:" line and falling back to the first known category
// name mentioned anywhere in the text.
func extractCategoryFromResponse(response string, categories []string) string {
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Category:") {
			name := strings.TrimSpace(strings.TrimPrefix(line, "Category:"))
			name = strings.Trim(name, "[]")
			for _, c := range categories {
				if c == name {
					return c
				}
			}
		}
	}

	for _, c := range categories {
		if strings.Contains(response, c) {
			return c
		}
	}
	return ""
}
