package llm

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"
)

// GeminiConfig holds the Vertex AI connection settings for the generator.
type GeminiConfig struct {
	ProjectID string
	Region    string
	Model     string
}

// GeminiGenerator is a Generator backed by a Gemini model on Vertex AI.
// The generation knobs (temperature, nucleus sampling, token limit) are fixed
// on the model at construction time.
type GeminiGenerator struct {
	model      *genai.GenerativeModel
	baseClient *genai.Client
}

// NewGeminiGenerator creates a generator bound to one pre-configured model.
func NewGeminiGenerator(ctx context.Context, cfg GeminiConfig) (*GeminiGenerator, error) {
	if cfg.ProjectID == "" || cfg.Region == "" {
		return nil, fmt.Errorf("NewGeminiGenerator: projectID and region cannot be empty")
	}

	baseClient, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Region)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	model := baseClient.GenerativeModel(cfg.Model)
	model.GenerationConfig = genai.GenerationConfig{
		Temperature:     genai.Ptr[float32](0.7),
		TopP:            genai.Ptr[float32](0.95),
		TopK:            genai.Ptr[int32](40),
		MaxOutputTokens: genai.Ptr[int32](8192),
	}

	return &GeminiGenerator{model: model, baseClient: baseClient}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content from gemini: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return "", fmt.Errorf("gemini response contained no text content")
	}
	return text, nil
}

func (g *GeminiGenerator) Close() error {
	if g.baseClient != nil {
		return g.baseClient.Close()
	}
	return nil
}

// extractText concatenates all text parts of the first candidate and strips
// surrounding whitespace. Non-text parts are ignored.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return strings.TrimSpace(b.String())
}
