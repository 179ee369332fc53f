package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/phrazzld/tutor-api/internal/generation"
	"google.golang.org/genai"
)

// genaiCaller is the production modelCaller backed by google.golang.org/genai.
type genaiCaller struct {
	client *genai.Client
}

// textConfig mirrors the generation settings the service has always used.
func textConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.7),
		TopP:            genai.Ptr[float32](0.95),
		TopK:            genai.Ptr[float32](40),
		MaxOutputTokens: 8192,
		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
			{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
		},
	}
}

func (c *genaiCaller) generateText(ctx context.Context, model, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(prompt), textConfig())
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}

	candidate, err := firstCandidate(resp)
	if err != nil {
		return "", err
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		text.WriteString(part.Text)
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("%w: no text in response", generation.ErrInvalidResponse)
	}
	return text.String(), nil
}

func (c *genaiCaller) generateImage(ctx context.Context, model, prompt string) ([]byte, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(prompt), cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini image call failed: %w", err)
	}

	candidate, err := firstCandidate(resp)
	if err != nil {
		return nil, err
	}

	for _, part := range candidate.Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data, nil
		}
	}
	return nil, generation.ErrNoImageData
}

// firstCandidate validates the response envelope and returns its first
// candidate.
func firstCandidate(resp *genai.GenerateContentResponse) (*genai.Candidate, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}
	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return nil, fmt.Errorf("%w: finish reason safety", generation.ErrContentBlocked)
	}
	if candidate.Content == nil {
		return nil, fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}
	return candidate, nil
}
