// Package classifier implements the sentiment classification capability
// against the Anthropic Messages API.
package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/pscheid92/moviepulse/internal/domain"
)

const systemPrompt = `You are a binary sentiment classifier for movie reviews.
Classify the review you receive as POSITIVE or NEGATIVE. There is no neutral class;
pick the closer label and express uncertainty through the confidence value.
Respond with exactly one JSON object and nothing else:
{"label": "POSITIVE" or "NEGATIVE", "confidence": <number between 0 and 1>}`

const (
	maxResponseTokens = 64
	// Long reviews are truncated; sentiment is carried by far fewer characters.
	maxReviewChars = 6000
)

// Anthropic classifies review text via the Anthropic Messages API.
// Safe for concurrent use; each Classify call is independent.
type Anthropic struct {
	client anthropic.Client
	model  string
}

// NewAnthropic creates a classifier using the given API key and model.
func NewAnthropic(apiKey, model string) *Anthropic {
	return &Anthropic{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

// Classify returns the sentiment label and confidence for one text.
func (a *Anthropic) Classify(ctx context.Context, text string) (domain.Label, float64, error) {
	message, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: maxResponseTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt, CacheControl: anthropic.NewCacheControlEphemeralParam()},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(truncateRunes(text, maxReviewChars))),
		},
	})
	if err != nil {
		return "", 0, fmt.Errorf("anthropic API error: %w", err)
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			return parseVerdict(block.Text)
		}
	}
	return "", 0, fmt.Errorf("no text content in model response")
}

// parseVerdict extracts label and confidence from the model's JSON reply,
// tolerating markdown code fences and casing drift.
func parseVerdict(raw string) (domain.Label, float64, error) {
	cleaned := stripCodeFence(strings.TrimSpace(raw))

	var payload struct {
		Label      string  `json:"label"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return "", 0, fmt.Errorf("malformed classifier response %q: %w", truncateRunes(raw, 120), err)
	}

	label := domain.Label(strings.ToUpper(strings.TrimSpace(payload.Label)))
	if !label.Valid() {
		return "", 0, fmt.Errorf("classifier returned unknown label %q", payload.Label)
	}

	confidence := payload.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	return label, confidence, nil
}

func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
