// Package itinerary generates day-by-day travel plans through an
// OpenAI-compatible chat-completions API. The base URL is configurable so
// any compatible endpoint works (OpenAI, Gemini's compatibility layer,
// DeepSeek, ...).
package itinerary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/rs/zerolog"
)

// Fallback is returned whenever the upstream call fails or produces no
// text. Callers render it in place of a plan; generation failures never
// become errors.
const Fallback = "Unable to generate itinerary at the moment."

const dateLayout = "2006-01-02"

// Generator implements domain.ItineraryProvider on top of the
// chat-completions API.
type Generator struct {
	client openai.Client
	model  string
}

// New creates a Generator. baseURL may be empty to use the default
// OpenAI endpoint.
func New(apiKey, baseURL, model string) *Generator {
	// A failed generation degrades to Fallback immediately; the SDK's
	// built-in retries would only delay the page.
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Generator{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// Generate asks the model for a markdown itinerary. It always returns
// usable text: any upstream error or empty completion degrades to
// Fallback, logged for diagnostics.
func (g *Generator) Generate(ctx context.Context, source, destination string, start, end time.Time, days int) string {
	prompt := buildPrompt(source, destination, start, end, days)

	completion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).
			Str("model", g.model).
			Str("destination", destination).
			Msg("Itinerary generation failed")
		return Fallback
	}
	if len(completion.Choices) == 0 {
		zerolog.Ctx(ctx).Error().Str("model", g.model).Msg("Itinerary completion had no choices")
		return Fallback
	}

	text := strings.TrimSpace(completion.Choices[0].Message.Content)
	if text == "" {
		zerolog.Ctx(ctx).Warn().Str("model", g.model).Msg("Itinerary completion was empty")
		return Fallback
	}

	return text
}

func buildPrompt(source, destination string, start, end time.Time, days int) string {
	return fmt.Sprintf(`Generate a detailed and practical day-by-day itinerary.
From: %s to %s, dates: %s to %s, total days: %d.

Include:
  - Transportation
  - Sightseeing spots
  - Food recommendations
  - Budget (INR)
  - Travel tips
  - Weather considerations

Format in markdown.`,
		source, destination,
		start.Format(dateLayout), end.Format(dateLayout),
		days,
	)
}
