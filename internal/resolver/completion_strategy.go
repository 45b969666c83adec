package resolver

import (
	"context"
	"fmt"

	"locator-api/internal/completion"
	"locator-api/internal/models"
	"locator-api/internal/validator"
)

// systemPrompt instructs the model to emit nothing but a canonical-schema
// JSON object. Streets are inferred rather than omitted, with confidence
// lowered to match.
const systemPrompt = `You are a HIGHLY ACCURATE Philippine address normalization engine.

STRICT RULES:
- Return ONLY valid JSON.
- Do NOT explain anything.
- No markdown.
- No extra text.
- All fields must exist.
- country must ALWAYS be "Philippines".
- zip_code must be a 4-digit string.
- confidence must be an integer 0-100.
- address_type must be one of:
  "street_address", "landmark", "area"

If the exact street is unknown, infer the best possible.
If the postal code is unknown, intelligently infer it from the city.
If uncertain, lower the confidence.

Required JSON structure:

{
"full_address": "...",
"street": "...",
"city": "...",
"province": "...",
"country": "Philippines",
"zip_code": "####",
"latitude": null,
"longitude": null,
"confidence": 0,
"address_type": "street_address"
}`

// CompletionStrategy resolves queries through the generative-completion
// capability. Any request or parse failure is a "no result"; the strategy
// never surfaces an invalid record because every parsed mapping passes
// through the validator.
type CompletionStrategy struct {
	client completion.Client
}

// NewCompletionStrategy wraps a completion client as a Strategy.
func NewCompletionStrategy(client completion.Client) *CompletionStrategy {
	return &CompletionStrategy{client: client}
}

// Name implements Strategy.
func (s *CompletionStrategy) Name() string { return "completion" }

// Available implements Strategy. An unconfigured client means no network
// attempt is ever made.
func (s *CompletionStrategy) Available() bool { return s.client.Configured() }

// Resolve implements Strategy.
func (s *CompletionStrategy) Resolve(ctx context.Context, query string) (*models.Address, error) {
	text, err := s.client.Complete(ctx, systemPrompt,
		fmt.Sprintf("Normalize this Philippine address query: %s", query))
	if err != nil {
		return nil, fmt.Errorf("resolver: completion request: %w", err)
	}

	raw, ok := completion.ExtractObject(text)
	if !ok {
		return nil, nil
	}

	addr := validator.EchoQuery(validator.FromMap(raw), query)
	return &addr, nil
}
