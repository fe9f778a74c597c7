package domain

import "context"

// TextGenerator is the port for the external text-completion upstream.
// Implementations return the raw model text for a single prompt; failures
// wrap ErrGateway.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// SpeakerProfile is the subset of a speaker the idea generator prompts with.
type SpeakerProfile struct {
	Name   string   `json:"name"`
	Topics []string `json:"topics"`
}

// SuggestionService builds prompts from caller-supplied fields, forwards
// them to the text generator, and best-effort-parses the responses. A
// malformed or adversarial model response must never crash a caller; each
// operation degrades to the documented fallback instead.
type SuggestionService interface {
	// SuggestTopics parses the response as a JSON array of strings; on parse
	// failure it falls back to newline-splitting the raw text, dropping
	// blank lines, and keeping at most eight entries.
	SuggestTopics(ctx context.Context, bio, tags string) ([]string, error)
	// FindMatchingSpeakers splits the response on commas and trims each
	// token. The prompt asks for the top three but nothing is enforced.
	FindMatchingSpeakers(ctx context.Context, eventDescription, speakerSummary string) ([]string, error)
	// GenerateEventIdeas returns the raw model text for display.
	GenerateEventIdeas(ctx context.Context, profile SpeakerProfile) (string, error)
}
