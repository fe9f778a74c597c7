package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"speakerdirectory/internal/domain"
)

const maxSuggestedTopics = 8

type suggestionService struct {
	generator domain.TextGenerator
}

// NewSuggestionService creates a SuggestionService on top of the given
// text generator.
func NewSuggestionService(generator domain.TextGenerator) domain.SuggestionService {
	return &suggestionService{generator: generator}
}

func (s *suggestionService) SuggestTopics(ctx context.Context, bio, tags string) ([]string, error) {
	if strings.TrimSpace(bio) == "" {
		return nil, fmt.Errorf("%w: bio is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(tags) == "" {
		tags = "none"
	}

	prompt := fmt.Sprintf(
		"Suggest %d concise talk/workshop topics for chapter audiences based on this speaker bio: %s.\nReturn as a JSON array of strings. Consider tags: %s.",
		maxSuggestedTopics, bio, tags,
	)
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("suggest topics: %w", err)
	}

	var topics []string
	if err := json.Unmarshal([]byte(text), &topics); err == nil {
		return topics, nil
	}

	// The model ignored the JSON instruction; degrade to one topic per
	// non-empty line, capped.
	topics = topics[:0]
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		topics = append(topics, line)
		if len(topics) == maxSuggestedTopics {
			break
		}
	}
	return topics, nil
}

func (s *suggestionService) FindMatchingSpeakers(ctx context.Context, eventDescription, speakerSummary string) ([]string, error) {
	if strings.TrimSpace(eventDescription) == "" || strings.TrimSpace(speakerSummary) == "" {
		return nil, fmt.Errorf("%w: event description and speaker summary are required", domain.ErrInvalidInput)
	}

	prompt := fmt.Sprintf(
		"Based on the event description: %q, and the following speaker list:\n%s\nReturn only the comma-separated IDs of the top 3 matching speakers.",
		eventDescription, speakerSummary,
	)
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("find matching speakers: %w", err)
	}

	ids := strings.Split(text, ",")
	for i, id := range ids {
		ids[i] = strings.TrimSpace(id)
	}
	return ids, nil
}

func (s *suggestionService) GenerateEventIdeas(ctx context.Context, profile domain.SpeakerProfile) (string, error) {
	if strings.TrimSpace(profile.Name) == "" {
		return "", fmt.Errorf("%w: speaker profile is required", domain.ErrInvalidInput)
	}

	prompt := fmt.Sprintf(
		"Based on the speaker profile of %s who is an expert in %s, generate three potential event titles, a short event description, and three sample Q&A questions.",
		profile.Name, strings.Join(profile.Topics, ", "),
	)
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate event ideas: %w", err)
	}
	return text, nil
}
