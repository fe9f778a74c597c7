package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speakerdirectory/internal/domain"
)

func TestSuggestionService_SuggestTopics_JSONResponse(t *testing.T) {
	gen := &mockGenerator{text: `["Topic One", "Topic Two"]`}
	svc := NewSuggestionService(gen)

	topics, err := svc.SuggestTopics(context.Background(), "20 years in logistics", "supply chain")
	require.NoError(t, err)
	assert.Equal(t, []string{"Topic One", "Topic Two"}, topics)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "20 years in logistics")
	assert.Contains(t, gen.prompts[0], "supply chain")
}

func TestSuggestionService_SuggestTopics_PlainTextFallback(t *testing.T) {
	gen := &mockGenerator{text: "Topic One\n\nTopic Two\nTopic Three\nT4\nT5\nT6\nT7\nT8\nT9\nT10"}
	svc := NewSuggestionService(gen)

	topics, err := svc.SuggestTopics(context.Background(), "bio", "")
	require.NoError(t, err)
	// Blank lines skipped, capped at eight.
	assert.Len(t, topics, 8)
	assert.Equal(t, "Topic One", topics[0])
	assert.Equal(t, "Topic Two", topics[1])
}

func TestSuggestionService_SuggestTopics_EmptyTagsDefault(t *testing.T) {
	gen := &mockGenerator{text: `[]`}
	svc := NewSuggestionService(gen)

	_, err := svc.SuggestTopics(context.Background(), "bio", "   ")
	require.NoError(t, err)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "tags: none")
}

func TestSuggestionService_SuggestTopics_Errors(t *testing.T) {
	svc := NewSuggestionService(&mockGenerator{})
	_, err := svc.SuggestTopics(context.Background(), "  ", "tags")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	upstream := errors.New("upstream timeout")
	svc = NewSuggestionService(&mockGenerator{err: upstream})
	_, err = svc.SuggestTopics(context.Background(), "bio", "")
	assert.ErrorIs(t, err, upstream)
}

func TestSuggestionService_FindMatchingSpeakers(t *testing.T) {
	gen := &mockGenerator{text: "sp-1, sp-7 ,sp-9"}
	svc := NewSuggestionService(gen)

	ids, err := svc.FindMatchingSpeakers(context.Background(), "AI conference keynote", "sp-1: Aisha, sp-7: Bruno")
	require.NoError(t, err)
	assert.Equal(t, []string{"sp-1", "sp-7", "sp-9"}, ids)
}

func TestSuggestionService_FindMatchingSpeakers_Validation(t *testing.T) {
	svc := NewSuggestionService(&mockGenerator{})

	_, err := svc.FindMatchingSpeakers(context.Background(), "", "summary")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.FindMatchingSpeakers(context.Background(), "event", " ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSuggestionService_GenerateEventIdeas(t *testing.T) {
	gen := &mockGenerator{text: "Three event titles and a description."}
	svc := NewSuggestionService(gen)

	out, err := svc.GenerateEventIdeas(context.Background(), domain.SpeakerProfile{
		Name:   "Aisha Tan",
		Topics: []string{"Leadership", "Public Speaking"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Three event titles and a description.", out)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Aisha Tan")
	assert.Contains(t, gen.prompts[0], "Leadership, Public Speaking")

	_, err = svc.GenerateEventIdeas(context.Background(), domain.SpeakerProfile{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
