package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"speakerdirectory/internal/delivery/http/helpers"
	"speakerdirectory/internal/domain"
)

// The suggestion endpoints keep the original {ok, ...} body shape rather
// than the standard envelope: the UI branches on ok and renders error as a
// plain string. Gateway failures degrade to {ok:false}; they never take the
// process down.

type SuggestionController struct {
	Logger  *slog.Logger
	Service domain.SuggestionService
}

func NewSuggestionController(logger *slog.Logger, svc domain.SuggestionService) *SuggestionController {
	return &SuggestionController{
		Logger:  logger,
		Service: svc,
	}
}

// SuggestFailureResponse is the failure body for all suggestion endpoints.
type SuggestFailureResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func (c *SuggestionController) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadGateway
	if errors.Is(err, domain.ErrInvalidInput) {
		status = http.StatusBadRequest
	} else {
		c.Logger.WarnContext(r.Context(), "suggestion upstream failed", "path", r.URL.Path, "err", err)
	}
	helpers.WriteJSONRaw(w, status, SuggestFailureResponse{OK: false, Error: err.Error()})
}

func (c *SuggestionController) decode(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		helpers.WriteJSONRaw(w, http.StatusBadRequest, SuggestFailureResponse{OK: false, Error: "invalid request body"})
		return false
	}
	return true
}

// SuggestTopicsRequest is the request body for POST /suggest-topics.
type SuggestTopicsRequest struct {
	Bio  string `json:"bio"`
	Tags string `json:"tags"`
}

// SuggestTopicsResponse is the success body for POST /suggest-topics.
type SuggestTopicsResponse struct {
	OK    bool     `json:"ok"`
	Ideas []string `json:"ideas"`
}

// SuggestTopics godoc
// @Summary Suggest talk topics from a speaker bio
// @Description Prompts the text-completion upstream for topic ideas. The response is parsed as a JSON array of strings; if the model ignored that instruction the raw text is newline-split and capped at eight entries.
// @Tags suggestions
// @Accept json
// @Produce json
// @Param body body controllers.SuggestTopicsRequest true "Bio and optional tags"
// @Success 200 {object} controllers.SuggestTopicsResponse
// @Failure 400 {object} controllers.SuggestFailureResponse "missing bio"
// @Failure 502 {object} controllers.SuggestFailureResponse "upstream failure"
// @Router /suggest-topics [post]
func (c *SuggestionController) SuggestTopics(w http.ResponseWriter, r *http.Request) {
	var req SuggestTopicsRequest
	if !c.decode(w, r, &req) {
		return
	}

	ideas, err := c.Service.SuggestTopics(r.Context(), req.Bio, req.Tags)
	if err != nil {
		c.writeFailure(w, r, err)
		return
	}
	helpers.WriteJSONRaw(w, http.StatusOK, SuggestTopicsResponse{OK: true, Ideas: ideas})
}

// FindMatchingSpeakersRequest is the request body for POST /find-matching-speakers.
type FindMatchingSpeakersRequest struct {
	EventDescription string `json:"event_description"`
	SpeakerSummary   string `json:"speaker_summary"`
}

// FindMatchingSpeakersResponse is the success body for POST /find-matching-speakers.
type FindMatchingSpeakersResponse struct {
	OK  bool     `json:"ok"`
	IDs []string `json:"ids"`
}

// FindMatchingSpeakers godoc
// @Summary Match speakers to an event description
// @Description Prompts the upstream with the event description and a roster summary; expects a comma-separated id list back and returns the trimmed tokens. The prompt asks for the top three but whatever the model emits is returned.
// @Tags suggestions
// @Accept json
// @Produce json
// @Param body body controllers.FindMatchingSpeakersRequest true "Event description and roster summary"
// @Success 200 {object} controllers.FindMatchingSpeakersResponse
// @Failure 400 {object} controllers.SuggestFailureResponse "missing fields"
// @Failure 502 {object} controllers.SuggestFailureResponse "upstream failure"
// @Router /find-matching-speakers [post]
func (c *SuggestionController) FindMatchingSpeakers(w http.ResponseWriter, r *http.Request) {
	var req FindMatchingSpeakersRequest
	if !c.decode(w, r, &req) {
		return
	}

	ids, err := c.Service.FindMatchingSpeakers(r.Context(), req.EventDescription, req.SpeakerSummary)
	if err != nil {
		c.writeFailure(w, r, err)
		return
	}
	helpers.WriteJSONRaw(w, http.StatusOK, FindMatchingSpeakersResponse{OK: true, IDs: ids})
}

// GenerateEventIdeasRequest is the request body for POST /generate-event-ideas.
type GenerateEventIdeasRequest struct {
	Speaker domain.SpeakerProfile `json:"speaker"`
}

// GenerateEventIdeasResponse is the success body for POST /generate-event-ideas.
type GenerateEventIdeasResponse struct {
	OK    bool   `json:"ok"`
	Ideas string `json:"ideas"`
}

// GenerateEventIdeas godoc
// @Summary Draft event ideas for a speaker
// @Description Prompts the upstream with the speaker's name and topics and returns the raw text for display; no structured parsing.
// @Tags suggestions
// @Accept json
// @Produce json
// @Param body body controllers.GenerateEventIdeasRequest true "Speaker profile"
// @Success 200 {object} controllers.GenerateEventIdeasResponse
// @Failure 400 {object} controllers.SuggestFailureResponse "missing speaker profile"
// @Failure 502 {object} controllers.SuggestFailureResponse "upstream failure"
// @Router /generate-event-ideas [post]
func (c *SuggestionController) GenerateEventIdeas(w http.ResponseWriter, r *http.Request) {
	var req GenerateEventIdeasRequest
	if !c.decode(w, r, &req) {
		return
	}

	ideas, err := c.Service.GenerateEventIdeas(r.Context(), req.Speaker)
	if err != nil {
		c.writeFailure(w, r, err)
		return
	}
	helpers.WriteJSONRaw(w, http.StatusOK, GenerateEventIdeasResponse{OK: true, Ideas: ideas})
}
