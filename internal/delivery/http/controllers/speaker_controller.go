package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"speakerdirectory/internal/delivery/http/helpers"
	"speakerdirectory/internal/domain"
)

type SpeakerController struct {
	Logger  *slog.Logger
	Service domain.SpeakerService
}

func NewSpeakerController(logger *slog.Logger, svc domain.SpeakerService) *SpeakerController {
	return &SpeakerController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List all speakers
// @Description Returns every speaker verbatim. No pagination and no server-side filtering; search and type filtering happen client-side over this list.
// @Tags speakers
// @Produce json
// @Success 200 {array} domain.Speaker
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers [get]
func (c *SpeakerController) List(w http.ResponseWriter, r *http.Request) {
	speakers, err := c.Service.List(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	if speakers == nil {
		speakers = []domain.Speaker{}
	}
	helpers.WriteJSONRaw(w, http.StatusOK, speakers)
}

// ReplaceAllResponse is the success body for POST /speakers.
type ReplaceAllResponse struct {
	Message string `json:"message"`
}

// ReplaceAll godoc
// @Summary Replace the whole speakers collection
// @Description Admin bulk import: the body must be a JSON array of speakers which replaces the collection wholesale. Nominations are untouched.
// @Tags speakers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body []domain.Speaker true "Full speakers array"
// @Success 200 {object} controllers.ReplaceAllResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (body is not an array)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers [post]
func (c *SpeakerController) ReplaceAll(w http.ResponseWriter, r *http.Request) {
	var speakers []domain.Speaker
	if !helpers.DecodeAndValidate(w, r, &speakers) {
		return
	}
	if err := c.Service.ReplaceAll(r.Context(), speakers); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONRaw(w, http.StatusOK, ReplaceAllResponse{Message: "Speakers updated"})
}

// UpdateSuccessResponse is the success envelope for PUT /speakers/{speakerID}.
type UpdateSuccessResponse struct {
	Data  *domain.Speaker   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// Update godoc
// @Summary Replace a single speaker record
// @Description Full replace of the record matching the path id; no partial-patch semantics.
// @Tags speakers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param speakerID path string true "Speaker ID"
// @Param body body domain.Speaker true "Full speaker record"
// @Success 200 {object} controllers.UpdateSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers/{speakerID} [put]
func (c *SpeakerController) Update(w http.ResponseWriter, r *http.Request) {
	speakerID := r.PathValue("speakerID")
	if speakerID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing speakerID")
		return
	}

	var speaker domain.Speaker
	if !helpers.DecodeAndValidate(w, r, &speaker) {
		return
	}
	if speaker.ID == "" {
		speaker.ID = speakerID
	}
	if speaker.ID != speakerID {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "body id does not match path id")
		return
	}

	updated, err := c.Service.Update(r.Context(), speaker)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a speaker
// @Description Removes the speaker with the given id. Deleting an unknown id fails with 404.
// @Tags speakers
// @Produce json
// @Security BearerAuth
// @Param speakerID path string true "Speaker ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers/{speakerID} [delete]
func (c *SpeakerController) Delete(w http.ResponseWriter, r *http.Request) {
	speakerID := r.PathValue("speakerID")
	if speakerID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing speakerID")
		return
	}
	if err := c.Service.Delete(r.Context(), speakerID); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "Speaker deleted"})
}

// AddReviewRequest is the request body for POST /speakers/review.
type AddReviewRequest struct {
	SpeakerID string        `json:"speaker_id"`
	Review    domain.Review `json:"review"`
}

// Validate implements helpers.Validator.
func (r *AddReviewRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.SpeakerID) == "" {
		errs = append(errs, "speaker_id is required")
	}
	if r.Review == (domain.Review{}) {
		errs = append(errs, "review is required")
	}
	return errs
}

// AddReviewResponse is the success body for POST /speakers/review.
type AddReviewResponse struct {
	Message string          `json:"message"`
	Speaker *domain.Speaker `json:"speaker"`
}

// AddReview godoc
// @Summary Submit a review for a speaker
// @Description Stamps the review date server-side, prepends it to the speaker's reviews, and recomputes the average rating. Reviews are immutable once created.
// @Tags speakers
// @Accept json
// @Produce json
// @Param body body controllers.AddReviewRequest true "Speaker id and review"
// @Success 200 {object} controllers.AddReviewResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /speakers/review [post]
func (c *SpeakerController) AddReview(w http.ResponseWriter, r *http.Request) {
	var req AddReviewRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	speaker, err := c.Service.AddReview(r.Context(), req.SpeakerID, req.Review)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONRaw(w, http.StatusOK, AddReviewResponse{Message: "Review added", Speaker: speaker})
}
