package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"speakerdirectory/internal/delivery/http/helpers"
	"speakerdirectory/internal/domain"
)

type NominationController struct {
	Logger  *slog.Logger
	Service domain.NominationService
}

func NewNominationController(logger *slog.Logger, svc domain.NominationService) *NominationController {
	return &NominationController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Submit a speaker nomination
// @Description Public endpoint: anyone can propose a new speaker. Name and email are required; id and nominated_at are assigned server-side.
// @Tags nominations
// @Accept json
// @Produce json
// @Param body body domain.NominationInput true "Nomination fields"
// @Success 201 {object} domain.Nomination
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (missing name or email)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /nominations [post]
func (c *NominationController) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.NominationInput
	if !helpers.DecodeAndValidate(w, r, &input) {
		return
	}

	nom, err := c.Service.Create(r.Context(), input)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONRaw(w, http.StatusCreated, nom)
}

// NominationActionRequest is the request body for approve and reject.
type NominationActionRequest struct {
	NominationID string `json:"nomination_id"`
}

// Validate implements helpers.Validator.
func (r *NominationActionRequest) Validate() []string {
	if strings.TrimSpace(r.NominationID) == "" {
		return []string{"nomination_id is required"}
	}
	return nil
}

// ApproveResponse is the success body for POST /nominations/approve.
type ApproveResponse struct {
	Message    string          `json:"message"`
	NewSpeaker *domain.Speaker `json:"new_speaker"`
}

// Approve godoc
// @Summary Approve a nomination
// @Description Synthesizes a new speaker from the nomination (comma-joined topics and formats become trimmed token lists), appends it to the directory, and removes the nomination in a single document write.
// @Tags nominations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.NominationActionRequest true "Nomination id"
// @Success 200 {object} controllers.ApproveResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /nominations/approve [post]
func (c *NominationController) Approve(w http.ResponseWriter, r *http.Request) {
	var req NominationActionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	speaker, err := c.Service.Approve(r.Context(), req.NominationID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONRaw(w, http.StatusOK, ApproveResponse{Message: "Nomination approved", NewSpeaker: speaker})
}

// RejectResponse is the success body for POST /nominations/reject.
type RejectResponse struct {
	Message string `json:"message"`
}

// Reject godoc
// @Summary Reject a nomination
// @Description Removes the nomination with no further effect.
// @Tags nominations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.NominationActionRequest true "Nomination id"
// @Success 200 {object} controllers.RejectResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /nominations/reject [post]
func (c *NominationController) Reject(w http.ResponseWriter, r *http.Request) {
	var req NominationActionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	if err := c.Service.Reject(r.Context(), req.NominationID); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONRaw(w, http.StatusOK, RejectResponse{Message: "Nomination rejected"})
}
