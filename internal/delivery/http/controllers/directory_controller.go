package controllers

import (
	"log/slog"
	"net/http"

	"speakerdirectory/internal/delivery/http/helpers"
	"speakerdirectory/internal/domain"
)

type DirectoryController struct {
	Logger  *slog.Logger
	Service domain.DirectoryService
}

func NewDirectoryController(logger *slog.Logger, svc domain.DirectoryService) *DirectoryController {
	return &DirectoryController{
		Logger:  logger,
		Service: svc,
	}
}

// GetData godoc
// @Summary Get the full directory snapshot
// @Description Returns the whole document: all speakers and all pending nominations. The UI re-fetches this after every mutation instead of patching client state.
// @Tags directory
// @Produce json
// @Success 200 {object} domain.Document
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /data [get]
func (c *DirectoryController) GetData(w http.ResponseWriter, r *http.Request) {
	doc, err := c.Service.Snapshot(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONRaw(w, http.StatusOK, doc)
}
