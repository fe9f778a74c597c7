package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speakerdirectory/internal/delivery/http/helpers"
	"speakerdirectory/internal/domain"
)

func TestDirectoryController_GetData(t *testing.T) {
	svc := &mockDirectoryService{doc: &domain.Document{
		Speakers:    []domain.Speaker{{ID: "sp-1", Name: "Aisha Tan"}},
		Nominations: []domain.Nomination{{ID: "nom-1", Name: "Dana Osei"}},
	}}
	c := NewDirectoryController(testLogger(), svc)

	rec := httptest.NewRecorder()
	c.GetData(rec, httptest.NewRequest(http.MethodGet, "/data", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got domain.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Speakers, 1)
	require.Len(t, got.Nominations, 1)
	assert.Equal(t, "sp-1", got.Speakers[0].ID)
	assert.Equal(t, "nom-1", got.Nominations[0].ID)
}

func TestDirectoryController_GetData_StoreFailure(t *testing.T) {
	svc := &mockDirectoryService{err: fmt.Errorf("read document: %w", domain.ErrReadFailed)}
	c := NewDirectoryController(testLogger(), svc)

	rec := httptest.NewRecorder()
	c.GetData(rec, httptest.NewRequest(http.MethodGet, "/data", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp helpers.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, helpers.ErrCodeInternalError, resp.Error.Code)
}
