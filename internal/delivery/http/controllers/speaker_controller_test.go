package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speakerdirectory/internal/delivery/http/helpers"
	"speakerdirectory/internal/domain"
)

func newSpeakerRouter(svc domain.SpeakerService) *http.ServeMux {
	c := NewSpeakerController(testLogger(), svc)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /speakers", c.List)
	mux.HandleFunc("POST /speakers", c.ReplaceAll)
	mux.HandleFunc("PUT /speakers/{speakerID}", c.Update)
	mux.HandleFunc("DELETE /speakers/{speakerID}", c.Delete)
	mux.HandleFunc("POST /speakers/review", c.AddReview)
	return mux
}

func TestSpeakerController_List(t *testing.T) {
	svc := &mockSpeakerService{speakers: []domain.Speaker{{ID: "sp-1", Name: "Aisha Tan"}}}
	rec := httptest.NewRecorder()
	newSpeakerRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/speakers", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []domain.Speaker
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "sp-1", got[0].ID)
}

func TestSpeakerController_List_EmptyIsArray(t *testing.T) {
	svc := &mockSpeakerService{}
	rec := httptest.NewRecorder()
	newSpeakerRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/speakers", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestSpeakerController_List_StoreFailure(t *testing.T) {
	svc := &mockSpeakerService{err: fmt.Errorf("read document: %w", domain.ErrReadFailed)}
	rec := httptest.NewRecorder()
	newSpeakerRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/speakers", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp helpers.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, helpers.ErrCodeInternalError, resp.Error.Code)
}

func TestSpeakerController_ReplaceAll(t *testing.T) {
	svc := &mockSpeakerService{}
	body := `[{"id":"sp-1","name":"Aisha Tan","type":"Member","fee":"No Fee"}]`
	rec := httptest.NewRecorder()
	newSpeakerRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/speakers", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, svc.replacedWith, 1)
	assert.Equal(t, "sp-1", svc.replacedWith[0].ID)
	assert.JSONEq(t, `{"message":"Speakers updated"}`, rec.Body.String())
}

func TestSpeakerController_ReplaceAll_NotAnArray(t *testing.T) {
	svc := &mockSpeakerService{}
	rec := httptest.NewRecorder()
	newSpeakerRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/speakers", strings.NewReader(`{"id":"sp-1"}`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.replacedWith)
}

func TestSpeakerController_Update(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
	}{
		{
			name:       "id taken from path when body omits it",
			path:       "/speakers/sp-1",
			body:       `{"name":"Aisha Tan"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "matching body id",
			path:       "/speakers/sp-1",
			body:       `{"id":"sp-1","name":"Aisha Tan"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "mismatched body id",
			path:       "/speakers/sp-1",
			body:       `{"id":"sp-2","name":"Aisha Tan"}`,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockSpeakerService{}
			rec := httptest.NewRecorder()
			newSpeakerRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPut, tt.path, strings.NewReader(tt.body)))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				require.NotNil(t, svc.updatedWith)
				assert.Equal(t, "sp-1", svc.updatedWith.ID)
			}
		})
	}
}

func TestSpeakerController_Update_NotFound(t *testing.T) {
	svc := &mockSpeakerService{err: fmt.Errorf("speaker sp-404: %w", domain.ErrNotFound)}
	rec := httptest.NewRecorder()
	newSpeakerRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/speakers/sp-404", strings.NewReader(`{"id":"sp-404"}`)))

	require.Equal(t, http.StatusNotFound, rec.Code)
	var resp helpers.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, helpers.ErrCodeNotFound, resp.Error.Code)
}

func TestSpeakerController_Delete(t *testing.T) {
	svc := &mockSpeakerService{}
	rec := httptest.NewRecorder()
	newSpeakerRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/speakers/sp-1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sp-1", svc.deletedID)

	var resp helpers.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.Error)
}

func TestSpeakerController_AddReview(t *testing.T) {
	svc := &mockSpeakerService{speaker: &domain.Speaker{
		ID:     "sp-1",
		Rating: domain.Rating{Avg: 4, Count: 1},
	}}
	body := `{"speaker_id":"sp-1","review":{"by":"Bruno","rating":4,"comment":"great","rater_chapter_id":"ch-9"}}`
	rec := httptest.NewRecorder()
	newSpeakerRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/speakers/review", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sp-1", svc.reviewedID)
	assert.Equal(t, "Bruno", svc.review.By)

	var resp AddReviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Review added", resp.Message)
	require.NotNil(t, resp.Speaker)
	assert.Equal(t, 1, resp.Speaker.Rating.Count)
}

func TestSpeakerController_AddReview_MissingFields(t *testing.T) {
	svc := &mockSpeakerService{}
	rec := httptest.NewRecorder()
	newSpeakerRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/speakers/review", strings.NewReader(`{"speaker_id":""}`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.reviewedID)
}
