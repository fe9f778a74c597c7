package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	subject string
	err     error
}

func (f *fakeVerifier) Verify(token string) (string, error) {
	return f.subject, f.err
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		verifier   *fakeVerifier
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "valid token",
			authHeader: "Bearer good-token",
			verifier:   &fakeVerifier{subject: "directoryadmin"},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "missing header",
			verifier:   &fakeVerifier{subject: "directoryadmin"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			authHeader: "Basic abc",
			verifier:   &fakeVerifier{subject: "directoryadmin"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty token",
			authHeader: "Bearer   ",
			verifier:   &fakeVerifier{subject: "directoryadmin"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer bad-token",
			verifier:   &fakeVerifier{err: fmt.Errorf("invalid token")},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			handler := RequireAdmin(tt.verifier)(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				subject, ok := AdminFromContext(r.Context())
				require.True(t, ok)
				require.Equal(t, "directoryadmin", subject)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/nominations/approve", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			require.Equal(t, tt.wantNext, nextCalled)
		})
	}
}
