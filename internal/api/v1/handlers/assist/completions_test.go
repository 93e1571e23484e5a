package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/YazanYahya/codex/internal/services/completion"
	"github.com/YazanYahya/codex/internal/services/prompt"
	"github.com/YazanYahya/codex/internal/services/suggest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompletion struct {
	response string
	err      error
}

func (s *stubCompletion) Send(_ context.Context, _ prompt.Pair) (string, error) {
	return s.response, s.err
}

func newSuggestService(t *testing.T, remote *stubCompletion) *suggest.Service {
	t.Helper()
	svc, err := suggest.NewService(remote)
	require.NoError(t, err)
	t.Cleanup(svc.Close)
	return svc
}

func TestHandleCompletionSuggestions(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		remote         *stubCompletion
		expectedStatus int
		expectedCount  int
	}{
		{
			name:           "Valid request with candidates",
			requestBody:    map[string]string{"prefix": "const x =", "language": "TypeScript"},
			remote:         &stubCompletion{response: `["1", "2"]`},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:           "Missing prefix",
			requestBody:    map[string]string{"language": "Go"},
			remote:         &stubCompletion{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Malformed JSON",
			requestBody:    "not json",
			remote:         &stubCompletion{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Upstream transport failure",
			requestBody:    map[string]string{"prefix": "x"},
			remote:         &stubCompletion{err: &completion.TransportError{StatusCode: 500, Status: "upstream down"}},
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body bytes.Buffer
			if str, ok := tt.requestBody.(string); ok {
				body.WriteString(str)
			} else {
				require.NoError(t, json.NewEncoder(&body).Encode(tt.requestBody))
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/assist/completions", &body)
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			HandleCompletionSuggestions(newSuggestService(t, tt.remote), w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp CompletionResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Len(t, resp.Candidates, tt.expectedCount)
			}
		})
	}
}
