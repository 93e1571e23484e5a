package completion

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	openaiinfra "github.com/YazanYahya/codex/internal/infrastructure/openai"
	"github.com/YazanYahya/codex/internal/services/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sashabaranov/go-openai"
)

const testModel = "test-model"

func newTestService(t *testing.T, handler http.HandlerFunc) (*Implementation, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = server.URL + "/v1"
	client := openai.NewClientWithConfig(cfg)

	svc, err := NewService(openaiinfra.NewServiceWithClient(client, testModel), 5*time.Second)
	require.NoError(t, err)
	return svc, server
}

func TestSendReturnsFirstChoiceContent(t *testing.T) {
	var gotReq openai.ChatCompletionRequest
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{
					Role:    openai.ChatMessageRoleAssistant,
					Content: "Here is your answer.",
				}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	})

	text, err := svc.Send(context.Background(), prompt.Pair{System: "sys", User: "usr"})
	require.NoError(t, err)
	assert.Equal(t, "Here is your answer.", text)

	// Exactly a two-message (system, user) exchange with the configured model.
	assert.Equal(t, testModel, gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, gotReq.Messages[0].Role)
	assert.Equal(t, "sys", gotReq.Messages[0].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, gotReq.Messages[1].Role)
	assert.Equal(t, "usr", gotReq.Messages[1].Content)
}

func TestSendEmptyChoicesFallsBack(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openai.ChatCompletionResponse{})
	})

	text, err := svc.Send(context.Background(), prompt.Pair{System: "s", User: "u"})

	// Missing content is not an error; the literal fallback is returned.
	require.NoError(t, err)
	assert.Equal(t, EmptyContentFallback, text)
}

func TestSendEmptyContentFallsBack(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	})

	text, err := svc.Send(context.Background(), prompt.Pair{System: "s", User: "u"})
	require.NoError(t, err)
	assert.Equal(t, EmptyContentFallback, text)
}

func TestSendNonSuccessStatusIsTransportError(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "invalid api key", "type": "invalid_request_error"}}`))
	})

	_, err := svc.Send(context.Background(), prompt.Pair{System: "s", User: "u"})
	require.Error(t, err)
	assert.True(t, IsTransport(err), "expected a transport error, got %v", err)

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.StatusUnauthorized, te.StatusCode)
}

func TestSendNetworkFailureIsNetworkError(t *testing.T) {
	svc, server := newTestService(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	_, err := svc.Send(context.Background(), prompt.Pair{System: "s", User: "u"})
	require.Error(t, err)
	assert.False(t, IsTransport(err))

	var ne *NetworkError
	assert.ErrorAs(t, err, &ne)
}

func TestSendHonoursCancellation(t *testing.T) {
	started := make(chan struct{})
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so net/http starts its background read; otherwise
		// the client disconnect is never observed, r.Context() never fires,
		// and the httptest server's Close deadlocks in cleanup.
		io.Copy(io.Discard, r.Body)
		close(started)
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := svc.Send(ctx, prompt.Pair{System: "s", User: "u"})
	require.Error(t, err)
}
