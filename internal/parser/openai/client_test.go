package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumely/internal/config"
	"resumely/internal/parser"
	"resumely/internal/port"
)

func testConfig() *config.AIConfig {
	return &config.AIConfig{
		Provider:    "openai",
		APIKey:      "test-key",
		Model:       "gpt-4o-mini",
		TimeoutSecs: 5,
	}
}

func completionRequest() port.CompletionRequest {
	return port.CompletionRequest{
		Temperature: 0.1,
		JSONMode:    true,
		Messages: []port.Message{
			{Role: port.RoleSystem, Content: "extract"},
			{Role: port.RoleUser, Content: "resume text"},
		},
	}
}

func TestCompleteSendsExpectedRequest(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": `{"skills":["Go"]}`}},
			},
		})
	}))
	defer server.Close()

	client := NewClientWithEndpoint(testConfig(), server.URL)
	out, err := client.Complete(context.Background(), completionRequest())

	require.NoError(t, err)
	assert.Equal(t, `{"skills":["Go"]}`, out)

	assert.Equal(t, "gpt-4o-mini", captured["model"])
	assert.InDelta(t, 0.1, captured["temperature"], 0.001)
	rf, ok := captured["response_format"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "json_object", rf["type"])
	messages, ok := captured["messages"].([]interface{})
	require.True(t, ok)
	require.Len(t, messages, 2)
	first := messages[0].(map[string]interface{})
	assert.Equal(t, "system", first["role"])
}

func TestCompleteOmitsResponseFormatWithoutJSONMode(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "ok"}},
			},
		})
	}))
	defer server.Close()

	req := completionRequest()
	req.JSONMode = false

	client := NewClientWithEndpoint(testConfig(), server.URL)
	_, err := client.Complete(context.Background(), req)

	require.NoError(t, err)
	assert.NotContains(t, captured, "response_format")
}

func TestCompleteRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limit"}}`))
	}))
	defer server.Close()

	client := NewClientWithEndpoint(testConfig(), server.URL)
	_, err := client.Complete(context.Background(), completionRequest())

	var rlErr *parser.RateLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, "openai", rlErr.Provider)
	assert.Equal(t, float64(30), rlErr.RetryAfter.Seconds())
}

func TestCompleteServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer server.Close()

	client := NewClientWithEndpoint(testConfig(), server.URL)
	_, err := client.Complete(context.Background(), completionRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestCompleteEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewClientWithEndpoint(testConfig(), server.URL)
	_, err := client.Complete(context.Background(), completionRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestCompleteTruncatedOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{"},"finish_reason":"length"}]}`))
	}))
	defer server.Close()

	client := NewClientWithEndpoint(testConfig(), server.URL)
	_, err := client.Complete(context.Background(), completionRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "finish_reason: length")
}
