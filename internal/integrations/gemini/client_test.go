package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"portfolio-assistant/internal/domain"
)

// ---------------------------------------------------------------------------
// generateURL helper
// ---------------------------------------------------------------------------

func TestGenerateURL(t *testing.T) {
	cases := []struct {
		base string
		want string
	}{
		{"https://generativelanguage.googleapis.com", "https://generativelanguage.googleapis.com/v1beta/models/m:generateContent"},
		{"https://generativelanguage.googleapis.com/", "https://generativelanguage.googleapis.com/v1beta/models/m:generateContent"},
		{"http://localhost:8080/v1beta", "http://localhost:8080/v1beta/models/m:generateContent"},
		{"", "https://generativelanguage.googleapis.com/v1beta/models/m:generateContent"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, generateURL(tc.base, "m"), "base=%q", tc.base)
	}
}

// ---------------------------------------------------------------------------
// NewClient
// ---------------------------------------------------------------------------

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient()
	require.Equal(t, defaultBaseURL, c.baseURL)
	require.Equal(t, DefaultModel, c.Model())
	require.NotNil(t, c.httpClient)
}

func TestNewClient_BlankModelKeepsDefault(t *testing.T) {
	c := NewClient(WithModel("  "))
	require.Equal(t, DefaultModel, c.Model())

	c = NewClient(WithModel("gemini-pro"))
	require.Equal(t, "gemini-pro", c.Model())
}

// ---------------------------------------------------------------------------
// Client.Generate
// ---------------------------------------------------------------------------

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	return NewClient(
		WithBaseURL(srv.URL),
		WithModel("gemini-mock"),
		WithHTTPClient(&http.Client{Timeout: 2 * time.Second}),
	)
}

func testRequest() domain.GenerateRequest {
	return domain.GenerateRequest{
		Instructions:    "You are a portfolio assistant.",
		Message:         "hi",
		MaxOutputTokens: 1200,
		Temperature:     0.3,
	}
}

func TestClient_Generate_HappyPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1beta/models/gemini-mock:generateContent", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "key-1", r.Header.Get("x-goog-api-key"))

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var body generateRequest
		require.NoError(t, json.Unmarshal(raw, &body))
		require.NotNil(t, body.SystemInstruction)
		require.Equal(t, "You are a portfolio assistant.", body.SystemInstruction.Parts[0].Text)
		require.Len(t, body.Contents, 1)
		require.Equal(t, "user", body.Contents[0].Role)
		require.Equal(t, "hi", body.Contents[0].Parts[0].Text)
		require.Equal(t, 1200, body.GenerationConfig.MaxOutputTokens)
		require.InDelta(t, 0.3, body.GenerationConfig.Temperature, 1e-9)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates": [{
				"content": {"role": "model", "parts": [{"text": "Hello "}, {"text": "from mock"}]},
				"finishReason": "STOP"
			}]
		}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	text, err := c.Generate(context.Background(), "key-1", testRequest())
	require.NoError(t, err)
	require.Equal(t, "Hello from mock", text)
}

func TestClient_Generate_EmptyKey(t *testing.T) {
	_, err := NewClient().Generate(context.Background(), " ", testRequest())
	require.Error(t, err)
	require.Contains(t, err.Error(), "api key")
}

func TestClient_Generate_429(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota","status":"RESOURCE_EXHAUSTED"}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).Generate(context.Background(), "key-1", testRequest())
	require.Error(t, err)
	require.Contains(t, err.Error(), "429")

	var statusErr *HTTPStatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, http.StatusTooManyRequests, statusErr.HTTPStatusCode())
	require.Equal(t, "RESOURCE_EXHAUSTED", statusErr.Status)
	require.True(t, statusErr.RateLimited())
}

func TestClient_Generate_ResourceExhaustedWithoutStatusCode(t *testing.T) {
	err := &HTTPStatusError{StatusCode: http.StatusServiceUnavailable, Status: "RESOURCE_EXHAUSTED"}
	require.True(t, err.RateLimited())
}

func TestClient_Generate_403(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).Generate(context.Background(), "bad", testRequest())
	require.Error(t, err)
	var statusErr *HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	require.False(t, statusErr.RateLimited())
	require.Contains(t, err.Error(), "403")
}

func TestClient_Generate_Non200PlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`upstream down`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).Generate(context.Background(), "key-1", testRequest())
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status")
	require.Contains(t, err.Error(), "500")
}

func TestClient_Generate_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not-a-json`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).Generate(context.Background(), "key-1", testRequest())
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode response")
}

func TestClient_Generate_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).Generate(context.Background(), "key-1", testRequest())
	require.Error(t, err)
	require.Contains(t, err.Error(), "no candidates")
}

func TestClient_Generate_EmptyText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  "}]},"finishReason":"SAFETY"}]}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv).Generate(context.Background(), "key-1", testRequest())
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty text")
}

func TestClient_Generate_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	c.httpClient = &http.Client{Timeout: 50 * time.Millisecond}
	_, err := c.Generate(context.Background(), "key-1", testRequest())
	require.Error(t, err)
	require.Contains(t, err.Error(), "request failed")
}

func TestClient_Generate_NetworkError(t *testing.T) {
	c := NewClient(WithBaseURL("http://127.0.0.1:1"), WithHTTPClient(&http.Client{Timeout: 100 * time.Millisecond}))
	_, err := c.Generate(context.Background(), "key-1", testRequest())
	require.Error(t, err)
	require.Contains(t, err.Error(), "request failed")

	var statusErr *HTTPStatusError
	require.False(t, errors.As(err, &statusErr))
}
