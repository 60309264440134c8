package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/wikiquiz/wikiquiz-backend/internal/logger"
)

func newTestGeminiClient(t *testing.T, baseURL string) *geminiClient {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return &geminiClient{
		log:         log,
		baseURL:     baseURL,
		apiKey:      "test-key",
		model:       "test-model",
		temperature: 0.2,
		httpClient:  &http.Client{Timeout: 5 * time.Second},
	}
}

func geminiCandidateBody(text string) string {
	body, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	})
	return string(body)
}

func TestGenerateQuizRequestShape(t *testing.T) {
	var gotPath, gotKey string
	var gotBody geminiRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		_, _ = w.Write([]byte(geminiCandidateBody(`{"quiz":[]}`)))
	}))
	t.Cleanup(ts.Close)

	c := newTestGeminiClient(t, ts.URL)
	out, err := c.GenerateQuiz(context.Background(), "Alan Turing was an English mathematician.")
	if err != nil {
		t.Fatalf("GenerateQuiz: %v", err)
	}
	if out != `{"quiz":[]}` {
		t.Fatalf("output = %q, want raw candidate text", out)
	}

	if gotPath != "/v1beta/models/test-model:generateContent" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Fatalf("key = %q", gotKey)
	}
	if gotBody.GenerationConfig.Temperature != 0.2 {
		t.Fatalf("temperature = %v, want 0.2", gotBody.GenerationConfig.Temperature)
	}
	if gotBody.GenerationConfig.ResponseMIMEType != "application/json" {
		t.Fatalf("responseMimeType = %q", gotBody.GenerationConfig.ResponseMIMEType)
	}
	if len(gotBody.Contents) != 1 || len(gotBody.Contents[0].Parts) != 1 {
		t.Fatalf("unexpected contents shape: %+v", gotBody.Contents)
	}
	prompt := gotBody.Contents[0].Parts[0].Text
	if !strings.Contains(prompt, "Alan Turing was an English mathematician.") {
		t.Fatalf("prompt does not contain article text")
	}
	if !strings.Contains(prompt, "ONLY valid JSON") {
		t.Fatalf("prompt does not carry the JSON-only instruction")
	}
}

func TestGenerateQuizTruncatesArticle(t *testing.T) {
	var prompt string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body geminiRequest
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		prompt = body.Contents[0].Parts[0].Text
		_, _ = w.Write([]byte(geminiCandidateBody(`{"quiz":[]}`)))
	}))
	t.Cleanup(ts.Close)

	article := strings.Repeat("a", maxArticleChars) + "TAIL"
	c := newTestGeminiClient(t, ts.URL)
	if _, err := c.GenerateQuiz(context.Background(), article); err != nil {
		t.Fatalf("GenerateQuiz: %v", err)
	}

	if !strings.Contains(prompt, strings.Repeat("a", maxArticleChars)) {
		t.Fatalf("prompt missing capped article text")
	}
	if strings.Contains(prompt, "TAIL") {
		t.Fatalf("prompt contains text beyond the cap")
	}
}

func TestGenerateQuizConcatenatesParts(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := json.Marshal(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"text": `{"quiz":`},
					{"text": `[]}`},
				}}},
			},
		})
		_, _ = w.Write(body)
	}))
	t.Cleanup(ts.Close)

	out, err := newTestGeminiClient(t, ts.URL).GenerateQuiz(context.Background(), "some article text")
	if err != nil {
		t.Fatalf("GenerateQuiz: %v", err)
	}
	if out != `{"quiz":[]}` {
		t.Fatalf("output = %q", out)
	}
}

func TestGenerateQuizErrors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{name: "http_500", status: http.StatusInternalServerError, body: `{"error":"boom"}`},
		{name: "http_429", status: http.StatusTooManyRequests, body: `{"error":"quota"}`},
		{name: "no_candidates", status: http.StatusOK, body: `{"candidates":[]}`},
		{name: "non_json_body", status: http.StatusOK, body: `<html>gateway error</html>`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			t.Cleanup(ts.Close)

			if _, err := newTestGeminiClient(t, ts.URL).GenerateQuiz(context.Background(), "text"); err == nil {
				t.Fatalf("GenerateQuiz = nil error, want failure")
			}
		})
	}
}
