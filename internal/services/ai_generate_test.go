package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sidimedmar/profeleve/internal/models"
	"github.com/sidimedmar/profeleve/internal/services"
)

func chatCompletion(content string) string {
	resp := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
	raw, _ := json.Marshal(resp)
	return string(raw)
}

func newAIServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatCompletion(content)))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGenerateQuestionAdoptsValidPayload(t *testing.T) {
	srv := newAIServer(t, `{
		"text": "Quelle est la capitale du Sénégal ?",
		"type": "single",
		"options": ["Dakar", "Thiès", "Saint-Louis", "Kaolack"],
		"correct_option_indices": [0, 0],
		"points": 9
	}`)
	ai := services.NewAIGenerateService("test-key", srv.URL, "test-model")

	q, err := ai.GenerateQuestion(context.Background(), "géographie", "fr")
	require.NoError(t, err)
	require.NotEmpty(t, q.ID)
	require.Equal(t, "Quelle est la capitale du Sénégal ?", q.Text)
	require.Equal(t, models.QuestionTypeSingle, q.Type)
	require.Equal(t, []models.Option{
		{ID: 0, Text: "Dakar"},
		{ID: 1, Text: "Thiès"},
		{ID: 2, Text: "Saint-Louis"},
		{ID: 3, Text: "Kaolack"},
	}, q.Options)
	// Duplicate indices collapse; points clamp into 1..5.
	require.Equal(t, []int{0}, q.CorrectOptionIDs)
	require.Equal(t, 5, q.Points)
}

func TestGenerateQuestionStripsCodeFences(t *testing.T) {
	srv := newAIServer(t, "```json\n{\"text\":\"Q?\",\"type\":\"multiple\",\"options\":[\"a\",\"b\",\"c\",\"d\"],\"correct_option_indices\":[1,3],\"points\":0}\n```")
	ai := services.NewAIGenerateService("test-key", srv.URL, "test-model")

	q, err := ai.GenerateQuestion(context.Background(), "anything", "ar")
	require.NoError(t, err)
	require.Equal(t, models.QuestionTypeMultiple, q.Type)
	require.Equal(t, []int{1, 3}, q.CorrectOptionIDs)
	require.Equal(t, 1, q.Points)
}

func TestGenerateQuestionRejectsMalformedPayloads(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"not json", "the capital is Dakar"},
		{"missing text", `{"type":"single","options":["a","b","c","d"],"correct_option_indices":[0],"points":2}`},
		{"three options", `{"text":"Q?","type":"single","options":["a","b","c"],"correct_option_indices":[0],"points":2}`},
		{"no correct", `{"text":"Q?","type":"single","options":["a","b","c","d"],"correct_option_indices":[],"points":2}`},
		{"index out of range", `{"text":"Q?","type":"single","options":["a","b","c","d"],"correct_option_indices":[4],"points":2}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newAIServer(t, tc.content)
			ai := services.NewAIGenerateService("test-key", srv.URL, "test-model")

			_, err := ai.GenerateQuestion(context.Background(), "topic", "fr")
			require.Error(t, err)
		})
	}
}

func TestGenerateQuestionUnavailableWithoutKey(t *testing.T) {
	ai := services.NewAIGenerateService("", "http://localhost:1", "test-model")
	require.False(t, ai.IsAvailable())

	_, err := ai.GenerateQuestion(context.Background(), "topic", "fr")
	require.Error(t, err)
}

func TestGenerateQuestionProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	t.Cleanup(srv.Close)
	ai := services.NewAIGenerateService("test-key", srv.URL, "test-model")

	_, err := ai.GenerateQuestion(context.Background(), "topic", "fr")
	require.Error(t, err)
}

func TestGenerateQuestionEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	t.Cleanup(srv.Close)
	ai := services.NewAIGenerateService("test-key", srv.URL, "test-model")

	_, err := ai.GenerateQuestion(context.Background(), "topic", "fr")
	require.Error(t, err)
}
