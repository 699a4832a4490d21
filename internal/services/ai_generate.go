package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sidimedmar/profeleve/internal/models"
)

// AIGenerateService asks an OpenAI-compatible chat endpoint for one quiz
// question about a topic. The provider is an opaque collaborator: a failed
// call, a malformed payload or an empty result all surface as an error that
// callers treat as a no-op.
type AIGenerateService struct {
	httpClient *http.Client
	apiKey     string
	apiURL     string
	model      string
}

func NewAIGenerateService(apiKey, apiURL, model string) *AIGenerateService {
	return &AIGenerateService{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		apiKey:     apiKey,
		apiURL:     apiURL,
		model:      model,
	}
}

func (s *AIGenerateService) IsAvailable() bool {
	return s.apiKey != ""
}

type aiQuestion struct {
	Text                 string   `json:"text"`
	Type                 string   `json:"type"`
	Options              []string `json:"options"`
	CorrectOptionIndices []int    `json:"correct_option_indices"`
	Points               int      `json:"points"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

const questionPrompt = `You are a quiz question generator. The user gives a topic. You must respond with ONLY valid JSON (no markdown, no code fences, no explanations) in the following format:

{
  "text": "Question text?",
  "type": "single",
  "options": ["Option A", "Option B", "Option C", "Option D"],
  "correct_option_indices": [0],
  "points": 3
}

Rules:
- Exactly 4 options
- "type" is "single" or "multiple"; for "single" exactly one index is correct
- "correct_option_indices" holds indices 0-3 of the correct options
- "points" is the difficulty from 1 to 5
- Write the question and options in %s
- Return ONLY the JSON object, nothing else`

// GenerateQuestion produces one question about topic in the given language
// ("fr" or "ar"). The adopted question gets a fresh id and option ids 0..3
// assigned by position; the generator's own identifiers are never trusted.
func (s *AIGenerateService) GenerateQuestion(ctx context.Context, topic, lang string) (*models.Question, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("AI generation is not configured")
	}

	language := "French"
	if lang == "ar" {
		language = "Arabic"
	}

	reqBody := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: fmt.Sprintf(questionPrompt, language)},
			{Role: "user", Content: topic},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	if chatResp.Error != nil {
		return nil, fmt.Errorf("API error: %s", chatResp.Error.Message)
	}

	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from AI")
	}

	content := cleanJSONContent(chatResp.Choices[0].Message.Content)

	var data aiQuestion
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return nil, fmt.Errorf("AI returned invalid JSON: %w", err)
	}

	return adoptQuestion(data)
}

func cleanJSONContent(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
	}
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
	}
	if strings.HasSuffix(content, "```") {
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}

// adoptQuestion validates the generated record and converts it into a
// Question. Anything malformed is rejected so the caller can treat the whole
// call as absent.
func adoptQuestion(data aiQuestion) (*models.Question, error) {
	if strings.TrimSpace(data.Text) == "" {
		return nil, fmt.Errorf("AI question has no text")
	}
	if len(data.Options) != 4 {
		return nil, fmt.Errorf("AI question must have exactly 4 options, got %d", len(data.Options))
	}
	if len(data.CorrectOptionIndices) == 0 {
		return nil, fmt.Errorf("AI question has no correct options")
	}

	seen := make(map[int]bool)
	correct := make([]int, 0, len(data.CorrectOptionIndices))
	for _, idx := range data.CorrectOptionIndices {
		if idx < 0 || idx >= len(data.Options) {
			return nil, fmt.Errorf("AI correct option index %d out of range", idx)
		}
		if !seen[idx] {
			seen[idx] = true
			correct = append(correct, idx)
		}
	}

	qType := models.QuestionTypeSingle
	if data.Type == models.QuestionTypeMultiple {
		qType = models.QuestionTypeMultiple
	}

	points := data.Points
	if points < 1 {
		points = 1
	}
	if points > 5 {
		points = 5
	}

	options := make([]models.Option, len(data.Options))
	for i, text := range data.Options {
		options[i] = models.Option{ID: i, Text: text}
	}

	return &models.Question{
		ID:               uuid.NewString(),
		Text:             data.Text,
		Type:             qType,
		Options:          options,
		CorrectOptionIDs: correct,
		Points:           points,
	}, nil
}
