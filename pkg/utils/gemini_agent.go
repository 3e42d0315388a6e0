package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// IntentAgentInterface is the LLM collaborator for intent extraction and
// plan narration. Both calls are best-effort: callers must substitute the
// documented deterministic fallback on any error.
type IntentAgentInterface interface {
	ExtractIntentJSON(ctx context.Context, userInputJSON string) (string, error)
	GenerateNarration(ctx context.Context, intentJSON, planJSON string) (string, error)
	Close() error
}

const intentSystemPrompt = `You are the intent builder for Sanchar, a city hangout planner.
Given the user input, output ONLY a valid JSON object with these keys:
{"vibe":["chill"],"budget_min":0,"budget_max":1000,"time_available_hours":3.0,"weather":"clear"}
Omit keys you cannot infer. No explanation, no markdown.`

const narratorSystemPrompt = `You are the plan narrator for Sanchar.
Explain the hangout plan calmly, clearly, and concisely. Two or three sentences.`

type GeminiAgent struct {
	client *genai.Client
	model  string
}

// NewGeminiAgent creates the Gemini collaborator. An empty API key yields an
// agent whose calls fail with ErrAIUnavailable, which keeps the pipeline on
// its deterministic fallbacks instead of crashing at startup.
func NewGeminiAgent(apiKey, model string) (IntentAgentInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	if apiKey == "" {
		return &GeminiAgent{model: model}, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiAgent{client: client, model: model}, nil
}

func (a *GeminiAgent) ExtractIntentJSON(ctx context.Context, userInputJSON string) (string, error) {
	return a.generate(ctx, intentSystemPrompt, "User Input:\n"+userInputJSON, 0.1)
}

func (a *GeminiAgent) GenerateNarration(ctx context.Context, intentJSON, planJSON string) (string, error) {
	prompt := fmt.Sprintf("User Intent:\n%s\n\nFinal Plan:\n%s", intentJSON, planJSON)
	return a.generate(ctx, narratorSystemPrompt, prompt, 0.4)
}

func (a *GeminiAgent) generate(ctx context.Context, system, prompt string, temperature float32) (string, error) {
	if a.client == nil {
		return "", ErrAIUnavailable
	}

	m := a.client.GenerativeModel(a.model)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	m.SetTemperature(temperature)
	m.SetTopP(0.5)
	m.SetTopK(20)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content")
	}

	return strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])), nil
}

func (a *GeminiAgent) Close() error {
	if a.client == nil {
		return nil
	}
	return a.client.Close()
}

// ExtractFirstJSONObject recovers the first balanced JSON object from model
// output that may carry markdown fences or surrounding prose. Returns "" when
// no valid object can be found.
func ExtractFirstJSONObject(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	if start == -1 {
		return ""
	}
	end := findMatchingBrace(response, start)
	if end == -1 {
		return ""
	}

	candidate := response[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return ""
	}
	return candidate
}

// findMatchingBrace finds the matching closing brace for an opening brace,
// skipping over string literals and escapes.
func findMatchingBrace(s string, start int) int {
	if start >= len(s) || s[start] != '{' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
