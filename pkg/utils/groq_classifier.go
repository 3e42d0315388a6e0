package utils

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// CommandClassifierInterface turns a free-text chat message into one token of
// the closed edit-command grammar. On any failure the chat service falls back
// to its keyword classifier, so errors here are expected and non-fatal.
type CommandClassifierInterface interface {
	ClassifyCommand(ctx context.Context, message string, placeNames, categories []string) (string, error)
}

const classifierPromptTemplate = `You are an intelligent travel assistant with strong spelling correction abilities. Analyze the user's message and determine their intent, even if there are typos or incomplete words.

Current recommendations: %s
Current categories: %s
User message: "%s"

Your task: Respond with EXACTLY ONE of these commands:

1. "i've visited [place_name]" - If user mentions they've been to, visited, or gone to a SPECIFIC PLACE NAME from the recommendations.
2. "regenerate_all" - If user wants completely different recommendations or a new plan ("other options", "something else", "new plan", "refresh").
3. "exclude_category:[category]" - If user doesn't want a specific type of place ("i dont want temples", "no bars please").
4. "category:[category]" - If user wants to see a specific type of place and is NOT asking for "other/different" places (handle typos: "resturant" -> restaurant, "caffe" -> cafe).
5. "show me more options" - If user wants to expand the search area ("more places", "wider area").
6. "general_conversation" - If user is greeting or asking about you.
7. "no_action" - For anything else.

Respond with ONLY the command, nothing else:`

type GroqClassifier struct {
	client *openai.Client
	model  string
}

// NewGroqClassifier talks to Groq's OpenAI-compatible chat endpoint. An empty
// API key yields a classifier that always errors, routing every message
// through the keyword fallback.
func NewGroqClassifier(apiKey, model string) CommandClassifierInterface {
	if model == "" {
		model = "llama-3.1-8b-instant"
	}
	if apiKey == "" {
		return &GroqClassifier{model: model}
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = "https://api.groq.com/openai/v1"

	return &GroqClassifier{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (g *GroqClassifier) ClassifyCommand(ctx context.Context, message string, placeNames, categories []string) (string, error) {
	if g.client == nil {
		return "", ErrAIUnavailable
	}

	prompt := fmt.Sprintf(classifierPromptTemplate,
		strings.Join(placeNames, ", "),
		strings.Join(categories, ", "),
		message,
	)

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: 0.05,
		MaxTokens:   100,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("groq classify: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("groq classify: empty response")
	}

	return strings.ToLower(strings.TrimSpace(resp.Choices[0].Message.Content)), nil
}
