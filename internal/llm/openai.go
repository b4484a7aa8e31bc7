package llm

import (
	"context"
	"errors"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// Client is the capability the consultation pipeline needs from a language
// model: fill a system prompt, hand over the stage context, get narrative
// text back.  Stage code depends only on this interface so tests can
// substitute a scripted stub.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// OpenAIClient calls the OpenAI chat completion API.  API credentials and
// the model name are loaded from environment variables.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient constructs an OpenAI-backed LLM client.  It reads the API
// key and model name from the environment and falls back to a sensible
// default model.
func NewOpenAIClient() *OpenAIClient {
	apiKey := os.Getenv("OPENAI_API_KEY")
	c := openai.NewClient(apiKey)

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		// default to a modern small model; can be overridden via env
		model = "gpt-4o-mini"
	}

	return &OpenAIClient{client: c, model: model}
}

// Complete sends the system prompt and user content to the chat completion
// API and returns the assistant's response.
func (c *OpenAIClient) Complete(ctx context.Context, system, user string) (string, error) {
	if c.client == nil {
		return "", errors.New("openai client not initialized")
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.4,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
