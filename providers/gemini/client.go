package gemini

import (
	"context"

	"google.golang.org/genai"
)

// generationClient is the outbound surface this adapter needs from the
// Gemini SDK: a single-shot generation call and a chat send. Tests provide
// a fake implementation to exercise dispatch without network access.
type generationClient interface {
	generate(ctx context.Context, model, prompt string, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	chat(ctx context.Context, model string, history []*genai.Content, message string, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// genaiClient backs generationClient with a real genai.Client.
type genaiClient struct {
	client *genai.Client
}

func newGenaiClient(ctx context.Context, apiKey string) (generationClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &genaiClient{client: client}, nil
}

func (g *genaiClient) generate(ctx context.Context, model, prompt string, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), config)
}

func (g *genaiClient) chat(ctx context.Context, model string, history []*genai.Content, message string, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	session, err := g.client.Chats.Create(ctx, model, config, history)
	if err != nil {
		return nil, err
	}
	return session.SendMessage(ctx, genai.Part{Text: message})
}
