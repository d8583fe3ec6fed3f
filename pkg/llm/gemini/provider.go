package gemini

import (
	"context"
	"fmt"
	"strings"

	"welllog-ai-be/pkg/llm"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultModel = "gemini-1.5-flash-latest"

type GeminiProvider struct {
	client    *genai.Client
	modelName string
}

// Ensure GeminiProvider implements LLMProvider
var _ llm.LLMProvider = &GeminiProvider{}

func NewGeminiProvider(ctx context.Context, apiKey, modelName string) (*GeminiProvider, error) {
	if modelName == "" {
		modelName = DefaultModel
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiProvider{
		client:    client,
		modelName: modelName,
	}, nil
}

func (p *GeminiProvider) ModelName() string {
	return p.modelName
}

func (p *GeminiProvider) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}

func (p *GeminiProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := &llm.Options{}
	for _, opt := range opts {
		opt(options)
	}

	modelName := p.modelName
	if options.Model != "" {
		modelName = options.Model
	}
	model := p.client.GenerativeModel(modelName)

	if options.Temperature > 0 {
		temp := float32(options.Temperature)
		model.GenerationConfig.Temperature = &temp
	}
	if options.MaxTokens > 0 {
		maxTokens := int32(options.MaxTokens)
		model.GenerationConfig.MaxOutputTokens = &maxTokens
	}

	// Leading system messages become the system instruction; the rest maps
	// onto Gemini's user/model turn structure.
	var systemParts []genai.Part
	var contents []*genai.Content
	for _, msg := range history {
		if msg.Role == "system" {
			systemParts = append(systemParts, genai.Text(msg.Content))
			continue
		}
		role := msg.Role
		if role == "assistant" {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Parts: []genai.Part{genai.Text(msg.Content)},
			Role:  role,
		})
	}
	if len(systemParts) > 0 {
		model.SystemInstruction = &genai.Content{Parts: systemParts}
	}
	if len(contents) == 0 {
		return "", fmt.Errorf("gemini: chat history has no user messages")
	}

	last := contents[len(contents)-1]
	if last.Role != "user" {
		return "", fmt.Errorf("gemini: last message must be a user turn, got %q", last.Role)
	}

	session := model.StartChat()
	session.History = contents[:len(contents)-1]

	resp, err := session.SendMessage(ctx, last.Parts...)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	return extractText(resp)
}

func (p *GeminiProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: response has no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini: response contained no text parts")
	}
	return sb.String(), nil
}
