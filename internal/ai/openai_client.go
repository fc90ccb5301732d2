package ai

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
	"go.uber.org/zap"
)

// Appended last so it wins over anything the prompt says about format.
const jsonGuard = `Reply ONLY with valid JSON matching the requested schema.
No text outside the JSON object. No markdown.`

type OpenAIClient struct {
	client *openai.Client
	model  string
	log    *zap.Logger
}

// NewOpenAIClient builds a client for the chat completions API. baseURL may
// be empty for the public endpoint.
func NewOpenAIClient(apiKey, model, baseURL string, log *zap.Logger) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("openai: api key is required")
	}
	if model == "" {
		model = openai.GPT4oMini
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		log:    log,
	}, nil
}

func (c *OpenAIClient) Generate(ctx context.Context, prompt string, img Image, schema Schema) (string, error) {
	msgs := []openai.ChatCompletionMessage{
		{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{Type: openai.ChatMessagePartTypeText, Text: prompt},
				{
					Type: openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{
						URL:    img.DataURI(),
						Detail: openai.ImageURLDetailAuto,
					},
				},
			},
		},
		{Role: openai.ChatMessageRoleSystem, Content: jsonGuard},
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: msgs,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   schema.Name,
				Schema: openAISchema(schema),
				Strict: true,
			},
		},
	})
	if err != nil {
		c.log.Warn("openai request failed", zap.String("model", c.model), zap.Error(err))
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}

	raw := resp.Choices[0].Message.Content
	c.log.Debug("openai raw response", zap.String("model", c.model), zap.String("raw", short(raw)))

	return raw, nil
}

// Strict mode wants every property listed as required and no extras.
func openAISchema(s Schema) *jsonschema.Definition {
	props := make(map[string]jsonschema.Definition, len(s.Fields))
	required := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		t := jsonschema.String
		if f.Kind == KindNumber {
			t = jsonschema.Number
		}
		props[f.Name] = jsonschema.Definition{Type: t, Description: f.Description}
		required = append(required, f.Name)
	}
	return &jsonschema.Definition{
		Type:                 jsonschema.Object,
		Properties:           props,
		Required:             required,
		AdditionalProperties: false,
	}
}

func short(s string) string {
	if len(s) > 180 {
		return s[:180] + "..."
	}
	return s
}
