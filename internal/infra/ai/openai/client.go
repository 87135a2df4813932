package openai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/legallens/backend/internal/domain/analysis"
	"github.com/legallens/backend/internal/infra/ai/prompt"
)

const maxTokens = 4096

type Client struct {
	*openai.Client
	Model       string
	VisionModel string
}

func NewClient(apiKey, model, visionModel string) *Client {
	return &Client{Client: openai.NewClient(apiKey), Model: model, VisionModel: visionModel}
}

// AnalyzeDocument sends extracted text to the model and returns the raw
// JSON analysis payload. The caller parses it into a record.
func (c *Client) AnalyzeDocument(ctx context.Context, text, title string) (string, error) {
	model := c.Model
	if model == "" {
		model = "gpt-4o"
	}
	req := openai.ChatCompletionRequest{
		Model: model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.AnalysisSystemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: prompt.AnalysisUserPrompt(text, title)},
		},
	}
	setTokenLimit(&req, maxTokens)

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", mapError(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}

// ExtractImageText runs the vision model over a single image and returns
// whatever text it can read, preserving the original layout.
func (c *Client) ExtractImageText(ctx context.Context, content []byte, mediaType string) (string, error) {
	model := c.VisionModel
	if model == "" {
		model = "gpt-4o"
	}
	dataURL := fmt.Sprintf("data:%s;base64,%s", mediaType, base64.StdEncoding.EncodeToString(content))

	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: prompt.ImageTextPrompt()},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: dataURL, Detail: openai.ImageURLDetailAuto},
					},
				},
			},
		},
	}
	setTokenLimit(&req, maxTokens)

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", mapError(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}

// DefineTerm asks the model for a standalone plain-language definition of
// a legal term; used when the dictionary has no canonical entry.
func (c *Client) DefineTerm(ctx context.Context, term string) (string, error) {
	model := c.Model
	if model == "" {
		model = "gpt-4o"
	}
	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt.TermDefinitionPrompt(term)},
		},
	}
	setTokenLimit(&req, 256)

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", mapError(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// isReasoningModel reports whether the model rejects MaxTokens in favor of
// MaxCompletionTokens (o-series and gpt-5 families).
func isReasoningModel(model string) bool {
	return strings.HasPrefix(model, "o1") ||
		strings.HasPrefix(model, "o3") ||
		strings.HasPrefix(model, "o4") ||
		strings.HasPrefix(model, "gpt-5")
}

func setTokenLimit(req *openai.ChatCompletionRequest, limit int) {
	if isReasoningModel(req.Model) {
		req.MaxCompletionTokens = limit
	} else {
		req.MaxTokens = limit
	}
}

func mapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %v", analysis.ErrQuotaExceeded, err)
	}
	return err
}
