package openai

import (
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
)

func TestSetTokenLimitReasoningModels(t *testing.T) {
	for _, model := range []string{"o1-mini", "o3", "o4-mini", "gpt-5", "gpt-5-mini"} {
		req := openai.ChatCompletionRequest{Model: model}
		setTokenLimit(&req, 4096)
		assert.Equal(t, 4096, req.MaxCompletionTokens, "model %s", model)
		assert.Zero(t, req.MaxTokens, "model %s", model)
	}
}

func TestSetTokenLimitChatModels(t *testing.T) {
	for _, model := range []string{"gpt-4o", "gpt-4o-mini", "gpt-4-turbo"} {
		req := openai.ChatCompletionRequest{Model: model}
		setTokenLimit(&req, 4096)
		assert.Equal(t, 4096, req.MaxTokens, "model %s", model)
		assert.Zero(t, req.MaxCompletionTokens, "model %s", model)
	}
}
