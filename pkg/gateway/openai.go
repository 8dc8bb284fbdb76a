// LingoTeach - language-teaching voice skill backend
// License: MIT

package gateway

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/lingoteach/lingoteach/pkg/logger"
)

const translatePrompt = `You are a translation engine.
Translate the user message from the source language %q to the target language %q.
The languages are given as ISO 639-1 codes.
Output ONLY the translated text. No quotes, no explanations, no markdown.`

// OpenAITranslator translates through any OpenAI-compatible chat completion
// endpoint. Intended for local runs where AWS credentials are not available.
type OpenAITranslator struct {
	client openai.Client
	model  string
}

func NewOpenAITranslator(apiKey, baseURL, model string) *OpenAITranslator {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAITranslator{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

func (t *OpenAITranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	resp, err := t.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(fmt.Sprintf(translatePrompt, sourceLang, targetLang)),
			openai.UserMessage(text),
		},
		Model: openai.ChatModel(t.model),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translated == "" {
		return "", fmt.Errorf("empty message content")
	}

	logger.DebugCF("gateway", "Translated text via chat model", map[string]any{
		"model":  t.model,
		"target": targetLang,
	})

	return translated, nil
}
