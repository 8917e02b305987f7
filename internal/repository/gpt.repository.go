package repository

import (
	"context"
	"fmt"

	"github.com/ayush6624/go-chatgpt"
)

type GptRepository interface {
	ConstructCriteriaRules(ctx context.Context, description string) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

const criteriaPrompt = `
You are helping a user draft scoring rules for their investment portfolio. They will describe in English how they want their assets scored. You must output a JSON array of rule objects, nothing else.

Each rule object has these fields:
- "name": short human label
- "metric": a fundamentals key (e.g. "pe_ratio", "dividend_yield", "eps", "payout_ratio") or an arithmetic expression over keys (e.g. "eps * payout_ratio")
- "operator": one of "gt", "lt", "gte", "lte", "between", "equals", "exists"
- "threshold": decimal string
- "thresholdUpper": decimal string, only for "between"
- "points": integer between -100 and 100; negative values penalize

example input:
reward a dividend yield of at least 4 percent with 20 points and penalize a P/E over 40 with minus 10

expected output:
[
  {"name": "high dividend yield", "metric": "dividend_yield", "operator": "gte", "threshold": "4.0", "points": 20},
  {"name": "overpriced earnings", "metric": "pe_ratio", "operator": "gt", "threshold": "40", "points": -10}
]
`

func (h gptRepositoryHandler) ConstructCriteriaRules(ctx context.Context, description string) (string, error) {
	res, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.GPT35Turbo,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: criteriaPrompt,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: description,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to construct criteria rules: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("gpt returned no choices")
	}

	return res.Choices[0].Message.Content, nil
}
