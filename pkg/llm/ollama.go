package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const ollamaTimeout = 120 * time.Second

type OllamaClient struct {
	client  *resty.Client
	baseURL string
}

func NewOllamaClient(baseURL string) *OllamaClient {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	return &OllamaClient{
		client:  resty.New().SetTimeout(ollamaTimeout),
		baseURL: baseURL,
	}
}

type ollamaGenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	System string `json:"system"`
	Stream bool   `json:"stream"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
}

func (c *OllamaClient) Invoke(ctx context.Context, modelID, prompt, system string) (string, error) {
	var result ollamaGenerateResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(ollamaGenerateRequest{
			Model:  modelID,
			Prompt: prompt,
			System: system,
			Stream: false,
		}).
		SetResult(&result).
		Post(c.baseURL + "/api/generate")

	if err != nil {
		return "", fmt.Errorf("ollama request error: %w", err)
	}

	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("ollama returned status %d for model %s", resp.StatusCode(), modelID)
	}

	return result.Response, nil
}
