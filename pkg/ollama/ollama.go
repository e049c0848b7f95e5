package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// GenerateContent sends a non-streaming chat request to the Ollama runtime.
func (o *ollamaImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	wireReq := wireRequest{
		Model:    o.modelPath,
		Messages: req.Messages,
		Stream:   false,
		Options: wireOptions{
			Temperature: req.Temperature,
			NumPredict:  req.MaxTokens,
			TopP:        req.TopP,
			TopK:        req.TopK,
		},
	}

	body, err := json.Marshal(wireReq)
	if err != nil {
		return nil, fmt.Errorf("ollama: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		o.baseURL+"/api/chat", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("ollama: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ollama: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ollama: API error %d: %s", resp.StatusCode, string(raw))
	}

	var wireResp wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&wireResp); err != nil {
		return nil, fmt.Errorf("ollama: failed to decode response: %w", err)
	}

	return &Response{
		Content: wireResp.Message.Content,
		Usage: &Usage{
			PromptTokens:     wireResp.PromptEvalCount,
			CompletionTokens: wireResp.EvalCount,
		},
	}, nil
}

// Model returns the model path/name being used.
func (o *ollamaImpl) Model() string {
	return o.modelPath
}
