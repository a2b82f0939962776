package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "teamtrack-backend/internal/errors"
)

// CompletionClient talks to the hosted completion service. Calls are
// synchronous and block the request path; there are no retries.
type CompletionClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewCompletionClient creates a new completion client
func NewCompletionClient(baseURL, apiKey string) *CompletionClient {
	return &CompletionClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type jsonSchemaFormat struct {
	Name   string          `json:"name"`
	Strict bool            `json:"strict"`
	Schema json.RawMessage `json:"schema"`
}

type responseFormat struct {
	Type       string           `json:"type"`
	JSONSchema jsonSchemaFormat `json:"json_schema"`
}

type chatCompletionRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
			Refusal string `json:"refusal,omitempty"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// CompleteStructured sends the input to the completion service with a fixed
// JSON schema and decodes the structured answer into out. Schema validation
// is the collaborator's job; this side only decodes.
func (c *CompletionClient) CompleteStructured(model, description, input string, schemaName string, schema []byte, out interface{}) error {
	if c.apiKey == "" {
		return apperrors.ErrAPIKeyNotSet
	}

	reqBody := chatCompletionRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: description},
			{Role: "user", Content: input},
		},
		ResponseFormat: responseFormat{
			Type: "json_schema",
			JSONSchema: jsonSchemaFormat{
				Name:   schemaName,
				Strict: true,
				Schema: schema,
			},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal completion request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrCompletionRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read completion response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d: %s", apperrors.ErrCompletionRequestFailed, resp.StatusCode, string(body))
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return fmt.Errorf("decode completion response: %w", err)
	}
	if completion.Error != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrCompletionRequestFailed, completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return fmt.Errorf("%w: empty choices", apperrors.ErrCompletionRequestFailed)
	}
	if refusal := completion.Choices[0].Message.Refusal; refusal != "" {
		return fmt.Errorf("%w: refused: %s", apperrors.ErrCompletionRequestFailed, refusal)
	}

	if err := json.Unmarshal([]byte(completion.Choices[0].Message.Content), out); err != nil {
		return fmt.Errorf("decode structured output: %w", err)
	}

	return nil
}
