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

// embeddingModel is fixed; the datastore's vector index is built for its dimensionality
const embeddingModel = "text-embedding-3-small"

// EmbeddingClient talks to the hosted embedding service
type EmbeddingClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewEmbeddingClient creates a new embedding client
func NewEmbeddingClient(baseURL, apiKey string) *EmbeddingClient {
	return &EmbeddingClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type embeddingRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Embed generates an embedding vector for the given text
func (c *EmbeddingClient) Embed(text string) ([]float64, error) {
	if c.apiKey == "" {
		return nil, apperrors.ErrAPIKeyNotSet
	}

	payload, err := json.Marshal(embeddingRequest{Model: embeddingModel, Input: text})
	if err != nil {
		return nil, fmt.Errorf("marshal embedding request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/embeddings", bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("create embedding request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrEmbeddingRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read embedding response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", apperrors.ErrEmbeddingRequestFailed, resp.StatusCode, string(body))
	}

	var embedding embeddingResponse
	if err := json.Unmarshal(body, &embedding); err != nil {
		return nil, fmt.Errorf("decode embedding response: %w", err)
	}
	if embedding.Error != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrEmbeddingRequestFailed, embedding.Error.Message)
	}
	if len(embedding.Data) == 0 {
		return nil, fmt.Errorf("%w: empty data", apperrors.ErrEmbeddingRequestFailed)
	}

	return embedding.Data[0].Embedding, nil
}
