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

// IdentityClient talks to the external identity provider. Only password
// sign-up is needed here; federated logins arrive through the callback route.
type IdentityClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewIdentityClient creates a new identity client
func NewIdentityClient(baseURL, apiKey string) *IdentityClient {
	return &IdentityClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// signUpResponse covers both provider response shapes: the user object at the
// top level or nested under "user".
type signUpResponse struct {
	ID   string `json:"id"`
	User *struct {
		ID string `json:"id"`
	} `json:"user,omitempty"`
	Msg string `json:"msg,omitempty"`
}

// SignUp registers a new user with the identity provider and returns the
// provider-assigned user id.
func (c *IdentityClient) SignUp(email, password string) (string, error) {
	payload, err := json.Marshal(signUpRequest{Email: email, Password: password})
	if err != nil {
		return "", fmt.Errorf("marshal sign-up request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/auth/v1/signup", bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("create sign-up request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrIdentitySignUpFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read sign-up response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", apperrors.ErrIdentitySignUpFailed, resp.StatusCode, string(body))
	}

	var signUp signUpResponse
	if err := json.Unmarshal(body, &signUp); err != nil {
		return "", fmt.Errorf("decode sign-up response: %w", err)
	}

	switch {
	case signUp.ID != "":
		return signUp.ID, nil
	case signUp.User != nil && signUp.User.ID != "":
		return signUp.User.ID, nil
	}

	return "", fmt.Errorf("%w: unexpected response format", apperrors.ErrIdentitySignUpFailed)
}
