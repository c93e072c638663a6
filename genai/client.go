package genai

import (
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.5-flash"
)

// Client talks to the generative inference service: file upload/status and
// streamed structured generation.
type Client struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:  apiKey,
		BaseURL: defaultBaseURL,
		Model:   defaultModel,
		// video inference on long inputs is slow
		HTTPClient: &http.Client{Timeout: 30 * time.Minute},
	}
}
