package genai

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Stream is a lazy sequence of response chunks. Chunks arrive exactly once
// and in order; the stream is finite and not restartable.
type Stream struct {
	body    io.ReadCloser
	scanner *bufio.Scanner
}

func newStream(body io.ReadCloser) *Stream {
	scanner := bufio.NewScanner(body)
	// a single SSE event can carry a large JSON chunk
	scanner.Buffer(make([]byte, 64*1024), 8*1024*1024)
	return &Stream{body: body, scanner: scanner}
}

// Next returns the next chunk, or io.EOF once the stream is exhausted.
// Exhaustion and errors both close the underlying response body.
func (s *Stream) Next() (GenerateContentResponse, error) {
	for s.scanner.Scan() {
		line := strings.TrimSpace(s.scanner.Text())
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "" || data == "[DONE]" {
			continue
		}
		var chunk GenerateContentResponse
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			s.Close()
			return GenerateContentResponse{}, fmt.Errorf("malformed stream chunk: %w", err)
		}
		return chunk, nil
	}
	err := s.scanner.Err()
	s.Close()
	if err != nil {
		return GenerateContentResponse{}, err
	}
	return GenerateContentResponse{}, io.EOF
}

func (s *Stream) Close() error {
	return s.body.Close()
}

// GenerateContentStream invokes the model in streaming mode and returns an
// iterator over the incremental response chunks.
func (c *Client) GenerateContentStream(ctx context.Context, genReq GenerateContentRequest) (*Stream, error) {
	payload, err := json.Marshal(genReq)
	if err != nil {
		return nil, err
	}

	model := c.Model
	if model == "" {
		model = defaultModel
	}
	url := fmt.Sprintf("%s/v1beta/models/%s:streamGenerateContent?alt=sse", c.BaseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("generate http %d: %s", resp.StatusCode, string(data))
	}

	log.Debugf("streaming generation started (model %s)", model)
	return newStream(resp.Body), nil
}
