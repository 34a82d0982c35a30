package dictstore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/byte-squad-abac/manuscript/internal/document"
)

// HTTPSource reads dictionary rows from the platform's hosted
// database REST endpoint.
type HTTPSource struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPSource builds a source against baseURL; apiKey may be empty
// for unauthenticated deployments.
func NewHTTPSource(baseURL, apiKey string) *HTTPSource {
	return &HTTPSource{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (s *HTTPSource) ValidWords(ctx context.Context) ([]document.DictionaryEntry, error) {
	var entries []document.DictionaryEntry
	if err := s.getJSON(ctx, "/dictionary/words?is_valid=true", &entries); err != nil {
		return nil, fmt.Errorf("load dictionary words: %w", err)
	}
	return entries, nil
}

func (s *HTTPSource) Mistakes(ctx context.Context) ([]document.MistakePair, error) {
	var pairs []document.MistakePair
	if err := s.getJSON(ctx, "/dictionary/mistakes", &pairs); err != nil {
		return nil, fmt.Errorf("load common mistakes: %w", err)
	}
	return pairs, nil
}

func (s *HTTPSource) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("get %s: status %d: %s", path, resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
