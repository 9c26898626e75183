package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
	"github.com/custodia-labs/vibeyf-cli/internal/core/ports/driven"
	"github.com/custodia-labs/vibeyf-cli/internal/logger"
)

// Ensure Client implements the interfaces.
var (
	_ driven.QuestionnaireSource = (*Client)(nil)
	_ driven.Recommender         = (*Client)(nil)
	_ driven.HealthChecker       = (*Client)(nil)
)

// Default configuration values.
const (
	DefaultBaseURL = domain.DefaultBackendURL

	// maxErrorBody bounds how much of an error response is quoted back.
	maxErrorBody = 512
)

// Config holds configuration for the backend client.
type Config struct {
	// BaseURL is the backend base URL (default: http://localhost:8000).
	BaseURL string

	// Timeout bounds each request. Zero leaves requests unbounded, matching
	// the transport default.
	Timeout time.Duration

	// HTTPClient overrides the client used for requests.
	HTTPClient *http.Client
}

// Client talks to the scoring backend over HTTP.
type Client struct {
	client  *http.Client
	baseURL string
}

// NewClient creates a new backend client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		client:  client,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// BaseURL returns the backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchQuestionnaire retrieves the question set. A payload without either
// category is an error wrapping domain.ErrLoad.
func (c *Client) FetchQuestionnaire(ctx context.Context) (*domain.Questionnaire, error) {
	var payload questionnaireResponse
	if err := c.do(ctx, http.MethodGet, "/questionnaire", nil, &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrLoad, err)
	}

	if payload.Likert == nil {
		return nil, fmt.Errorf("%w: questionnaire payload has no %q category", domain.ErrLoad, "likert")
	}
	if payload.Ouvertes == nil {
		return nil, fmt.Errorf("%w: questionnaire payload has no %q category", domain.ErrLoad, "ouvertes")
	}

	q := &domain.Questionnaire{
		Rating: make([]domain.Question, 0, len(*payload.Likert)),
		Open:   make([]domain.Question, 0, len(*payload.Ouvertes)),
	}
	for _, lq := range *payload.Likert {
		q.Rating = append(q.Rating, lq.toDomain())
	}
	for _, oq := range *payload.Ouvertes {
		q.Open = append(q.Open, oq.toDomain())
	}
	return q, nil
}

// Recommend submits the responses for scoring. Any failure wraps
// domain.ErrSubmission.
func (c *Client) Recommend(ctx context.Context, responses domain.ResponseSet) (*domain.RecommendationResult, error) {
	var payload recommendResponse
	if err := c.do(ctx, http.MethodPost, "/recommend", newRecommendRequest(responses), &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSubmission, err)
	}
	return payload.toDomain(), nil
}

// Health reports the backend status.
func (c *Client) Health(ctx context.Context) (*domain.BackendHealth, error) {
	var payload healthResponse
	if err := c.do(ctx, http.MethodGet, "/health", nil, &payload); err != nil {
		return nil, fmt.Errorf("health check: %w", err)
	}
	return &domain.BackendHealth{
		Status:          payload.Status,
		Timestamp:       payload.Timestamp,
		GenerationReady: payload.GeminiEnabled,
	}, nil
}

// do sends a JSON request and decodes a JSON response. Any non-2xx status
// is an error carrying the backend's detail message when it has one.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.Debug("%s %s", method, req.URL)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func statusError(resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return fmt.Errorf("backend error (status %d): failed to read response", resp.StatusCode)
	}

	var detail errorResponse
	if json.Unmarshal(raw, &detail) == nil && detail.Detail != "" {
		return fmt.Errorf("backend error (status %d): %s", resp.StatusCode, detail.Detail)
	}
	if msg := strings.TrimSpace(string(raw)); msg != "" {
		return fmt.Errorf("backend error (status %d): %s", resp.StatusCode, msg)
	}
	return fmt.Errorf("backend error (status %d)", resp.StatusCode)
}
