package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/jokeget/jokeboard/internal/model"
)

// Provider endpoint constants
const (
	DefaultBaseURL = "https://v2.jokeapi.dev"
	JokePath       = "/joke/"
	RatingPath     = "/rate"

	// SafeModeParam keeps provider-side content filtering enabled
	SafeModeParam = "safe-mode"

	// FormatVersion is the rating submission payload version
	FormatVersion = 3
)

// HTTP behavior constants
const (
	DefaultRequestTimeout = 15 * time.Second
	RetryBackoff          = 2 * time.Second
	MaxRetries            = 1
)

// Error taxonomy for the gateway. Callers match with errors.Is.
var (
	// ErrNetwork covers transport failures and non-success responses
	ErrNetwork = errors.New("network error")

	// ErrParse covers malformed or invariant-violating payloads
	ErrParse = errors.New("parse error")
)

// jokePayload mirrors the provider's joke response body
type jokePayload struct {
	Error    bool   `json:"error"`
	ID       int    `json:"id"`
	Category string `json:"category"`
	Type     string `json:"type"`
	Joke     string `json:"joke"`
	Setup    string `json:"setup"`
	Delivery string `json:"delivery"`
}

// ratingPayload is the rating submission body
type ratingPayload struct {
	FormatVersion int    `json:"formatVersion"`
	Joke          string `json:"joke"`
	Rating        int    `json:"rating"`
}

// Client talks to the joke provider over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new provider client. An empty baseURL selects the
// default public provider.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultRequestTimeout,
		},
	}
}

// FetchJoke requests a single joke filtered by category. CategoryAny is
// the provider's unfiltered sentinel. The returned joke always has rating
// zero; malformed payloads fail with ErrParse, transport and non-success
// responses with ErrNetwork.
func (c *Client) FetchJoke(ctx context.Context, category model.Category) (*model.Joke, error) {
	if !category.IsValid() {
		category = model.CategoryAny
	}

	url := c.baseURL + JokePath + category.String() + "?" + SafeModeParam

	body, err := c.getWithRetry(ctx, url)
	if err != nil {
		return nil, err
	}

	var payload jokePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decoding joke payload: %v", ErrParse, err)
	}

	if payload.Error {
		return nil, fmt.Errorf("%w: provider reported an error for category %s", ErrNetwork, category)
	}

	joke := &model.Joke{
		ID:       strconv.Itoa(payload.ID),
		Category: model.Category(payload.Category),
		Setup:    payload.Setup,
		Delivery: payload.Delivery,
		Text:     payload.Joke,
		Rating:   model.RatingNone,
	}

	if err := joke.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return joke, nil
}

// SubmitRating posts a normalized rating for a joke id. Failures are
// reported to the caller but local rating state is never rolled back.
func (c *Client) SubmitRating(ctx context.Context, jokeID string, rating int) error {
	payload := ratingPayload{
		FormatVersion: FormatVersion,
		Joke:          jokeID,
		Rating:        model.NormalizeRating(rating),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding rating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+RatingPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating rating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: submitting rating for joke %s: %v", ErrNetwork, jokeID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: rating submission returned status %d", ErrNetwork, resp.StatusCode)
	}

	return nil
}

// getWithRetry performs a GET with retry logic on transport failures
func (c *Client) getWithRetry(ctx context.Context, url string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= MaxRetries; attempt++ {
		if attempt > 0 {
			// Backoff delay
			select {
			case <-time.After(RetryBackoff):
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %v", ErrNetwork, ctx.Err())
			}

			log.Printf("Retrying joke fetch, attempt %d: %s", attempt+1, url)
		}

		body, err := c.get(ctx, url)
		if err == nil {
			return body, nil
		}

		lastErr = err
		log.Printf("Fetch attempt %d failed: %v", attempt+1, err)

		// Non-success responses and cancelled contexts are not retried
		if !errors.Is(err, errRetryable) || ctx.Err() != nil {
			return nil, err
		}
	}

	return nil, lastErr
}

// errRetryable marks transport-level failures eligible for a retry
var errRetryable = errors.New("retryable")

// get performs a single GET request and returns the response body
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", ErrNetwork, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %v", ErrNetwork, errRetryable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: provider returned status %d", ErrNetwork, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %v", ErrNetwork, err)
	}

	return body, nil
}
