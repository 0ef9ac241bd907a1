package source

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"hpcatalog/internal/catalog"
	"hpcatalog/internal/character"
)

const DefaultURL = "https://hp-api.onrender.com/api/characters"

var _ catalog.Source = (*Client)(nil)

// StatusError is returned for any response other than 200 OK. Its message is
// the one shown to the user; the status code is kept for logs.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return "Network response was not ok"
}

type Client struct {
	httpClient *http.Client
	url        string
	logger     *zap.Logger
}

func New(url string, timeout time.Duration, logger *zap.Logger) *Client {
	return NewWithHTTPClient(&http.Client{Timeout: timeout}, url, logger)
}

func NewWithHTTPClient(httpClient *http.Client, url string, logger *zap.Logger) *Client {
	if url == "" {
		url = DefaultURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		httpClient: httpClient,
		url:        url,
		logger:     logger,
	}
}

func (c *Client) URL() string {
	return c.url
}

// Fetch issues the single request for the character list. There is no retry.
func (c *Client) Fetch(ctx context.Context) ([]character.Character, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	c.logger.Debug("Fetching characters", zap.String("url", c.url))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Character request failed", zap.String("url", c.url), zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Unexpected character response",
			zap.String("url", c.url),
			zap.Int("status", resp.StatusCode),
		)
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	list, err := character.DecodeList(resp.Body)
	if err != nil {
		c.logger.Warn("Character payload rejected", zap.String("url", c.url), zap.Error(err))
		return nil, err
	}

	c.logger.Debug("Characters fetched",
		zap.Int("count", len(list)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return list, nil
}
