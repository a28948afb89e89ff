package datis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/yegors/co-atis/pkg/logger"
)

// Fetcher retrieves the raw D-ATIS records for an airport
type Fetcher interface {
	Fetch(ctx context.Context, icao string) ([]OriginRecord, error)
}

// Client is responsible for fetching D-ATIS data from the provider
type Client struct {
	http   *resty.Client
	logger *logger.Logger
}

var _ Fetcher = (*Client)(nil)

// NewClient creates a client for the provider rooted at baseURL
// (e.g. https://datis.clowd.io/api). A zero timeout keeps the transport
// default.
func NewClient(baseURL string, timeout time.Duration, logger *logger.Logger) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "Co-ATIS/4.0")
	if timeout > 0 {
		rc.SetTimeout(timeout)
	}

	return &Client{
		http:   rc,
		logger: logger.Named("datis-client"),
	}
}

// Fetch performs one GET to <baseURL>/<icao> and decodes the JSON array.
// There is no retry; every failure comes back as a *FetchError.
func (c *Client) Fetch(ctx context.Context, icao string) ([]OriginRecord, error) {
	c.logger.Debug("Fetching D-ATIS", logger.String("icao", icao))

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("icao", icao).
		Get("/{icao}")
	if err != nil {
		c.logger.Error("Failed to execute request", logger.String("icao", icao), logger.Error(err))
		return nil, &FetchError{ICAO: icao, Err: fmt.Errorf("failed to execute request: %w", err)}
	}

	if !resp.IsSuccess() {
		c.logger.Error("Unexpected status code",
			logger.String("icao", icao),
			logger.Int("status_code", resp.StatusCode()))
		return nil, &FetchError{ICAO: icao, Status: resp.StatusCode(), Err: errors.New("unexpected status code")}
	}

	body := resp.Body()
	c.logger.Debug("Upstream payload",
		logger.String("icao", icao),
		logger.Duration("elapsed", resp.Time()),
		logger.String("body", preview(body)))

	var records []OriginRecord
	if err := json.Unmarshal(body, &records); err != nil {
		c.logger.Error("Failed to parse JSON", logger.String("icao", icao), logger.Error(err))
		return nil, &FetchError{ICAO: icao, Status: resp.StatusCode(), Err: fmt.Errorf("failed to parse JSON: %w", err)}
	}

	c.logger.Debug("Successfully fetched D-ATIS",
		logger.String("icao", icao),
		logger.Int("record_count", len(records)))

	return records, nil
}

func preview(body []byte) string {
	if len(body) > 512 {
		return string(body[:512]) + "..."
	}
	return string(body)
}
