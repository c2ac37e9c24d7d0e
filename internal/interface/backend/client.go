package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"airport-ops-service/internal/domain/entity"
	"airport-ops-service/pkg/logger"
	"airport-ops-service/pkg/metrics"
)

// FallbackChatReply is returned when the chat endpoint cannot be reached
const FallbackChatReply = "I'm having trouble connecting to the operations service right now. " +
	"Please try again in a moment or check the dashboard sections directly."

// AlertFilter narrows an alert listing; zero values do not filter
type AlertFilter struct {
	Type     entity.AlertType
	Resolved *bool
}

// Client talks to the airport operations API and never surfaces transport errors as failures
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *metrics.Metrics
	logger     logger.Logger
}

// NewClient creates a new API client. metrics may be nil.
func NewClient(baseURL string, timeout time.Duration, metrics *metrics.Metrics, logger logger.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		metrics:    metrics,
		logger:     logger,
	}
}

// SearchFlights runs a natural language search; falls back to an empty list
func (c *Client) SearchFlights(ctx context.Context, query string) Result[[]entity.Flight] {
	var flights []entity.Flight
	err := c.doJSON(ctx, http.MethodPost, "/api/v1/flights/search/nlp", map[string]string{"query": query}, &flights)
	if err != nil {
		c.recordFallback("search_flights", err)
		return fallback([]entity.Flight{}, err)
	}
	if flights == nil {
		flights = []entity.Flight{}
	}
	return ok(flights)
}

// SendMessage sends a chat message; falls back to a single canned reply
func (c *Client) SendMessage(ctx context.Context, text string) Result[entity.ChatResponse] {
	var resp entity.ChatResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/v1/chat/message", entity.ChatMessage{Message: text}, &resp)
	if err == nil && resp.Response == "" {
		err = errors.New("empty chat response")
	}
	if err != nil {
		c.recordFallback("send_message", err)
		return fallback(entity.ChatResponse{Response: FallbackChatReply}, err)
	}
	return ok(resp)
}

// ListAlerts lists alerts; falls back to an empty list
func (c *Client) ListAlerts(ctx context.Context, filter *AlertFilter) Result[[]entity.Alert] {
	path := "/api/v1/alerts"
	if filter != nil {
		q := url.Values{}
		if filter.Type != "" {
			q.Set("type", string(filter.Type))
		}
		if filter.Resolved != nil {
			q.Set("resolved", strconv.FormatBool(*filter.Resolved))
		}
		if len(q) > 0 {
			path += "?" + q.Encode()
		}
	}

	var alerts []entity.Alert
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &alerts); err != nil {
		c.recordFallback("list_alerts", err)
		return fallback([]entity.Alert{}, err)
	}
	if alerts == nil {
		alerts = []entity.Alert{}
	}
	return ok(alerts)
}

// ListRunwayMetrics lists runway metrics; falls back to an empty list
func (c *Client) ListRunwayMetrics(ctx context.Context) Result[[]entity.RunwayMetric] {
	var runwayMetrics []entity.RunwayMetric
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/runways", nil, &runwayMetrics); err != nil {
		c.recordFallback("list_runway_metrics", err)
		return fallback([]entity.RunwayMetric{}, err)
	}
	if runwayMetrics == nil {
		runwayMetrics = []entity.RunwayMetric{}
	}
	return ok(runwayMetrics)
}

func (c *Client) recordFallback(operation string, err error) {
	if c.metrics != nil {
		c.metrics.FacadeFallbacks.WithLabelValues(operation).Inc()
	}
	c.logger.Warn("Backend call failed, using fallback",
		"operation", operation,
		"error", err)
}

// doJSON sends the request and decodes a 2xx JSON body into out
func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errorBody struct {
			Detail string `json:"detail"`
		}
		json.NewDecoder(resp.Body).Decode(&errorBody)
		return &StatusError{StatusCode: resp.StatusCode, Detail: errorBody.Detail}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// StatusError reports a non-2xx API response
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("API returned status %d: %s", e.StatusCode, e.Detail)
}
