package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultHTTPTimeout = 10 * time.Second
	httpTimeoutEnvKey  = "KANBAN_HTTP_TIMEOUT"
)

// Client is a simple HTTP client for the kanban API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a new API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: httpTimeoutFromEnv()},
	}
}

// BaseURL returns the server root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Ping checks whether the API server is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil, nil)
}

func (c *Client) GetInfo(ctx context.Context) (InfoResponse, error) {
	var resp InfoResponse
	err := c.do(ctx, http.MethodGet, "/v1/info", nil, nil, &resp)
	return resp, err
}

func (c *Client) GetState(ctx context.Context) (StateResponse, error) {
	var resp StateResponse
	err := c.do(ctx, http.MethodGet, "/v1/state", nil, nil, &resp)
	return resp, err
}

func (c *Client) GetCatalog(ctx context.Context) (CatalogResponse, error) {
	var resp CatalogResponse
	err := c.do(ctx, http.MethodGet, "/v1/catalog", nil, nil, &resp)
	return resp, err
}

func (c *Client) ListBoards(ctx context.Context) ([]BoardSummary, error) {
	var resp []BoardSummary
	err := c.do(ctx, http.MethodGet, "/v1/boards", nil, nil, &resp)
	return resp, err
}

func (c *Client) CreateBoard(ctx context.Context, req BoardCreateRequest) (BoardResponse, error) {
	var resp BoardResponse
	err := c.do(ctx, http.MethodPost, "/v1/boards", nil, req, &resp)
	return resp, err
}

func (c *Client) GetBoard(ctx context.Context, index int) (BoardResponse, error) {
	var resp BoardResponse
	err := c.do(ctx, http.MethodGet, boardPath(index), nil, nil, &resp)
	return resp, err
}

func (c *Client) DeleteBoard(ctx context.Context, index int) error {
	return c.do(ctx, http.MethodDelete, boardPath(index), nil, nil, nil)
}

func (c *Client) SelectBoard(ctx context.Context, index int) (BoardResponse, error) {
	var resp BoardResponse
	err := c.do(ctx, http.MethodPost, boardPath(index)+"/select", nil, nil, &resp)
	return resp, err
}

func (c *Client) AddItem(ctx context.Context, boardIndex int, req ItemCreateRequest) (ItemResponse, error) {
	var resp ItemResponse
	err := c.do(ctx, http.MethodPost, boardPath(boardIndex)+"/items", nil, req, &resp)
	return resp, err
}

func (c *Client) DeleteItem(ctx context.Context, boardIndex int, column string, itemIndex int) error {
	path := boardPath(boardIndex) + "/columns/" + url.PathEscape(column) + "/items/" + strconv.Itoa(itemIndex)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) MoveItem(ctx context.Context, boardIndex int, req MoveRequest) (MoveResponse, error) {
	var resp MoveResponse
	err := c.do(ctx, http.MethodPost, boardPath(boardIndex)+"/move", nil, req, &resp)
	return resp, err
}

func (c *Client) GetTheme(ctx context.Context) (ThemeResponse, error) {
	var resp ThemeResponse
	err := c.do(ctx, http.MethodGet, "/v1/theme", nil, nil, &resp)
	return resp, err
}

func (c *Client) SetTheme(ctx context.Context, req ThemeRequest) (ThemeResponse, error) {
	var resp ThemeResponse
	err := c.do(ctx, http.MethodPut, "/v1/theme", nil, req, &resp)
	return resp, err
}

// Export streams the export document in the requested format ("json" or "yaml") to a writer.
func (c *Client) Export(ctx context.Context, format string, w io.Writer) error {
	endpoint := c.baseURL + "/v1/export"
	if format != "" {
		endpoint += "?" + url.Values{"format": []string{format}}.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}
	_, err = io.Copy(w, resp.Body)
	return err
}

// Import replaces all boards (and the theme, when set) with doc.
func (c *Client) Import(ctx context.Context, doc ExportDocument) (ImportResponse, error) {
	var resp ImportResponse
	err := c.do(ctx, http.MethodPost, "/v1/import", nil, doc, &resp)
	return resp, err
}

// EventsURL returns the websocket URL of the change feed.
func (c *Client) EventsURL() string {
	base := c.baseURL
	switch {
	case strings.HasPrefix(base, "https://"):
		base = "wss://" + strings.TrimPrefix(base, "https://")
	case strings.HasPrefix(base, "http://"):
		base = "ws://" + strings.TrimPrefix(base, "http://")
	}
	return base + "/v1/events"
}

func boardPath(index int) string {
	return "/v1/boards/" + strconv.Itoa(index)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeError(resp *http.Response) error {
	var errResp ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
		return &APIError{
			Status:    resp.StatusCode,
			Code:      errResp.Code,
			ErrorCode: errResp.ErrorCode,
			Message:   errResp.Error,
		}
	}
	return &APIError{Status: resp.StatusCode, Message: fmt.Sprintf("api error: %s", resp.Status)}
}

func httpTimeoutFromEnv() time.Duration {
	value := strings.TrimSpace(os.Getenv(httpTimeoutEnvKey))
	if value == "" {
		return defaultHTTPTimeout
	}

	if duration, err := time.ParseDuration(value); err == nil && duration > 0 {
		return duration
	}
	if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}

	return defaultHTTPTimeout
}
