package catalogapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/catalog-cli/internal/core/domain"
	"github.com/custodia-labs/catalog-cli/internal/core/ports/driven"
	"github.com/custodia-labs/catalog-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.CatalogAPI = (*Client)(nil)

// HeaderRequestID carries a per-request id for correlating client and server logs.
const HeaderRequestID = "X-Request-ID"

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 4 << 10

// Config holds configuration for the catalog client.
type Config struct {
	// BaseURL is the server root (default: http://localhost:5001).
	BaseURL string

	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration

	// RateLimit caps requests per second. Zero means unlimited.
	RateLimit float64

	// HTTPClient overrides the transport. Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client talks to the catalog HTTP server.
type Client struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
}

// New creates a catalog client.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = domain.DefaultAPIBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	c := &Client{
		client:  httpClient,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}
	return c
}

// BaseURL returns the server root the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetCategory fetches GET /categories/{id}.
// An empty body, "null" or a record without an id counts as not found.
func (c *Client) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	var resp *categoryResponse
	if err := c.doJSON(ctx, http.MethodGet, "/categories/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	if resp == nil || resp.ID == "" {
		logger.Debug("category %s: empty record", id)
		return nil, fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}
	return resp.toDomain(), nil
}

// ListServices fetches GET /services/{categoryID}.
func (c *Client) ListServices(ctx context.Context, categoryID string) ([]domain.Service, error) {
	var resp []serviceResponse
	if err := c.doJSON(ctx, http.MethodGet, "/services/"+url.PathEscape(categoryID), nil, &resp); err != nil {
		return nil, err
	}
	services := make([]domain.Service, 0, len(resp))
	for _, r := range resp {
		services = append(services, r.toDomain())
	}
	return services, nil
}

// CreateService posts POST /services.
// A 2xx with a body that is not a service record still counts as success;
// the returned service then carries the submitted values and an empty ID.
func (c *Client) CreateService(ctx context.Context, categoryID string, in domain.ServiceInput) (*domain.Service, error) {
	body := createServiceRequest{
		Name:       in.Name,
		Price:      in.Price,
		Time:       in.Time,
		CategoryID: categoryID,
	}
	var resp *serviceResponse
	if err := c.doJSON(ctx, http.MethodPost, "/services", body, &resp); err != nil && !isDecodeError(err) {
		return nil, err
	}
	if resp == nil || resp.ID == "" {
		return &domain.Service{Name: in.Name, Price: in.Price, Time: in.Time, CategoryID: categoryID}, nil
	}
	created := resp.toDomain()
	if created.CategoryID == "" {
		created.CategoryID = categoryID
	}
	return &created, nil
}

// UpdateService sends a full-field PUT /services/{id}.
func (c *Client) UpdateService(ctx context.Context, id string, in domain.ServiceInput) (*domain.Service, error) {
	body := updateServiceRequest{Name: in.Name, Price: in.Price, Time: in.Time}
	var resp *serviceResponse
	if err := c.doJSON(ctx, http.MethodPut, "/services/"+url.PathEscape(id), body, &resp); err != nil && !isDecodeError(err) {
		return nil, err
	}
	if resp == nil || resp.ID == "" {
		return &domain.Service{ID: id, Name: in.Name, Price: in.Price, Time: in.Time}, nil
	}
	updated := resp.toDomain()
	return &updated, nil
}

// DeleteService sends DELETE /services/{id}. Any 2xx is an acknowledgement.
func (c *Client) DeleteService(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/services/"+url.PathEscape(id), nil, nil)
}

// FetchAsset downloads GET /uploads/{filename}.
func (c *Client) FetchAsset(ctx context.Context, filename string) ([]byte, error) {
	resp, err := c.do(ctx, http.MethodGet, "/uploads/"+url.PathEscape(filename), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read asset: %w", err)
	}
	return data, nil
}

// AssetURL returns the absolute URL of an upload.
func (c *Client) AssetURL(filename string) string {
	return c.baseURL + "/uploads/" + url.PathEscape(filename)
}

// doJSON sends body as JSON (when non-nil) and decodes the response into out
// (when non-nil). An empty response body leaves out untouched.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	resp, err := c.do(ctx, method, path, reader)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		logger.Debug("undecodable %s %s response: %v", method, path, err)
		return &decodeError{method: method, path: path, err: err}
	}
	return nil
}

// decodeError is a 2xx response whose body did not match the expected shape.
type decodeError struct {
	method, path string
	err          error
}

func (e *decodeError) Error() string {
	return fmt.Sprintf("decode %s %s: %v", e.method, e.path, e.err)
}

func (e *decodeError) Unwrap() error {
	return e.err
}

func isDecodeError(err error) bool {
	var de *decodeError
	return errors.As(err, &de)
}

// do sends one request and converts non-2xx responses into *StatusError.
// On success the caller owns resp.Body.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set(HeaderRequestID, requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.Debug("%s %s [%s]", method, path, requestID)
	start := time.Now()

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	logger.Debug("%s %s -> %d in %s [%s]", method, path, resp.StatusCode, time.Since(start).Round(time.Millisecond), requestID)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		se := newStatusError(resp, method, path, requestID)
		if IsServerError(se) {
			logger.Error("%s %s: server returned %d [%s]", method, path, se.StatusCode, requestID)
		}
		return nil, se
	}
	return resp, nil
}

func newStatusError(resp *http.Response, method, path, requestID string) *StatusError {
	se := &StatusError{
		StatusCode: resp.StatusCode,
		Method:     method,
		Path:       path,
		RequestID:  requestID,
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var er errorResponse
	if json.Unmarshal(data, &er) == nil && er.text() != "" {
		se.Message = er.text()
	} else if text := strings.TrimSpace(string(data)); text != "" && !strings.HasPrefix(text, "<") {
		se.Message = text
	}
	return se
}
