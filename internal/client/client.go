// Package client provides an HTTP client for the NeuroDoc API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	apperrors "github.com/neurodoc/neurodoc-go/internal/pkg/errors"
)

const defaultUserAgent = "NeuroDoc-Go-Client/1.0"

// Client is an HTTP client for the NeuroDoc API.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Config configures the client.
type Config struct {
	// BaseURL is the base URL of the API server.
	BaseURL string

	// Token is the JWT bearer token sent with every request.
	// An empty token omits the Authorization header.
	Token string

	// Timeout is the request timeout.
	Timeout time.Duration

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// RequestsPerSecond paces outbound requests. Zero disables pacing.
	RequestsPerSecond float64

	// MaxIdleConns controls the maximum number of idle (keep-alive)
	// connections across all hosts. Zero means no limit.
	MaxIdleConns int

	// MaxConnsPerHost limits the total number of connections per host.
	// Zero means no limit.
	MaxConnsPerHost int

	// IdleConnTimeout is the maximum amount of time an idle (keep-alive)
	// connection will remain idle before closing itself.
	IdleConnTimeout time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:         "http://localhost:3000",
		Timeout:         30 * time.Second,
		MaxIdleConns:    100,
		MaxConnsPerHost: 100,
		IdleConnTimeout: 90 * time.Second,
	}
}

// New creates a new API client.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:3000"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.MaxIdleConns == 0 {
		cfg.MaxIdleConns = 100
	}
	if cfg.MaxConnsPerHost == 0 {
		cfg.MaxConnsPerHost = 100
	}
	if cfg.IdleConnTimeout == 0 {
		cfg.IdleConnTimeout = 90 * time.Second
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	transport := &http.Transport{
		MaxIdleConns:        cfg.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.MaxConnsPerHost / 5, // 20% per host
		MaxConnsPerHost:     cfg.MaxConnsPerHost,
		IdleConnTimeout:     cfg.IdleConnTimeout,
		DisableCompression:  false,
		ForceAttemptHTTP2:   true,
	}

	return &Client{
		baseURL:   cfg.BaseURL,
		token:     cfg.Token,
		userAgent: cfg.UserAgent,
		limiter:   limiter,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
	}
}

// Health checks the API health status.
func (c *Client) Health(ctx context.Context, detailed bool) (*HealthResponse, error) {
	params := url.Values{}
	if detailed {
		params.Set("detailed", "true")
	}

	var resp HealthResponse
	if err := c.get(ctx, "/api/health", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Upload uploads a document for processing.
func (c *Client) Upload(ctx context.Context, path string) (*UploadResponse, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.FileMissingError(path)
		}
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalizing upload body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	var resp UploadResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Query asks the decision engine a question over the uploaded documents.
// A nil opts uses the server defaults.
func (c *Client) Query(ctx context.Context, query string, opts *QueryOptions) (*QueryResponse, error) {
	if query == "" {
		return nil, apperrors.ValidationError("query must not be empty")
	}

	var resp QueryResponse
	if err := c.post(ctx, "/api/query", QueryRequest{Query: query, Options: opts}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListDocuments returns the caller's documents.
func (c *Client) ListDocuments(ctx context.Context, opts ListOptions) (*DocumentList, error) {
	params := url.Values{}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Offset > 0 {
		params.Set("offset", strconv.Itoa(opts.Offset))
	}
	if opts.Search != "" {
		params.Set("search", opts.Search)
	}
	if opts.FileType != "" {
		params.Set("fileType", opts.FileType)
	}

	var resp DocumentList
	if err := c.get(ctx, "/api/documents", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Clauses returns extracted clauses of a document.
func (c *Client) Clauses(ctx context.Context, documentID string, limit int, includeEmbeddings bool) (*ClauseList, error) {
	if documentID == "" {
		return nil, apperrors.ValidationError("document id must not be empty")
	}

	params := url.Values{}
	params.Set("doc_id", documentID)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	params.Set("include_embeddings", strconv.FormatBool(includeEmbeddings))

	var resp ClauseList
	if err := c.get(ctx, "/api/clauses", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AuditTrail returns the recorded queries and decisions.
func (c *Client) AuditTrail(ctx context.Context, opts AuditOptions) (*AuditTrail, error) {
	params := url.Values{}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.StartDate != "" {
		params.Set("start_date", opts.StartDate)
	}
	if opts.EndDate != "" {
		params.Set("end_date", opts.EndDate)
	}

	var resp AuditTrail
	if err := c.get(ctx, "/api/audit", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AuditStatistics returns aggregate audit statistics for a period.
// Empty dates default to the trailing 30 days.
func (c *Client) AuditStatistics(ctx context.Context, startDate, endDate string) (*AuditStatisticsResponse, error) {
	now := time.Now()
	if startDate == "" {
		startDate = now.AddDate(0, 0, -30).Format(time.RFC3339)
	}
	if endDate == "" {
		endDate = now.Format(time.RFC3339)
	}

	body := map[string]string{
		"startDate": startDate,
		"endDate":   endDate,
	}

	var resp AuditStatisticsResponse
	if err := c.post(ctx, "/api/audit", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// get performs a GET request.
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req, result)
}

// post performs a POST request.
func (c *Client) post(ctx context.Context, path string, body, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.do(req, result)
}

// do executes a request.
func (c *Client) do(req *http.Request, result interface{}) error {
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(req.Context()); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.ConnectionError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return decodeError(resp.StatusCode, body)
	}

	if result != nil && len(body) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return apperrors.BadResponseError(err)
		}
	}

	return nil
}

// decodeError turns a non-2xx response into a typed error. Structured
// bodies become an *APIError; anything else is classified by status.
func decodeError(status int, body []byte) error {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && (apiErr.Code != "" || apiErr.Message != "") {
		apiErr.StatusCode = status
		return &apiErr
	}

	message := string(bytes.TrimSpace(body))
	if message == "" {
		message = http.StatusText(status)
	}
	return apperrors.New(apperrors.CodeForStatus(status), message)
}
