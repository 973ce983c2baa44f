package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/neurodoc/neurodoc-go/internal/pkg/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.BaseURL != "http://localhost:3000" {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, "http://localhost:3000")
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, 30*time.Second)
	}
}

func TestClientNew(t *testing.T) {
	t.Run("default config", func(t *testing.T) {
		c := New(Config{})
		if c.baseURL != "http://localhost:3000" {
			t.Errorf("baseURL = %q, want %q", c.baseURL, "http://localhost:3000")
		}
		if c.userAgent != defaultUserAgent {
			t.Errorf("userAgent = %q, want %q", c.userAgent, defaultUserAgent)
		}
		if c.limiter != nil {
			t.Error("limiter should be nil when pacing is disabled")
		}
	})

	t.Run("custom config", func(t *testing.T) {
		c := New(Config{
			BaseURL:           "http://custom:9000",
			Timeout:           60 * time.Second,
			RequestsPerSecond: 5,
		})
		if c.baseURL != "http://custom:9000" {
			t.Errorf("baseURL = %q, want %q", c.baseURL, "http://custom:9000")
		}
		if c.limiter == nil {
			t.Error("limiter should be set when pacing is enabled")
		}
	})
}

func TestClientHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/health" {
			t.Errorf("path = %q, want %q", r.URL.Path, "/api/health")
		}
		if r.Method != http.MethodGet {
			t.Errorf("method = %q, want %q", r.Method, http.MethodGet)
		}
		if r.URL.Query().Get("detailed") != "true" {
			t.Errorf("detailed = %q, want %q", r.URL.Query().Get("detailed"), "true")
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-token" {
			t.Errorf("Authorization = %q, want %q", auth, "Bearer test-token")
		}
		if ua := r.Header.Get("User-Agent"); ua != defaultUserAgent {
			t.Errorf("User-Agent = %q, want %q", ua, defaultUserAgent)
		}

		if err := json.NewEncoder(w).Encode(HealthResponse{
			Status:  "healthy",
			Version: "1.0.0",
			Checks:  map[string]string{"database": "ok"},
		}); err != nil {
			t.Errorf("failed to encode response: %v", err)
		}
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL, Token: "test-token"})
	resp, err := c.Health(context.Background(), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Status != "healthy" {
		t.Errorf("Status = %q, want %q", resp.Status, "healthy")
	}
	if resp.Checks["database"] != "ok" {
		t.Errorf("Checks[database] = %q, want %q", resp.Checks["database"], "ok")
	}
}

func TestClientQuery(t *testing.T) {
	decision := "approved"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want %q", r.Method, http.MethodPost)
		}
		if r.URL.Path != "/api/query" {
			t.Errorf("path = %q, want %q", r.URL.Path, "/api/query")
		}

		var req QueryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}

		if req.Query != "knee surgery coverage" {
			t.Errorf("Query = %q, want %q", req.Query, "knee surgery coverage")
		}
		if req.Options == nil || req.Options.Limit != 5 {
			t.Errorf("Options = %+v, want limit 5", req.Options)
		}

		if err := json.NewEncoder(w).Encode(QueryResponse{
			Decision:        &decision,
			ConfidenceScore: 0.92,
			Justification:   "covered under section 4.2",
		}); err != nil {
			t.Errorf("failed to encode response: %v", err)
		}
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL})
	resp, err := c.Query(context.Background(), "knee surgery coverage", &QueryOptions{
		Limit:             5,
		Threshold:         0.7,
		IncludeReferences: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Decision == nil || *resp.Decision != "approved" {
		t.Errorf("Decision = %v, want approved", resp.Decision)
	}
	if resp.ConfidenceScore != 0.92 {
		t.Errorf("ConfidenceScore = %v, want 0.92", resp.ConfidenceScore)
	}
}

func TestClientQueryEmpty(t *testing.T) {
	c := New(Config{})
	_, err := c.Query(context.Background(), "", nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !apperrors.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestClientUpload(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "policy.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4 test"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want %q", r.Method, http.MethodPost)
		}
		if r.URL.Path != "/api/upload" {
			t.Errorf("path = %q, want %q", r.URL.Path, "/api/upload")
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("failed to read form file: %v", err)
		}
		defer file.Close()

		if header.Filename != "policy.pdf" {
			t.Errorf("Filename = %q, want %q", header.Filename, "policy.pdf")
		}

		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(UploadResponse{
			Document: Document{ID: "doc-42", Filename: "policy.pdf"},
			Message:  "uploaded",
		}); err != nil {
			t.Errorf("failed to encode response: %v", err)
		}
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL})
	resp, err := c.Upload(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Document.ID != "doc-42" {
		t.Errorf("Document.ID = %q, want %q", resp.Document.ID, "doc-42")
	}
}

func TestClientUploadMissingFile(t *testing.T) {
	c := New(Config{})
	_, err := c.Upload(context.Background(), "/nonexistent/file.pdf")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		t.Fatalf("expected *AppError, got %T", err)
	}
	if appErr.Code != apperrors.CodeFileMissing {
		t.Errorf("Code = %q, want %q", appErr.Code, apperrors.CodeFileMissing)
	}
}

func TestClientListDocuments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/documents" {
			t.Errorf("path = %q, want %q", r.URL.Path, "/api/documents")
		}

		q := r.URL.Query()
		if q.Get("limit") != "10" {
			t.Errorf("limit = %q, want %q", q.Get("limit"), "10")
		}
		if q.Get("search") != "policy" {
			t.Errorf("search = %q, want %q", q.Get("search"), "policy")
		}
		if q.Get("fileType") != "pdf" {
			t.Errorf("fileType = %q, want %q", q.Get("fileType"), "pdf")
		}

		if err := json.NewEncoder(w).Encode(DocumentList{
			Documents: []Document{
				{ID: "doc-1", Filename: "policy.pdf"},
				{ID: "doc-2", Filename: "terms.pdf"},
			},
			Total: 2,
		}); err != nil {
			t.Errorf("failed to encode response: %v", err)
		}
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL})
	list, err := c.ListDocuments(context.Background(), ListOptions{
		Limit:    10,
		Search:   "policy",
		FileType: "pdf",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(list.Documents) != 2 {
		t.Errorf("len(Documents) = %d, want %d", len(list.Documents), 2)
	}
	if list.Documents[0].ID != "doc-1" {
		t.Errorf("Documents[0].ID = %q, want %q", list.Documents[0].ID, "doc-1")
	}
}

func TestClientClauses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/clauses" {
			t.Errorf("path = %q, want %q", r.URL.Path, "/api/clauses")
		}

		q := r.URL.Query()
		if q.Get("doc_id") != "doc-42" {
			t.Errorf("doc_id = %q, want %q", q.Get("doc_id"), "doc-42")
		}
		if q.Get("include_embeddings") != "false" {
			t.Errorf("include_embeddings = %q, want %q", q.Get("include_embeddings"), "false")
		}

		if err := json.NewEncoder(w).Encode(ClauseList{
			Clauses: []Clause{
				{ID: "cl-1", DocumentID: "doc-42", Text: "Coverage includes..."},
			},
			Total: 1,
		}); err != nil {
			t.Errorf("failed to encode response: %v", err)
		}
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL})
	list, err := c.Clauses(context.Background(), "doc-42", 50, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(list.Clauses) != 1 {
		t.Fatalf("len(Clauses) = %d, want %d", len(list.Clauses), 1)
	}
	if list.Clauses[0].DocumentID != "doc-42" {
		t.Errorf("DocumentID = %q, want %q", list.Clauses[0].DocumentID, "doc-42")
	}
}

func TestClientClausesEmptyID(t *testing.T) {
	c := New(Config{})
	_, err := c.Clauses(context.Background(), "", 0, false)
	if !apperrors.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestClientAuditTrail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %q, want %q", r.Method, http.MethodGet)
		}
		if r.URL.Path != "/api/audit" {
			t.Errorf("path = %q, want %q", r.URL.Path, "/api/audit")
		}
		if r.URL.Query().Get("limit") != "20" {
			t.Errorf("limit = %q, want %q", r.URL.Query().Get("limit"), "20")
		}

		if err := json.NewEncoder(w).Encode(AuditTrail{
			Entries: []AuditEntry{
				{ID: "a1", Query: "cardiac surgery", Decision: "approved", Confidence: 0.9},
			},
			Total: 1,
		}); err != nil {
			t.Errorf("failed to encode response: %v", err)
		}
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL})
	trail, err := c.AuditTrail(context.Background(), AuditOptions{Limit: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(trail.Entries) != 1 {
		t.Fatalf("len(Entries) = %d, want %d", len(trail.Entries), 1)
	}
	if trail.Entries[0].Decision != "approved" {
		t.Errorf("Decision = %q, want %q", trail.Entries[0].Decision, "approved")
	}
}

func TestClientAuditStatistics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want %q", r.Method, http.MethodPost)
		}

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}

		// Defaults must be filled in for the trailing 30 days.
		if body["startDate"] == "" {
			t.Error("startDate is empty, want default")
		}
		if body["endDate"] == "" {
			t.Error("endDate is empty, want default")
		}

		if err := json.NewEncoder(w).Encode(AuditStatisticsResponse{
			Statistics: AuditStatistics{
				TotalQueries:      120,
				AverageConfidence: 0.81,
			},
		}); err != nil {
			t.Errorf("failed to encode response: %v", err)
		}
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL})
	stats, err := c.AuditStatistics(context.Background(), "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Statistics.TotalQueries != 120 {
		t.Errorf("TotalQueries = %d, want %d", stats.Statistics.TotalQueries, 120)
	}
	if stats.Statistics.AverageConfidence != 0.81 {
		t.Errorf("AverageConfidence = %v, want 0.81", stats.Statistics.AverageConfidence)
	}
}

func TestClientAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		if err := json.NewEncoder(w).Encode(APIError{
			Code:    "NOT_FOUND",
			Message: "document not found",
		}); err != nil {
			t.Errorf("failed to encode response: %v", err)
		}
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL})
	_, err := c.Clauses(context.Background(), "missing", 0, false)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Code != "NOT_FOUND" {
		t.Errorf("Code = %q, want %q", apiErr.Code, "NOT_FOUND")
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, http.StatusNotFound)
	}
}

func TestClientUnstructuredError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid token"))
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL, Token: "expired"})
	_, err := c.Health(context.Background(), false)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if !apperrors.IsUnauthorized(err) {
		t.Errorf("expected unauthorized error, got %v", err)
	}
}

func TestClientMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not-json"))
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL})
	_, err := c.Health(context.Background(), false)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestClientConnectionError(t *testing.T) {
	c := New(Config{
		BaseURL: "http://localhost:1", // nothing listens here
		Timeout: 1 * time.Second,
	})

	_, err := c.Health(context.Background(), false)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestClientNoAuthHeaderWithoutToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "" {
			t.Errorf("Authorization = %q, want empty", auth)
		}
		if err := json.NewEncoder(w).Encode(HealthResponse{Status: "healthy"}); err != nil {
			t.Errorf("failed to encode response: %v", err)
		}
	}))
	defer server.Close()

	c := New(Config{BaseURL: server.URL})
	if _, err := c.Health(context.Background(), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAPIErrorString(t *testing.T) {
	err := &APIError{
		StatusCode: 400,
		Code:       "INVALID_REQUEST",
		Message:    "bad query",
	}

	expected := "INVALID_REQUEST: bad query"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}

	bare := &APIError{StatusCode: 502, Message: "bad gateway"}
	if bare.Error() != "HTTP 502: bad gateway" {
		t.Errorf("Error() = %q, want %q", bare.Error(), "HTTP 502: bad gateway")
	}
}
