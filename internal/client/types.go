package client

import "fmt"

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version,omitempty"`
	Uptime  float64           `json:"uptime,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// Document represents a processed document.
type Document struct {
	ID         string `json:"id"`
	Filename   string `json:"filename,omitempty"`
	FileType   string `json:"fileType,omitempty"`
	Size       int64  `json:"size,omitempty"`
	Status     string `json:"status,omitempty"`
	UploadedAt string `json:"uploadedAt,omitempty"`
}

// UploadResponse represents the result of a document upload.
type UploadResponse struct {
	Document Document `json:"document"`
	Message  string   `json:"message,omitempty"`
}

// QueryOptions tune a single query.
type QueryOptions struct {
	Limit             int     `json:"limit,omitempty"`
	Threshold         float64 `json:"threshold,omitempty"`
	IncludeReferences bool    `json:"includeReferences,omitempty"`
}

// QueryRequest is the body of a query call.
type QueryRequest struct {
	Query   string        `json:"query"`
	Options *QueryOptions `json:"options,omitempty"`
}

// Reference is a clause the decision engine cited.
type Reference struct {
	DocumentID string  `json:"documentId,omitempty"`
	ClauseID   string  `json:"clauseId,omitempty"`
	Text       string  `json:"text,omitempty"`
	Score      float64 `json:"score,omitempty"`
}

// QueryResponse represents a decision returned for a query.
// Field casing follows the NeuroDoc wire format.
type QueryResponse struct {
	Decision        *string     `json:"Decision"`
	ConfidenceScore float64     `json:"ConfidenceScore"`
	Justification   string      `json:"Justification,omitempty"`
	References      []Reference `json:"References,omitempty"`
}

// ListOptions filter a document listing.
type ListOptions struct {
	Limit    int
	Offset   int
	Search   string
	FileType string
}

// DocumentList represents a page of documents.
type DocumentList struct {
	Documents []Document `json:"documents"`
	Total     int        `json:"total,omitempty"`
}

// Clause represents one extracted clause of a document.
type Clause struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"documentId"`
	Text       string    `json:"text"`
	Embedding  []float64 `json:"embedding,omitempty"`
}

// ClauseList represents the clauses of a document.
type ClauseList struct {
	Clauses []Clause `json:"clauses"`
	Total   int      `json:"total,omitempty"`
}

// AuditOptions filter the audit trail.
type AuditOptions struct {
	Limit     int
	StartDate string
	EndDate   string
}

// AuditEntry is one recorded query and its decision.
type AuditEntry struct {
	ID         string  `json:"id"`
	Query      string  `json:"query"`
	Decision   string  `json:"decision,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
	CreatedAt  string  `json:"createdAt,omitempty"`
}

// AuditTrail represents a page of audit entries.
type AuditTrail struct {
	Entries []AuditEntry `json:"entries"`
	Total   int          `json:"total,omitempty"`
}

// AuditStatistics aggregates recorded queries over a period.
type AuditStatistics struct {
	TotalQueries      int            `json:"totalQueries"`
	AverageConfidence float64        `json:"averageConfidence"`
	Decisions         map[string]int `json:"decisions,omitempty"`
}

// AuditStatisticsResponse wraps audit statistics with the queried period.
type AuditStatisticsResponse struct {
	Statistics AuditStatistics `json:"statistics"`
	StartDate  string          `json:"startDate,omitempty"`
	EndDate    string          `json:"endDate,omitempty"`
}

// APIError represents a structured error response from the API.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}
