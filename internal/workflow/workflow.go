// Package workflow chains NeuroDoc API calls into higher-level operations.
package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/neurodoc/neurodoc-go/internal/batch"
	"github.com/neurodoc/neurodoc-go/internal/client"
	"github.com/neurodoc/neurodoc-go/internal/pkg/logger"
)

// Workflow runs multi-step operations against the NeuroDoc API.
type Workflow struct {
	client      *client.Client
	log         *logger.Logger
	queryOpts   *client.QueryOptions
	settleDelay time.Duration
}

// Options configure a workflow.
type Options struct {
	// QueryOptions applied to every query. Nil uses server defaults.
	QueryOptions *client.QueryOptions

	// SettleDelay is the wait between uploading a document and querying
	// it, giving the server time to extract and embed clauses.
	SettleDelay time.Duration
}

// New creates a workflow over the given client.
func New(c *client.Client, log *logger.Logger, opts Options) *Workflow {
	if log == nil {
		log = logger.Default()
	}
	return &Workflow{
		client:      c,
		log:         log,
		queryOpts:   opts.QueryOptions,
		settleDelay: opts.SettleDelay,
	}
}

// ProcessResult is the result of an upload-then-query workflow.
type ProcessResult struct {
	DocumentID string                 `json:"document_id"`
	Upload     *client.UploadResponse `json:"upload"`
	Query      *client.QueryResponse  `json:"query"`
}

// ProcessDocumentAndQuery uploads a document, waits for processing, and
// queries it.
func (w *Workflow) ProcessDocumentAndQuery(ctx context.Context, path, query string) (*ProcessResult, error) {
	w.log.Info("uploading document", "path", path)

	upload, err := w.client.Upload(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("uploading document: %w", err)
	}

	docLog := w.log.WithDocument(upload.Document.ID)
	docLog.Info("document uploaded")

	if w.settleDelay > 0 {
		select {
		case <-time.After(w.settleDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	docLog.Info("querying document", "query", query)
	resp, err := w.client.Query(ctx, query, w.queryOpts)
	if err != nil {
		return nil, fmt.Errorf("querying document: %w", err)
	}

	return &ProcessResult{
		DocumentID: upload.Document.ID,
		Upload:     upload,
		Query:      resp,
	}, nil
}

// PerformanceReport holds per-query outcomes plus batch statistics.
type PerformanceReport struct {
	Outcomes []batch.QueryOutcome `json:"results"`
	Summary  batch.Summary        `json:"summary"`
}

// AnalyzePerformance runs the queries sequentially through the API and
// aggregates timing and confidence statistics. Individual query
// failures are recorded in the report, not returned as errors.
func (w *Workflow) AnalyzePerformance(ctx context.Context, queries []string) (*PerformanceReport, error) {
	runner, err := batch.NewRunner(w.executeQuery)
	if err != nil {
		return nil, err
	}

	w.log.Info("running query batch", "queries", len(queries))
	outcomes := runner.Run(ctx, queries)
	summary := batch.Summarize(outcomes)

	w.log.Info("batch complete",
		"successful", summary.SuccessfulQueries,
		"total", summary.TotalQueries,
		"total_time", summary.TotalTime)

	return &PerformanceReport{
		Outcomes: outcomes,
		Summary:  summary,
	}, nil
}

// executeQuery adapts the API client to the batch executor contract.
func (w *Workflow) executeQuery(ctx context.Context, query string) (*batch.Result, error) {
	resp, err := w.client.Query(ctx, query, w.queryOpts)
	if err != nil {
		return nil, err
	}

	return &batch.Result{
		Decision:   resp.Decision,
		Confidence: resp.ConfidenceScore,
	}, nil
}
