// Package batch executes ordered sets of document queries and
// aggregates their outcomes into summary statistics.
package batch

import (
	"context"
	"errors"
	"time"
)

// Executor performs a single query against the document API.
// It returns the decision payload on success or an error on failure.
type Executor func(ctx context.Context, query string) (*Result, error)

// Runner executes batches of queries sequentially through an Executor.
//
// Queries are dispatched one at a time, in input order. The remote
// system may enforce per-caller rate limits and order-sensitive audit
// logging, so the runner never reorders or parallelizes calls.
type Runner struct {
	execute Executor
}

// NewRunner creates a runner backed by the given executor.
func NewRunner(execute Executor) (*Runner, error) {
	if execute == nil {
		return nil, errors.New("batch: executor must not be nil")
	}
	return &Runner{execute: execute}, nil
}

// Run executes each query in order and returns one outcome per query.
//
// Individual query failures are captured in the corresponding outcome
// and never abort the batch; outcome[i] always corresponds to
// queries[i]. An empty input yields an empty outcome slice.
func (r *Runner) Run(ctx context.Context, queries []string) []QueryOutcome {
	outcomes := make([]QueryOutcome, 0, len(queries))

	for _, query := range queries {
		outcomes = append(outcomes, r.runOne(ctx, query))
	}

	return outcomes
}

func (r *Runner) runOne(ctx context.Context, query string) QueryOutcome {
	outcome := QueryOutcome{Query: query}

	if query == "" {
		outcome.Error = "empty query"
		return outcome
	}

	start := time.Now()
	result, err := r.execute(ctx, query)
	outcome.ResponseTime = time.Since(start)

	if err != nil {
		outcome.Error = err.Error()
		if outcome.Error == "" {
			outcome.Error = "query failed"
		}
		return outcome
	}

	if result == nil {
		outcome.Error = "executor returned no result"
		return outcome
	}

	outcome.Success = true
	outcome.Decision = result.Decision
	outcome.Confidence = result.Confidence
	return outcome
}
