package batch

import "time"

// Result is the payload an executor returns for a successful query.
type Result struct {
	// Decision is the decision string returned by the document API.
	// It may be nil when the API could not reach a decision.
	Decision *string `json:"decision"`

	// Confidence is the confidence score as reported by the API.
	// Expected range is [0,1] but the value is passed through as received.
	Confidence float64 `json:"confidence"`
}

// QueryOutcome records the result of one query attempt.
// Exactly one of the success fields (Decision, Confidence) or Error is
// populated; ResponseTime is always set once the attempt completes.
type QueryOutcome struct {
	Query        string        `json:"query"`
	Success      bool          `json:"success"`
	Decision     *string       `json:"decision,omitempty"`
	Confidence   float64       `json:"confidence,omitempty"`
	Error        string        `json:"error,omitempty"`
	ResponseTime time.Duration `json:"response_time"`
}

// Summary aggregates metrics across a completed batch.
type Summary struct {
	TotalQueries      int           `json:"total_queries"`
	SuccessfulQueries int           `json:"successful_queries"`
	TotalTime         time.Duration `json:"total_time"`
	AverageTime       time.Duration `json:"average_time"`
	SuccessRate       float64       `json:"success_rate"`
	AverageConfidence float64       `json:"average_confidence"`
}
