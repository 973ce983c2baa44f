package batch

import "time"

// Summarize reduces an ordered outcome sequence into batch statistics.
//
// It is total over all inputs: an empty sequence, or one with no
// successful outcomes, produces zero values for the derived averages
// rather than dividing by zero. AverageConfidence is computed over
// successful outcomes only; TotalTime and AverageTime count failures
// as well, since failed calls still consumed wall-clock time.
func Summarize(outcomes []QueryOutcome) Summary {
	summary := Summary{TotalQueries: len(outcomes)}
	if summary.TotalQueries == 0 {
		return summary
	}

	var confidenceSum float64
	for _, o := range outcomes {
		summary.TotalTime += o.ResponseTime
		if o.Success {
			summary.SuccessfulQueries++
			confidenceSum += o.Confidence
		}
	}

	summary.AverageTime = summary.TotalTime / time.Duration(summary.TotalQueries)
	summary.SuccessRate = float64(summary.SuccessfulQueries) / float64(summary.TotalQueries)

	if summary.SuccessfulQueries > 0 {
		summary.AverageConfidence = confidenceSum / float64(summary.SuccessfulQueries)
	}

	return summary
}
