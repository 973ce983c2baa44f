package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// NewBatchCmd creates the 'batch' command.
func NewBatchCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "batch [query...]",
		Short: "Run a batch of queries and report performance",
		Long: `Run a set of queries sequentially against the API, collecting a
per-query outcome and aggregate statistics (success rate, average
confidence, timing). Queries are given as arguments or read from a
file with one query per line.`,
		Example: `  neurodoc batch "cardiac surgery coverage" "maternity coverage"
  neurodoc batch --file queries.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			queries := args
			if file != "" {
				fromFile, err := readQueries(file)
				if err != nil {
					return err
				}
				queries = append(queries, fromFile...)
			}
			if len(queries) == 0 {
				return fmt.Errorf("no queries given; pass arguments or --file")
			}

			e, err := setup(cmd)
			if err != nil {
				return err
			}

			report, err := e.workflow().AnalyzePerformance(cmd.Context(), queries)
			if err != nil {
				return err
			}

			if jsonOutput(cmd) {
				return printJSON(report)
			}

			for i, o := range report.Outcomes {
				if o.Success {
					fmt.Printf("%d. %s\n   %s (confidence %.2f, %s)\n",
						i+1, truncate(o.Query, 60),
						decisionText(o.Decision), o.Confidence, seconds(o.ResponseTime))
				} else {
					fmt.Printf("%d. %s\n   failed: %s (%s)\n",
						i+1, truncate(o.Query, 60), o.Error, seconds(o.ResponseTime))
				}
			}

			s := report.Summary
			fmt.Println()
			fmt.Printf("Queries:            %d (%d successful)\n", s.TotalQueries, s.SuccessfulQueries)
			fmt.Printf("Success rate:       %.0f%%\n", s.SuccessRate*100)
			fmt.Printf("Average confidence: %.2f\n", s.AverageConfidence)
			fmt.Printf("Total time:         %s\n", seconds(s.TotalTime))
			fmt.Printf("Average time:       %s\n", seconds(s.AverageTime))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "file with one query per line")

	return cmd
}

// readQueries reads non-blank lines from a query file.
func readQueries(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening query file: %w", err)
	}
	defer f.Close()

	var queries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		queries = append(queries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}

	return queries, nil
}
