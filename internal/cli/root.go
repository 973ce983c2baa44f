// Package cli implements the neurodoc command-line interface.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/neurodoc/neurodoc-go/internal/client"
	"github.com/neurodoc/neurodoc-go/internal/config"
	"github.com/neurodoc/neurodoc-go/internal/pkg/logger"
	"github.com/neurodoc/neurodoc-go/internal/workflow"
)

// env holds everything a command needs at runtime.
type env struct {
	cfg    *config.Config
	client *client.Client
	log    *logger.Logger
}

// setup loads configuration and builds the API client for a command.
func setup(cmd *cobra.Command) (*env, error) {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	if !cfg.HasToken() {
		log.Warn("no JWT token configured; set NEURODOC_JWT_TOKEN or api.token")
	}

	c := client.New(client.Config{
		BaseURL:           cfg.API.BaseURL,
		Token:             cfg.API.Token,
		Timeout:           time.Duration(cfg.API.Timeout) * time.Second,
		RequestsPerSecond: cfg.API.RateLimit,
	})

	return &env{cfg: cfg, client: c, log: log}, nil
}

// queryOptions builds query options from configuration.
func (e *env) queryOptions() *client.QueryOptions {
	return &client.QueryOptions{
		Limit:             e.cfg.Query.Limit,
		Threshold:         e.cfg.Query.Threshold,
		IncludeReferences: e.cfg.Query.IncludeReferences,
	}
}

// workflow builds a workflow over the command's client.
func (e *env) workflow() *workflow.Workflow {
	return workflow.New(e.client, e.log, workflow.Options{
		QueryOptions: e.queryOptions(),
		SettleDelay:  time.Duration(e.cfg.Workflow.SettleDelay) * time.Second,
	})
}

// jsonOutput reports whether --format json was requested.
func jsonOutput(cmd *cobra.Command) bool {
	format, _ := cmd.Flags().GetString("format")
	return format == "json"
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// truncate shortens a string for one-line display.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// decisionText renders a nullable decision for display.
func decisionText(decision *string) string {
	if decision == nil || *decision == "" {
		return "unknown"
	}
	return *decision
}

// seconds formats a duration as fractional seconds.
func seconds(d time.Duration) string {
	return fmt.Sprintf("%.3fs", d.Seconds())
}
