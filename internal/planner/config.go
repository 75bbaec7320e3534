package planner

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of generation task sent to the planning
// collaborator.
type TaskType string

const (
	TaskStrategy   TaskType = "strategy"
	TaskMasterPlan TaskType = "master_plan"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides the global timeout when > 0
}

// Config holds all configuration for the planning collaborator.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns the collaborator config used when nothing is set.
// The collaborator is disabled by default; every caller must work from
// the fallback strategy alone.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  10000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskStrategy:   {Temperature: 0.2, MaxTokens: 1024, TimeoutMs: 8000},
			TaskMasterPlan: {Temperature: 0.3, MaxTokens: 4096, TimeoutMs: 30000},
		},
	}
}

// LoadConfig reads collaborator configuration from DLULU_PLANNER_*
// environment variables, falling back to defaults for unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("DLULU_PLANNER_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("DLULU_PLANNER_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("DLULU_PLANNER_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("DLULU_PLANNER_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("DLULU_PLANNER_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("DLULU_PLANNER_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	return cfg
}

// TaskTimeout returns the effective timeout for a task in milliseconds.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}
