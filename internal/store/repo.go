package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// AttemptEventData captures one evaluated answer for the audit log.
type AttemptEventData struct {
	SessionID  string
	ItemName   string
	Selected   []string
	CorrectSet []string
	Correct    bool
	Difficulty int
	Level      int
}

// AttemptRecord is a stored attempt event.
type AttemptRecord struct {
	ID        int
	Timestamp time.Time
	AttemptEventData
}

// AttemptStats aggregates the attempt log.
type AttemptStats struct {
	Total   int
	Correct int
}

// LLMEventData captures one text-generation call.
type LLMEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored text-generation event.
type LLMEventRecord struct {
	ID        int
	Timestamp time.Time
	LLMEventData
}

// LLMUsageRow aggregates token usage per purpose.
type LLMUsageRow struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendAttempt records an evaluated answer.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// QueryAttempts returns attempts, newest first.
	QueryAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error)

	// AttemptTotals aggregates the attempt log.
	AttemptTotals(ctx context.Context) (AttemptStats, error)

	// AppendLLMEvent records a text-generation call.
	AppendLLMEvent(ctx context.Context, data LLMEventData) error

	// QueryLLMEvents returns text-generation events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one event by ID, or nil when absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageRow, error)

	// ClearAll wipes the event log.
	ClearAll(ctx context.Context) error
}
