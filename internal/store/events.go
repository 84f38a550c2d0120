package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

type eventRepo struct {
	db *sql.DB
}

var _ EventRepo = (*eventRepo)(nil)

// Tag sets are stored comma-joined; tag values never contain commas.
const setSeparator = ","

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO attempt_events
		 (timestamp, session_id, item_name, selected, correct_set, correct, difficulty, level)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339),
		data.SessionID,
		data.ItemName,
		strings.Join(data.Selected, setSeparator),
		strings.Join(data.CorrectSet, setSeparator),
		boolToInt(data.Correct),
		data.Difficulty,
		data.Level,
	)
	if err != nil {
		return fmt.Errorf("insert attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error) {
	q := `SELECT id, timestamp, session_id, item_name, selected, correct_set, correct, difficulty, level
	      FROM attempt_events ORDER BY id DESC`
	args := []any{}
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var records []AttemptRecord
	for rows.Next() {
		var rec AttemptRecord
		var ts, selected, correctSet string
		var correct int
		if err := rows.Scan(&rec.ID, &ts, &rec.SessionID, &rec.ItemName,
			&selected, &correctSet, &correct, &rec.Difficulty, &rec.Level); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		rec.Timestamp, _ = time.Parse(time.RFC3339, ts)
		rec.Selected = splitSet(selected)
		rec.CorrectSet = splitSet(correctSet)
		rec.Correct = correct != 0
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *eventRepo) AttemptTotals(ctx context.Context) (AttemptStats, error) {
	var stats AttemptStats
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(correct), 0) FROM attempt_events`,
	).Scan(&stats.Total, &stats.Correct)
	if err != nil {
		return AttemptStats{}, fmt.Errorf("attempt totals: %w", err)
	}
	return stats, nil
}

func (r *eventRepo) AppendLLMEvent(ctx context.Context, data LLMEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_events
		 (timestamp, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, request_body, response_body)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339),
		data.Provider,
		data.Model,
		data.Purpose,
		data.InputTokens,
		data.OutputTokens,
		data.LatencyMs,
		boolToInt(data.Success),
		data.ErrorMessage,
		data.RequestBody,
		data.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("insert llm event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error) {
	q := `SELECT id, timestamp, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, request_body, response_body
	      FROM llm_events ORDER BY id DESC`
	args := []any{}
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	defer rows.Close()

	var records []LLMEventRecord
	for rows.Next() {
		rec, err := scanLLMEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, timestamp, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, request_body, response_body
		 FROM llm_events WHERE id = ?`, id)

	rec, err := scanLLMEvent(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return rec, err
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT purpose, COUNT(*), COALESCE(SUM(input_tokens), 0), COALESCE(SUM(output_tokens), 0), COALESCE(AVG(latency_ms), 0)
		 FROM llm_events GROUP BY purpose ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("query llm usage: %w", err)
	}
	defer rows.Close()

	var usage []LLMUsageRow
	for rows.Next() {
		var row LLMUsageRow
		var avg float64
		if err := rows.Scan(&row.Purpose, &row.Calls, &row.InputTokens, &row.OutputTokens, &avg); err != nil {
			return nil, fmt.Errorf("scan usage row: %w", err)
		}
		row.AvgLatencyMs = int64(avg)
		usage = append(usage, row)
	}
	return usage, rows.Err()
}

func (r *eventRepo) ClearAll(ctx context.Context) error {
	for _, table := range []string{"attempt_events", "llm_events"} {
		if _, err := r.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

func scanLLMEvent(scan func(dest ...any) error) (*LLMEventRecord, error) {
	var rec LLMEventRecord
	var ts string
	var success int
	err := scan(&rec.ID, &ts, &rec.Provider, &rec.Model, &rec.Purpose,
		&rec.InputTokens, &rec.OutputTokens, &rec.LatencyMs, &success,
		&rec.ErrorMessage, &rec.RequestBody, &rec.ResponseBody)
	if err != nil {
		return nil, err
	}
	rec.Timestamp, _ = time.Parse(time.RFC3339, ts)
	rec.Success = success != 0
	return &rec, nil
}

func splitSet(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, setSeparator)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
