package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
	"github.com/custodia-labs/vibeyf-cli/internal/core/ports/driven"
)

// timeLayout is fixed-width so completed_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// runStore implements driven.RunStore.
type runStore struct {
	store *Store
}

var _ driven.RunStore = (*runStore)(nil)

// Save stores or replaces a run.
func (s *runStore) Save(ctx context.Context, run *domain.RunRecord) error {
	responses, err := json.Marshal(toResponsesRow(run.Responses))
	if err != nil {
		return fmt.Errorf("marshalling responses: %w", err)
	}
	result, err := json.Marshal(toResultRow(run.Result))
	if err != nil {
		return fmt.Errorf("marshalling result: %w", err)
	}

	summary := run.Summary()
	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, completed_at, backend_url, answers, top_item, responses, result)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			started_at = excluded.started_at,
			completed_at = excluded.completed_at,
			backend_url = excluded.backend_url,
			answers = excluded.answers,
			top_item = excluded.top_item,
			responses = excluded.responses,
			result = excluded.result
	`,
		run.ID,
		formatTime(run.StartedAt),
		formatTime(run.CompletedAt),
		run.BackendURL,
		summary.Answers,
		summary.TopItem,
		string(responses),
		string(result),
	)
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	return nil
}

// Get retrieves a run by ID.
func (s *runStore) Get(ctx context.Context, id string) (*domain.RunRecord, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, started_at, completed_at, backend_url, responses, result
		FROM runs WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting run: %w", err)
	}
	return run, nil
}

// List returns runs newest first.
func (s *runStore) List(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, started_at, completed_at, backend_url, responses, result
		FROM runs ORDER BY completed_at DESC, id ASC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.RunRecord
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

// Delete removes a run.
func (s *runStore) Delete(ctx context.Context, id string) error {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting run: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*domain.RunRecord, error) {
	var (
		run                    domain.RunRecord
		startedAt, completedAt string
		responsesJSON          string
		resultJSON             string
	)
	if err := sc.Scan(&run.ID, &startedAt, &completedAt, &run.BackendURL, &responsesJSON, &resultJSON); err != nil {
		return nil, err
	}

	var err error
	if run.StartedAt, err = parseTime(startedAt); err != nil {
		return nil, fmt.Errorf("parsing started_at: %w", err)
	}
	if run.CompletedAt, err = parseTime(completedAt); err != nil {
		return nil, fmt.Errorf("parsing completed_at: %w", err)
	}

	var responses responsesRow
	if err := json.Unmarshal([]byte(responsesJSON), &responses); err != nil {
		return nil, fmt.Errorf("unmarshalling responses: %w", err)
	}
	run.Responses = responses.toDomain()

	var result resultRow
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("unmarshalling result: %w", err)
	}
	run.Result = result.toDomain()

	return &run, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
