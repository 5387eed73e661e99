package dbx

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jand6793/chat-website-backend/internal/common"
)

// Record is one decoded result row.
type Record = map[string]any

// ExecResult is the uniform envelope returned by every store-facing call.
// Either Records holds the decoded rows and Err is nil, or Err carries the
// normalized failure and Records is empty.
type ExecResult struct {
	Records []Record
	Err     error
}

// Options selects the execution mode for a single statement.
type Options struct {
	// Fetch decodes the statement's result rows; false discards them.
	Fetch bool
	// Tx wraps the statement in an explicit transaction instead of
	// autocommit.
	Tx bool
}

// Exec runs one parameterized statement against the pool and returns the
// result envelope. Driver failures are caught at the statement boundary and
// normalized (see normalizeError); they never propagate as raw driver types.
//
// Statements produced by the query package return result rows as single
// jsonb columns: selects as one aggregated array, RETURNING rows as one
// object each. Exec decodes both shapes; a SQL NULL aggregate (no matching
// rows) becomes an empty record list, never nil-with-success ambiguity.
func Exec(ctx context.Context, db *sql.DB, stmt string, args []any, opts Options) ExecResult {
	var records []Record

	run := func(ctx context.Context, q DBTX) error {
		if !opts.Fetch {
			_, err := q.ExecContext(ctx, stmt, args...)
			return err
		}

		rows, err := q.QueryContext(ctx, stmt, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var raw []byte
			if err := rows.Scan(&raw); err != nil {
				return err
			}
			decoded, err := decodeColumn(raw)
			if err != nil {
				return err
			}
			records = append(records, decoded...)
		}
		return rows.Err()
	}

	var err error
	if opts.Tx {
		err = WithTx(ctx, db, nil, run)
	} else {
		err = run(ctx, db)
	}
	if err != nil {
		return ExecResult{Err: normalizeError(err)}
	}

	if records == nil {
		records = []Record{}
	}
	return ExecResult{Records: records}
}

// decodeColumn turns one jsonb column value into records. NULL (no rows
// matched the aggregate) decodes to nothing.
func decodeColumn(raw []byte) ([]Record, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	if raw[0] == '[' {
		var records []Record
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, fmt.Errorf("result decode error: %w", err)
		}
		return records, nil
	}

	var record Record
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("result decode error: %w", err)
	}
	return []Record{record}, nil
}

// normalizeError maps driver-level failures onto the common sentinel
// taxonomy. Uniqueness violations stay distinguishable so callers can map
// them to a conflict response; everything else collapses to ErrStore.
func normalizeError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%w: %s", common.ErrDuplicate, pgErr.ConstraintName)
		}
		return fmt.Errorf("%w: %s", common.ErrStore, pgErr.Message)
	}

	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrNotFound
	}

	return fmt.Errorf("%w: %v", common.ErrStore, err)
}
