package messages

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jand6793/chat-website-backend/internal/common"
	"github.com/jand6793/chat-website-backend/internal/dbx"
	"github.com/jand6793/chat-website-backend/internal/server/criteria"
	"github.com/jand6793/chat-website-backend/internal/server/models"
	"github.com/jand6793/chat-website-backend/internal/server/query"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const table = string(query.TableMessages)

// Get selects messages matching the criteria, always restricted to rows
// where the caller is a participant. Unless the caller explicitly set the
// deleted filter, only live messages are returned.
func (r *PostgresRepository) Get(ctx context.Context, callerID int64, crit criteria.Message) dbx.ExecResult {
	if crit.Deleted == nil {
		crit.Deleted = criteria.Bool(false)
	}

	clauses := []criteria.Clause{criteria.CallerClause(table, callerID)}
	clauses = append(clauses, crit.Clauses(table)...)

	predicate, args := criteria.JoinAnd(clauses)
	stmt := query.Select(query.TableMessages, query.MessageColumns, predicate, criteria.OrderBy(table, crit.SortBy))

	return dbx.Exec(ctx, r.db, stmt, args, dbx.Options{Fetch: true})
}

// GetByID selects one message by id without the participant scope or the
// live-rows default. It backs the ownership check on update and delete,
// where an existing message owned by someone else must be told apart from a
// missing one, and a soft-deleted message must stay reachable so its sender
// can restore it.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) dbx.ExecResult {
	crit := criteria.Message{ID: criteria.Equals(id)}

	predicate, args := criteria.JoinAnd(crit.Clauses(table))
	stmt := query.Select(query.TableMessages, query.MessageColumns, predicate, "")

	return dbx.Exec(ctx, r.db, stmt, args, dbx.Options{Fetch: true})
}

// Create inserts a new message.
func (r *PostgresRepository) Create(ctx context.Context, message models.MessageToDB) dbx.ExecResult {
	columns := []string{"source_user_id", "target_user_id", "content"}
	args := []any{message.SourceUserID, message.TargetUserID, message.Content}

	stmt := query.Insert(query.TableMessages, columns, true)
	return dbx.Exec(ctx, r.db, stmt, args, dbx.Options{Fetch: true, Tx: true})
}

// Update applies the supplied properties to a single message. An update
// with nothing set is rejected.
func (r *PostgresRepository) Update(ctx context.Context, id int64, update models.MessageUpdate, returnResults bool) dbx.ExecResult {
	var columns []string
	var args []any

	if update.Content != nil {
		columns = append(columns, "content")
		args = append(args, *update.Content)
	}

	if len(columns) == 0 {
		return dbx.ExecResult{Err: fmt.Errorf("%w: no properties to update", common.ErrValidation)}
	}

	args = append(args, id)
	stmt := query.Update(query.TableMessages, columns, returnResults)
	return dbx.Exec(ctx, r.db, stmt, args, dbx.Options{Fetch: returnResults, Tx: true})
}

// Delete flips the soft-delete flag on a single message.
func (r *PostgresRepository) Delete(ctx context.Context, id int64, deleted bool, returnResults bool) dbx.ExecResult {
	stmt := query.SoftDelete(query.TableMessages, deleted, returnResults)
	return dbx.Exec(ctx, r.db, stmt, []any{id}, dbx.Options{Fetch: returnResults, Tx: true})
}
