package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jand6793/chat-website-backend/internal/common"
	"github.com/jand6793/chat-website-backend/internal/dbx"
	"github.com/jand6793/chat-website-backend/internal/server/auth"
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

const table = string(query.TableUsers)

// Get selects users matching the criteria. Unless the caller explicitly set
// the deleted filter, only live accounts are returned. The login path reads
// the hashed_password column as well; the public path never does.
func (r *PostgresRepository) Get(ctx context.Context, crit criteria.User, isLogin bool) dbx.ExecResult {
	if crit.Deleted == nil {
		crit.Deleted = criteria.Bool(false)
	}

	columns := query.UserColumns
	if isLogin {
		columns = query.LoginColumns
	}

	predicate, args := criteria.JoinAnd(crit.Clauses(table))
	stmt := query.Select(query.TableUsers, columns, predicate, criteria.OrderBy(table, crit.SortBy))

	return dbx.Exec(ctx, r.db, stmt, args, dbx.Options{Fetch: true})
}

// GetByIDs selects the live users with the given ids.
func (r *PostgresRepository) GetByIDs(ctx context.Context, ids []int64) dbx.ExecResult {
	if len(ids) == 0 {
		return dbx.ExecResult{Records: []dbx.Record{}}
	}

	clauses := []criteria.Clause{criteria.In(table, "id", ids)}
	clauses = append(clauses, criteria.User{Deleted: criteria.Bool(false)}.Clauses(table)...)

	predicate, args := criteria.JoinAnd(clauses)
	stmt := query.Select(query.TableUsers, query.UserColumns, predicate, criteria.OrderBy(table, "id"))

	return dbx.Exec(ctx, r.db, stmt, args, dbx.Options{Fetch: true})
}

// Create inserts a new account, hashing the password before it reaches the
// store. The returned record never contains the hash.
func (r *PostgresRepository) Create(ctx context.Context, user models.UserCreate) dbx.ExecResult {
	hash, err := auth.HashPassword(user.Password)
	if err != nil {
		return dbx.ExecResult{Err: hashError(err)}
	}

	columns := []string{"full_name", "username", "description", "hashed_password"}
	args := []any{user.FullName, user.Username, user.Description, hash}

	stmt := query.Insert(query.TableUsers, columns, true)
	result := dbx.Exec(ctx, r.db, stmt, args, dbx.Options{Fetch: true, Tx: true})

	return stripHashes(result)
}

// Update applies the supplied properties to a single account. A new
// password is re-hashed here. An update with nothing set is rejected.
func (r *PostgresRepository) Update(ctx context.Context, id int64, update models.UserUpdate, returnResults bool) dbx.ExecResult {
	var columns []string
	var args []any

	if update.FullName != nil {
		columns = append(columns, "full_name")
		args = append(args, *update.FullName)
	}
	if update.Description != nil {
		columns = append(columns, "description")
		args = append(args, *update.Description)
	}
	if update.Password != nil {
		hash, err := auth.HashPassword(*update.Password)
		if err != nil {
			return dbx.ExecResult{Err: hashError(err)}
		}
		columns = append(columns, "hashed_password")
		args = append(args, hash)
	}

	if len(columns) == 0 {
		return dbx.ExecResult{Err: fmt.Errorf("%w: no properties to update", common.ErrValidation)}
	}

	args = append(args, id)
	stmt := query.Update(query.TableUsers, columns, returnResults)
	result := dbx.Exec(ctx, r.db, stmt, args, dbx.Options{Fetch: returnResults, Tx: true})

	return stripHashes(result)
}

// Delete flips the soft-delete flag on a single account. Repeating the call
// leaves the row unchanged.
func (r *PostgresRepository) Delete(ctx context.Context, id int64, deleted bool, returnResults bool) dbx.ExecResult {
	stmt := query.SoftDelete(query.TableUsers, deleted, returnResults)
	result := dbx.Exec(ctx, r.db, stmt, []any{id}, dbx.Options{Fetch: returnResults, Tx: true})

	return stripHashes(result)
}

// stripHashes removes the hashed_password key from RETURNING records, which
// carry the full row.
// hashError keeps an over-long-password rejection as a validation error;
// any other bcrypt failure is an internal fault.
func hashError(err error) error {
	if errors.Is(err, common.ErrValidation) {
		return err
	}
	return fmt.Errorf("%w: %v", common.ErrStore, err)
}

func stripHashes(result dbx.ExecResult) dbx.ExecResult {
	for _, record := range result.Records {
		delete(record, "hashed_password")
	}
	return result
}
