// Package query builds the SQL statements used by the repositories. It is
// pure string construction, no I/O.
//
// Identifiers (schema, tables, columns) come only from the closed
// enumerations below, never from request input, so interpolating them into
// statement text is safe. Every value travels as a bound parameter; the only
// literals written into text are the trusted soft-delete booleans.
package query

import (
	"strconv"
	"strings"
)

// Schema is the single schema all tables live in.
const Schema = "chat"

// Table enumerates the known tables.
type Table string

const (
	TableUsers    Table = "users"
	TableMessages Table = "messages"
	TableFriends  Table = "friends"
)

// Base columns shared by every table.
var baseColumns = []string{"id", "created", "last_modified", "deleted"}

// UserColumns are the publicly readable users columns. The hashed_password
// column is appended only on the internal login path (see LoginColumns).
var UserColumns = append(append([]string{}, baseColumns...),
	"full_name", "username", "description")

// LoginColumns extends UserColumns with hashed_password for credential
// verification. Never used on the public read path.
var LoginColumns = append(append([]string{}, UserColumns...), "hashed_password")

// MessageColumns are the readable messages columns.
var MessageColumns = append(append([]string{}, baseColumns...),
	"source_user_id", "target_user_id", "content")

func qualified(table Table) string {
	return Schema + "." + string(table)
}

// Select builds a select over the table wrapped so the engine aggregates all
// matching rows into a single jsonb array value. The execution gateway then
// always reads at most one row. predicate and orderBy may be empty.
func Select(table Table, columns []string, predicate, orderBy string) string {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(columns, ", "))
	b.WriteString(" FROM ")
	b.WriteString(qualified(table))
	if predicate != "" {
		b.WriteString(" WHERE ")
		b.WriteString(predicate)
	}
	if orderBy != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(orderBy)
	}

	wrapped := "SELECT jsonb_agg(results) FROM (" + b.String() + ") results"
	return number(wrapped)
}

// Insert builds a parameterized insert of the given columns. When returning
// is set the statement yields the full inserted row as one jsonb value.
func Insert(table Table, columns []string, returning bool) string {
	placeholders := make([]string, len(columns))
	for i := range placeholders {
		placeholders[i] = "?"
	}

	stmt := "INSERT INTO " + qualified(table) +
		" (" + strings.Join(columns, ", ") + ")" +
		" VALUES (" + strings.Join(placeholders, ", ") + ")"
	if returning {
		stmt += " RETURNING to_jsonb(" + string(table) + ".*)"
	}

	return number(stmt)
}

// Update builds a partial update setting each supplied column to a
// placeholder plus last_modified, scoped to a single id. Argument order is
// the column values left to right, then the id.
func Update(table Table, columns []string, returning bool) string {
	sets := make([]string, 0, len(columns)+1)
	for _, c := range columns {
		sets = append(sets, c+" = ?")
	}
	sets = append(sets, "last_modified = current_timestamp")

	stmt := "UPDATE " + qualified(table) +
		" SET " + strings.Join(sets, ", ") +
		" WHERE id = ?"
	if returning {
		stmt += " RETURNING to_jsonb(" + string(table) + ".*)"
	}

	return number(stmt)
}

// SoftDelete builds the soft-delete update: it touches only the deleted
// column, written as a trusted literal, scoped to a single id. Passing
// deleted=false reverses a prior delete.
func SoftDelete(table Table, deleted bool, returning bool) string {
	flag := "false"
	if deleted {
		flag = "true"
	}

	stmt := "UPDATE " + qualified(table) +
		" SET deleted = " + flag +
		" WHERE id = ?"
	if returning {
		stmt += " RETURNING to_jsonb(" + string(table) + ".*)"
	}

	return number(stmt)
}

// number rewrites "?" placeholders to the $1..$n form pgx expects. Statement
// text never contains a literal question mark outside a placeholder, so a
// plain scan is sufficient.
func number(stmt string) string {
	var b strings.Builder
	b.Grow(len(stmt) + 8)

	n := 0
	for i := 0; i < len(stmt); i++ {
		if stmt[i] != '?' {
			b.WriteByte(stmt[i])
			continue
		}
		n++
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(n))
	}

	return b.String()
}
