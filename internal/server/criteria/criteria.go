// Package criteria describes which rows a list/filter operation should
// select. Every filterable column gets an optional Filter; a set filter
// compiles into a Clause that carries its predicate fragment together with
// the values bound to its placeholders, so placeholder order and value order
// cannot drift apart. Placeholders are written as "?" and renumbered by the
// query builder.
package criteria

import (
	"strings"
	"time"
)

type op int

const (
	opAbsent op = iota
	opEquals
	opPattern
	opRange
)

// Filter is one optional condition on a single column. The zero value is
// absent: it emits no clause and binds no value.
type Filter struct {
	op      op
	value   any
	lo, hi  time.Time
	exclude bool
}

// Equals matches rows where the column equals v.
func Equals(v any) Filter {
	return Filter{op: opEquals, value: v}
}

// Pattern matches rows where the column contains s (SIMILAR TO with the
// value wrapped in %...%). The value is always bound, never interpolated.
func Pattern(s string) Filter {
	return Filter{op: opPattern, value: s}
}

// Between matches rows where the column lies in [lo, hi], inclusive on both
// ends. Compiles to a single clause with two bound values.
func Between(lo, hi time.Time) Filter {
	return Filter{op: opRange, lo: lo, hi: hi}
}

// Exclude returns a copy of the filter that negates its whole clause.
func (f Filter) Exclude() Filter {
	f.exclude = true
	return f
}

// IsZero reports whether the filter is absent.
func (f Filter) IsZero() bool {
	return f.op == opAbsent
}

// Clause pairs a predicate fragment with the values bound to its "?"
// placeholders, in left-to-right order.
type Clause struct {
	SQL  string
	Args []any
}

// Clause compiles the filter against table.column. The second return value
// is false for an absent filter.
func (f Filter) Clause(table, column string) (Clause, bool) {
	if f.op == opAbsent {
		return Clause{}, false
	}

	col := table + "." + column

	var c Clause
	switch f.op {
	case opEquals:
		c = Clause{SQL: "(" + col + " = ?)", Args: []any{f.value}}
	case opPattern:
		c = Clause{SQL: "(" + col + " SIMILAR TO ?)", Args: []any{"%" + f.value.(string) + "%"}}
	case opRange:
		c = Clause{SQL: "(" + col + " >= ? AND " + col + " <= ?)", Args: []any{f.lo, f.hi}}
	}

	if f.exclude {
		c.SQL = "(NOT " + c.SQL + ")"
	}

	return c, true
}

// deletedClause emits the tri-state soft-delete condition. nil means no
// clause. The boolean is a trusted literal from our own code, not user
// input, so it is written into the statement text rather than bound.
func deletedClause(table string, deleted *bool) (Clause, bool) {
	if deleted == nil {
		return Clause{}, false
	}
	if *deleted {
		return Clause{SQL: "(" + table + ".deleted = true)"}, true
	}
	return Clause{SQL: "(" + table + ".deleted = false)"}, true
}

// CallerClause restricts messages to rows where the caller is either
// participant.
func CallerClause(table string, callerID int64) Clause {
	return Clause{
		SQL:  "(" + table + ".source_user_id = ? OR " + table + ".target_user_id = ?)",
		Args: []any{callerID, callerID},
	}
}

// In matches rows where the column equals any of the ids.
func In(table, column string, ids []int64) Clause {
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}
	return Clause{
		SQL:  "(" + table + "." + column + " IN (" + strings.Join(placeholders, ", ") + "))",
		Args: args,
	}
}

// JoinAnd combines clauses with logical AND and unzips them into the final
// predicate string and its bound values. This is the only place the
// (clause, value) pairs are split.
func JoinAnd(clauses []Clause) (string, []any) {
	if len(clauses) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(clauses))
	var args []any
	for _, c := range clauses {
		parts = append(parts, c.SQL)
		args = append(args, c.Args...)
	}

	return strings.Join(parts, " AND "), args
}

// OrderBy turns a comma-separated sort list into an ORDER BY expression with
// every name prefixed by the table. Empty input yields no ordering.
func OrderBy(table, sortBy string) string {
	if sortBy == "" {
		return ""
	}

	names := strings.Split(sortBy, ",")
	for i, n := range names {
		names[i] = table + "." + strings.TrimSpace(n)
	}

	return strings.Join(names, ", ")
}

// User holds the optional filters for users queries.
type User struct {
	ID           Filter
	FullName     Filter
	Username     Filter
	Description  Filter
	Created      Filter
	LastModified Filter
	Deleted      *bool
	SortBy       string
}

// Clauses compiles the set filters in the fixed column order (id, entity
// columns, created, last_modified, deleted) so the query text is stable.
func (c User) Clauses(table string) []Clause {
	return collect(table, []fieldFilter{
		{"id", c.ID},
		{"full_name", c.FullName},
		{"username", c.Username},
		{"description", c.Description},
		{"created", c.Created},
		{"last_modified", c.LastModified},
	}, c.Deleted)
}

// Message holds the optional filters for messages queries.
type Message struct {
	ID           Filter
	SourceUserID Filter
	TargetUserID Filter
	Content      Filter
	Created      Filter
	LastModified Filter
	Deleted      *bool
	SortBy       string
}

// Clauses compiles the set filters in the fixed column order.
func (c Message) Clauses(table string) []Clause {
	return collect(table, []fieldFilter{
		{"id", c.ID},
		{"source_user_id", c.SourceUserID},
		{"target_user_id", c.TargetUserID},
		{"content", c.Content},
		{"created", c.Created},
		{"last_modified", c.LastModified},
	}, c.Deleted)
}

type fieldFilter struct {
	column string
	filter Filter
}

func collect(table string, fields []fieldFilter, deleted *bool) []Clause {
	var clauses []Clause
	for _, f := range fields {
		if c, ok := f.filter.Clause(table, f.column); ok {
			clauses = append(clauses, c)
		}
	}
	if c, ok := deletedClause(table, deleted); ok {
		clauses = append(clauses, c)
	}
	return clauses
}

// Bool is a convenience for the tri-state Deleted field.
func Bool(v bool) *bool {
	return &v
}
