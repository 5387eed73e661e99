package httpapi

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jand6793/chat-website-backend/internal/common"
	"github.com/jand6793/chat-website-backend/internal/server/criteria"
	"github.com/jand6793/chat-website-backend/internal/server/query"
)

// bindUserCriteria reads the optional filter parameters of a users listing.
// Each filterable field takes a value parameter plus an exclude_<field>
// toggle; created and last_modified take exactly two timestamps forming an
// inclusive range.
func bindUserCriteria(c echo.Context) (criteria.User, error) {
	var crit criteria.User
	var err error

	if crit.ID, err = idFilter(c, "id"); err != nil {
		return crit, err
	}
	crit.FullName = patternFilter(c, "full_name")
	crit.Username = patternFilter(c, "username")
	crit.Description = patternFilter(c, "description")
	if crit.Created, err = rangeFilter(c, "created"); err != nil {
		return crit, err
	}
	if crit.LastModified, err = rangeFilter(c, "last_modified"); err != nil {
		return crit, err
	}
	if crit.Deleted, err = deletedParam(c); err != nil {
		return crit, err
	}
	if crit.SortBy, err = sortByParam(c, query.UserColumns); err != nil {
		return crit, err
	}

	return crit, nil
}

// bindMessageCriteria reads the optional filter parameters of a messages
// listing.
func bindMessageCriteria(c echo.Context) (criteria.Message, error) {
	var crit criteria.Message
	var err error

	if crit.ID, err = idFilter(c, "id"); err != nil {
		return crit, err
	}
	if crit.SourceUserID, err = idFilter(c, "source_user_id"); err != nil {
		return crit, err
	}
	if crit.TargetUserID, err = idFilter(c, "target_user_id"); err != nil {
		return crit, err
	}
	crit.Content = patternFilter(c, "content")
	if crit.Created, err = rangeFilter(c, "created"); err != nil {
		return crit, err
	}
	if crit.LastModified, err = rangeFilter(c, "last_modified"); err != nil {
		return crit, err
	}
	if crit.Deleted, err = deletedParam(c); err != nil {
		return crit, err
	}
	if crit.SortBy, err = sortByParam(c, query.MessageColumns); err != nil {
		return crit, err
	}

	return crit, nil
}

func idFilter(c echo.Context, name string) (criteria.Filter, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return criteria.Filter{}, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return criteria.Filter{}, fmt.Errorf("%w: %s must be a positive integer", common.ErrValidation, name)
	}

	return withExclude(c, name, criteria.Equals(id)), nil
}

func patternFilter(c echo.Context, name string) criteria.Filter {
	raw := c.QueryParam(name)
	if raw == "" {
		return criteria.Filter{}
	}
	return withExclude(c, name, criteria.Pattern(raw))
}

func rangeFilter(c echo.Context, name string) (criteria.Filter, error) {
	values := c.QueryParams()[name]
	if len(values) == 0 {
		return criteria.Filter{}, nil
	}
	if len(values) != 2 {
		return criteria.Filter{}, fmt.Errorf("%w: %s requires exactly two timestamps", common.ErrValidation, name)
	}

	lo, err := time.Parse(time.RFC3339, values[0])
	if err != nil {
		return criteria.Filter{}, fmt.Errorf("%w: %s has an invalid timestamp", common.ErrValidation, name)
	}
	hi, err := time.Parse(time.RFC3339, values[1])
	if err != nil {
		return criteria.Filter{}, fmt.Errorf("%w: %s has an invalid timestamp", common.ErrValidation, name)
	}

	return withExclude(c, name, criteria.Between(lo, hi)), nil
}

func withExclude(c echo.Context, name string, f criteria.Filter) criteria.Filter {
	if boolQueryParam(c, "exclude_"+name) {
		return f.Exclude()
	}
	return f
}

func deletedParam(c echo.Context) (*bool, error) {
	raw := c.QueryParam("deleted")
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: deleted must be a boolean", common.ErrValidation)
	}
	return &v, nil
}

// sortByParam accepts a comma-separated list of column names and rejects
// anything outside the table's column set. Sort names reach the statement
// text, so unknown names must never pass.
func sortByParam(c echo.Context, columns []string) (string, error) {
	raw := c.QueryParam("sort_by")
	if raw == "" {
		return "", nil
	}

	for _, name := range strings.Split(raw, ",") {
		if !slices.Contains(columns, strings.TrimSpace(name)) {
			return "", fmt.Errorf("%w: unknown sort column %q", common.ErrValidation, strings.TrimSpace(name))
		}
	}
	return raw, nil
}

// boolQueryParam reads an optional boolean toggle such as return_results.
func boolQueryParam(c echo.Context, name string) bool {
	v, err := strconv.ParseBool(c.QueryParam(name))
	return err == nil && v
}

// pathID reads a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", common.ErrValidation, name)
	}
	return id, nil
}
