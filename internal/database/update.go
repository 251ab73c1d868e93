package database

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrNoUpdatableFields is returned when the fields map contains nothing the
// allowed whitelist accepts. Callers treat it as a validation failure;
// anything else out of UpdateFields is a real database error.
var ErrNoUpdatableFields = errors.New("no updatable fields supplied")

// UpdateFields applies a partial update to a single row. The fields map is
// keyed by API field name and filtered through the allowed map (field name to
// column name), so the primary key and unknown fields can never be written.
// Nil values are skipped. Returns the number of rows affected.
func UpdateFields(db *sql.DB, table, idColumn, id string, fields map[string]any, allowed map[string]string) (int64, error) {
	var cols []string
	for field := range fields {
		if _, ok := allowed[field]; ok && fields[field] != nil {
			cols = append(cols, field)
		}
	}
	if len(cols) == 0 {
		return 0, ErrNoUpdatableFields
	}
	sort.Strings(cols)

	setClauses := make([]string, 0, len(cols)+1)
	args := make([]any, 0, len(cols)+2)
	for _, field := range cols {
		setClauses = append(setClauses, allowed[field]+" = ?")
		args = append(args, fields[field])
	}
	setClauses = append(setClauses, "updated_at = ?")
	args = append(args, time.Now().Unix())
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?", table, strings.Join(setClauses, ", "), idColumn)
	res, err := db.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// IsUniqueViolation reports whether the error is a primary key or unique
// constraint failure. Both the sqlite3 and libsql drivers surface this in the
// error text rather than a typed error.
func IsUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
