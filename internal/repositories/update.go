package repositories

import (
	"errors"
	"fmt"
	"strings"

	"catalog-api/internal/utils"

	"github.com/jackc/pgx/v5"
)

// Changes maps column names to new values for a partial update.
type Changes map[string]any

var ErrNoChanges = errors.New("no columns to update")

// buildUpdate renders "UPDATE table SET a = $1, b = $2 WHERE key = $3".
// Column names come from allowed only, in its order; a key in changes that is
// not on the list is an error, never SQL text.
func buildUpdate(table, keyColumn string, allowed []string, changes Changes, id int64) (string, []any, error) {
	for col := range changes {
		if !utils.Contains(allowed, col) {
			return "", nil, fmt.Errorf("column %q is not updatable on %s", col, table)
		}
	}

	sets := make([]string, 0, len(changes))
	args := make([]any, 0, len(changes)+1)
	for _, col := range allowed {
		value, ok := changes[col]
		if !ok {
			continue
		}
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", pgx.Identifier{col}.Sanitize(), len(args)))
	}
	if len(sets) == 0 {
		return "", nil, ErrNoChanges
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = $%d",
		pgx.Identifier{table}.Sanitize(),
		strings.Join(sets, ", "),
		pgx.Identifier{keyColumn}.Sanitize(),
		len(args),
	)
	return query, args, nil
}
