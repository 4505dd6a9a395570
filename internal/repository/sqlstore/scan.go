package sqlstore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/1230harry/commercial-db-api/internal/entity"
)

// scanRows reads every row into a column-keyed map. The result is never nil,
// so an empty listing encodes as [] rather than null.
func scanRows(rows *sql.Rows) ([]entity.Row, error) {
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	out := make([]entity.Row, 0)
	for rows.Next() {
		values := make([]any, len(types))
		ptrs := make([]any, len(types))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(entity.Row, len(types))
		for i, ct := range types {
			row[ct.Name()] = normalize(values[i], ct.DatabaseTypeName())
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return out, nil
}

// normalize turns raw driver bytes into JSON-friendly values. Numeric columns
// that arrive as text (mysql, postgres NUMERIC) are kept exact as json.Number.
func normalize(v any, typeName string) any {
	b, ok := v.([]byte)
	if !ok {
		return v
	}

	s := string(b)
	if isNumericType(typeName) {
		if _, err := strconv.ParseFloat(s, 64); err == nil {
			return json.Number(s)
		}
	}
	return s
}

func isNumericType(typeName string) bool {
	t := strings.ToUpper(typeName)
	for _, kw := range []string{"INT", "DECIMAL", "NUMERIC", "FLOAT", "DOUBLE", "REAL"} {
		if strings.Contains(t, kw) {
			return true
		}
	}
	return false
}
