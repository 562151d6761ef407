package repository

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// timeLayout is the storage layout for timestamps. Values are always UTC
// with second precision so that text comparison orders them correctly.
const timeLayout = time.RFC3339

// formatTime converts t to its storage form.
func formatTime(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(timeLayout)
}

// parseTime parses a stored timestamp, naming the column on failure.
func parseTime(column, s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", column, err)
	}
	return t, nil
}

// nowUTC returns the current UTC time at storage precision.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// encodeJSON marshals v for a JSON text column. A nil slice is stored as [].
func encodeJSON(column string, v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", column, err)
	}
	if string(b) == "null" {
		return "[]", nil
	}
	return string(b), nil
}

// decodeJSON unmarshals a JSON text column into v.
func decodeJSON(column, s string, v any) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(s), v); err != nil {
		return fmt.Errorf("decoding %s: %w", column, err)
	}
	return nil
}

// whereTeacher appends an optional teacher filter to a query that already
// has a WHERE clause.
func whereTeacher(query string, args []any, teacherID string) (string, []any) {
	if teacherID == "" {
		return query, args
	}
	return query + " AND teacher_id = ?", append(args, teacherID)
}
