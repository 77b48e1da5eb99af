package msd

import (
	"fmt"
	"slices"
)

// Table is a decoded compound dataset: named columns, one row per song.
type Table struct {
	path    string
	columns []string
	rows    []map[string]interface{}
}

// Path returns the dataset path of the table.
func (t *Table) Path() string {
	return t.path
}

// Columns returns a copy of the column names.
func (t *Table) Columns() []string {
	return slices.Clone(t.columns)
}

// NumRows returns the number of rows (songs).
func (t *Table) NumRows() int {
	return len(t.rows)
}

// FindColumn returns the position of the named column, or -1.
func (t *Table) FindColumn(name string) int {
	for i, c := range t.columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Value returns the raw cell value.
func (t *Table) Value(row int, column string) (interface{}, error) {
	if t.FindColumn(column) < 0 {
		return nil, fmt.Errorf("column %s: %w", JoinFieldPath(t.path, column), ErrNotFound)
	}
	if row < 0 || row >= len(t.rows) {
		return nil, fmt.Errorf("row %d of %s (%d rows): %w", row, t.path, len(t.rows), ErrSongIndex)
	}
	v, ok := t.rows[row][column]
	if !ok {
		return nil, fmt.Errorf("column %s missing in row %d: %w", JoinFieldPath(t.path, column), row, ErrNotFound)
	}
	return v, nil
}

// Int returns an integer cell. Any integer width is accepted.
func (t *Table) Int(row int, column string) (int, error) {
	v, err := t.Value(row, column)
	if err != nil {
		return 0, err
	}
	n, ok := toInt(v)
	if !ok {
		return 0, fmt.Errorf("column %s is %T, want integer: %w", JoinFieldPath(t.path, column), v, ErrType)
	}
	return n, nil
}

// Float returns a floating-point cell. Integer cells are converted.
func (t *Table) Float(row int, column string) (float64, error) {
	v, err := t.Value(row, column)
	if err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	}
	if n, ok := toInt(v); ok {
		return float64(n), nil
	}
	return 0, fmt.Errorf("column %s is %T, want float: %w", JoinFieldPath(t.path, column), v, ErrType)
}

// String returns a string cell.
func (t *Table) String(row int, column string) (string, error) {
	v, err := t.Value(row, column)
	if err != nil {
		return "", err
	}
	switch x := v.(type) {
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	}
	return "", fmt.Errorf("column %s is %T, want string: %w", JoinFieldPath(t.path, column), v, ErrType)
}

// Segment returns the [start, end) range that row owns in a flat array of
// total rows, using the start offsets stored in column. The last row's
// segment runs to the end of the array.
func (t *Table) Segment(column string, row, total int) (start, end int, err error) {
	start, err = t.Int(row, column)
	if err != nil {
		return 0, 0, err
	}
	end = total
	if row+1 < len(t.rows) {
		end, err = t.Int(row+1, column)
		if err != nil {
			return 0, 0, err
		}
	}
	if start < 0 || start > end || end > total {
		return 0, 0, fmt.Errorf("%s row %d: segment [%d, %d) of %d: %w",
			JoinFieldPath(t.path, column), row, start, end, total, ErrBadIndex)
	}
	return start, end, nil
}

func toInt(v interface{}) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int8:
		return int(x), true
	case int16:
		return int(x), true
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	case uint8:
		return int(x), true
	case uint16:
		return int(x), true
	case uint32:
		return int(x), true
	case uint64:
		return int(x), true
	}
	return 0, false
}
