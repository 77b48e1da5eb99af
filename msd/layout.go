package msd

import "errors"

// CheckLayout verifies that the file carries every table, column, index
// column and array a song file is expected to have. It returns nil for a
// complete file, otherwise the errors.Join of one *LayoutError per missing
// item. A summary file reports its arrays as missing.
func (f *File) CheckLayout() error {
	if f.closed {
		return ErrClosed
	}

	var errs []error
	tables := make(map[string]*Table, len(Groups))
	for _, g := range Groups {
		t, err := f.Table(TablePath(g))
		if err != nil {
			errs = append(errs, &LayoutError{Path: TablePath(g), Err: err})
			continue
		}
		tables[g] = t
	}

	checked := make(map[string]bool)
	hasColumn := func(t *Table, column string) {
		p := JoinFieldPath(t.Path(), column)
		if checked[p] {
			return
		}
		checked[p] = true
		// Column names come from the rows; an empty table has none to check.
		if t.NumRows() > 0 && t.FindColumn(column) < 0 {
			errs = append(errs, &LayoutError{Path: p, Err: ErrNotFound})
		}
	}

	for _, fld := range Fields {
		t := tables[fld.Group]
		if t == nil {
			continue
		}
		if !fld.IsArray() {
			hasColumn(t, fld.Name)
			continue
		}
		hasColumn(t, fld.Index)
		if _, err := f.store.Shape(fld.ArrayPath()); err != nil {
			errs = append(errs, &LayoutError{Path: fld.ArrayPath(), Err: err})
		}
	}

	return errors.Join(errs...)
}
