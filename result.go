package jaslet

// Result is the materialized outcome of one statement.
//
// For queries, Rows holds every result row in result-set order, Columns holds
// the column names in select order, and AffectedRows equals len(Rows). For
// execs, Rows and Columns are empty and AffectedRows/LastInsertID carry the
// engine-reported counts.
type Result struct {
	Columns      []string
	Rows         []Row
	AffectedRows int64
	LastInsertID int64
}

// IsEmpty reports whether the result has no rows.
func (r *Result) IsEmpty() bool {
	return len(r.Rows) == 0
}

// RowCount returns the number of materialized rows.
func (r *Result) RowCount() int {
	return len(r.Rows)
}

// First returns the first row. ok is false when the result is empty.
func (r *Result) First() (Row, bool) {
	if len(r.Rows) == 0 {
		return Row{}, false
	}
	return r.Rows[0], true
}
