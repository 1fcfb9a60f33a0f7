package jaslet

import (
	"fmt"
	"sort"
	"time"
)

// Kind tags the dynamic type of a column value.
type Kind int

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindText
	KindBool
	KindBlob
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	case KindBlob:
		return "blob"
	case KindTime:
		return "time"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is an immutable tagged union over the types the engine hands back for
// a column: NULL, integer, real, text, boolean, blob, or time.
type Value struct {
	kind Kind
	v    any
}

// Null is the SQL NULL value.
var Null = Value{kind: KindNull}

// newValue normalizes a scanned driver value into a tagged Value. The
// database/sql driver contract limits inputs to nil, int64, float64, string,
// []byte, bool, and time.Time.
func newValue(v any) Value {
	switch tv := v.(type) {
	case nil:
		return Null
	case int64:
		return Value{kind: KindInt, v: tv}
	case float64:
		return Value{kind: KindFloat, v: tv}
	case string:
		return Value{kind: KindText, v: tv}
	case []byte:
		b := make([]byte, len(tv))
		copy(b, tv)
		return Value{kind: KindBlob, v: b}
	case bool:
		return Value{kind: KindBool, v: tv}
	case time.Time:
		return Value{kind: KindTime, v: tv}
	default:
		return Value{kind: KindText, v: fmt.Sprint(tv)}
	}
}

// Kind reports the tag of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is SQL NULL.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Int returns the integer payload. ok is false for any other kind; no
// coercion is attempted.
func (v Value) Int() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.v.(int64), true
}

// Float returns the real payload. ok is false for any other kind.
func (v Value) Float() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.v.(float64), true
}

// Text returns the text payload. ok is false for any other kind.
func (v Value) Text() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.v.(string), true
}

// Bool returns the boolean payload. ok is false for any other kind.
func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.v.(bool), true
}

// Blob returns a copy of the blob payload. ok is false for any other kind.
func (v Value) Blob() ([]byte, bool) {
	if v.kind != KindBlob {
		return nil, false
	}
	src := v.v.([]byte)
	b := make([]byte, len(src))
	copy(b, src)
	return b, true
}

// Time returns the time payload. ok is false for any other kind.
func (v Value) Time() (time.Time, bool) {
	if v.kind != KindTime {
		return time.Time{}, false
	}
	return v.v.(time.Time), true
}

// Any returns the untagged payload, or nil for NULL.
func (v Value) Any() any { return v.v }

func (v Value) String() string {
	if v.kind == KindNull {
		return "NULL"
	}
	return fmt.Sprintf("%v", v.v)
}

// Row is one materialized result row: a name to value mapping. Rows are
// immutable once built and independent of the connection that produced them.
type Row struct {
	columns map[string]Value
}

func newRow(names []string, values []any) Row {
	columns := make(map[string]Value, len(names))
	for i, name := range names {
		columns[name] = newValue(values[i])
	}
	return Row{columns: columns}
}

// Get returns the column value. ok is false when the column is absent.
func (r Row) Get(name string) (Value, bool) {
	v, ok := r.columns[name]
	return v, ok
}

// GetText returns the column as text. ok is false when the column is absent
// or holds a different kind.
func (r Row) GetText(name string) (string, bool) {
	v, ok := r.columns[name]
	if !ok {
		return "", false
	}
	return v.Text()
}

// GetInt returns the column as an integer.
func (r Row) GetInt(name string) (int64, bool) {
	v, ok := r.columns[name]
	if !ok {
		return 0, false
	}
	return v.Int()
}

// GetFloat returns the column as a real number.
func (r Row) GetFloat(name string) (float64, bool) {
	v, ok := r.columns[name]
	if !ok {
		return 0, false
	}
	return v.Float()
}

// GetBool returns the column as a boolean.
func (r Row) GetBool(name string) (bool, bool) {
	v, ok := r.columns[name]
	if !ok {
		return false, false
	}
	return v.Bool()
}

// GetBlob returns the column as a blob.
func (r Row) GetBlob(name string) ([]byte, bool) {
	v, ok := r.columns[name]
	if !ok {
		return nil, false
	}
	return v.Blob()
}

// GetTime returns the column as a time.
func (r Row) GetTime(name string) (time.Time, bool) {
	v, ok := r.columns[name]
	if !ok {
		return time.Time{}, false
	}
	return v.Time()
}

// ColumnNames returns the column names of the row, sorted.
func (r Row) ColumnNames() []string {
	names := make([]string, 0, len(r.columns))
	for name := range r.columns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasColumn reports whether the row contains the named column.
func (r Row) HasColumn(name string) bool {
	_, ok := r.columns[name]
	return ok
}
