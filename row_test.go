package jaslet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValueKinds(t *testing.T) {
	now := time.Now()

	require.Equal(t, KindNull, newValue(nil).Kind())
	require.Equal(t, KindInt, newValue(int64(7)).Kind())
	require.Equal(t, KindFloat, newValue(3.5).Kind())
	require.Equal(t, KindText, newValue("hi").Kind())
	require.Equal(t, KindBool, newValue(true).Kind())
	require.Equal(t, KindBlob, newValue([]byte{1}).Kind())
	require.Equal(t, KindTime, newValue(now).Kind())
}

func TestValueAccessors(t *testing.T) {
	v := newValue(int64(42))
	i, ok := v.Int()
	require.True(t, ok)
	require.EqualValues(t, 42, i)

	// mismatched kinds never coerce
	_, ok = v.Float()
	require.False(t, ok)
	_, ok = v.Text()
	require.False(t, ok)
	_, ok = v.Bool()
	require.False(t, ok)
	_, ok = v.Blob()
	require.False(t, ok)
	_, ok = v.Time()
	require.False(t, ok)

	b, ok := newValue(true).Bool()
	require.True(t, ok)
	require.True(t, b)

	f, ok := newValue(2.25).Float()
	require.True(t, ok)
	require.Equal(t, 2.25, f)

	now := time.Now()
	ts, ok := newValue(now).Time()
	require.True(t, ok)
	require.True(t, now.Equal(ts))
}

func TestValueNull(t *testing.T) {
	require.True(t, Null.IsNull())
	require.Nil(t, Null.Any())
	require.Equal(t, "NULL", Null.String())

	_, ok := Null.Int()
	require.False(t, ok)
}

func TestValueBlobIsCopied(t *testing.T) {
	src := []byte{1, 2, 3}
	v := newValue(src)

	// mutating the source after construction must not leak through
	src[0] = 9
	b, ok := v.Blob()
	require.True(t, ok)
	require.Equal(t, []byte{1, 2, 3}, b)

	// mutating the returned copy must not change the value either
	b[1] = 9
	again, _ := v.Blob()
	require.Equal(t, []byte{1, 2, 3}, again)
}

func TestRowImmutableLookup(t *testing.T) {
	row := newRow([]string{"id", "name", "age"}, []any{int64(1), "Alice", nil})

	require.True(t, row.HasColumn("age"))
	require.Equal(t, []string{"age", "id", "name"}, row.ColumnNames())

	v, ok := row.Get("age")
	require.True(t, ok)
	require.True(t, v.IsNull())

	name, ok := row.GetText("name")
	require.True(t, ok)
	require.Equal(t, "Alice", name)

	_, ok = row.Get("missing")
	require.False(t, ok)
}
