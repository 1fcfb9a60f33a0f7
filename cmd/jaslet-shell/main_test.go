package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatementComplete(t *testing.T) {
	require.True(t, statementComplete("SELECT 1;"))
	require.True(t, statementComplete("SELECT 1; -- trailing"))
	require.False(t, statementComplete("SELECT 1"))
	require.False(t, statementComplete("INSERT INTO t VALUES ('a;b')"))
	require.True(t, statementComplete("INSERT INTO t VALUES ('a;b');"))
}

func TestIsQuery(t *testing.T) {
	require.True(t, isQuery("SELECT * FROM users;"))
	require.True(t, isQuery("  with x as (select 1) select * from x;"))
	require.True(t, isQuery("PRAGMA table_info(users);"))
	require.False(t, isQuery("INSERT INTO users VALUES (1);"))
	require.False(t, isQuery("CREATE TABLE t (id INTEGER);"))
}

func TestOneLine(t *testing.T) {
	require.Equal(t, "SELECT 1 FROM t;", oneLine("SELECT 1\n\tFROM   t;"))
	require.Equal(t, "", oneLine("   \n\t "))
}
