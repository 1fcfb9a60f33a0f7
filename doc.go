// Package jaslet is an asynchronous client for embedded SQLite databases.
//
// A Client owns exactly one connection to one database file. Every statement
// is executed by a single dedicated worker goroutine, in submission order, so
// the connection is never used concurrently no matter how many goroutines
// share the client. Query and Exec hand the statement to the worker and
// return a Future immediately; the caller decides if and when to wait.
//
// # Usage
//
//	db, err := jaslet.Open("my-database.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	res, err := db.Query("SELECT * FROM users WHERE age > ?", 18).Result()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, row := range res.Rows {
//	    name, _ := row.GetText("name")
//	    fmt.Println(name)
//	}
//
// # Result Types
//
// Query results carry the materialized rows, the column names in result-set
// order, and AffectedRows equal to the row count. Exec results carry the
// engine-reported affected-row count and last insert id, and never any rows.
//
// The SQL dialect, file format, and locking behavior belong entirely to the
// underlying engine (modernc.org/sqlite). jaslet performs no SQL validation
// of its own; malformed statements surface as rejected futures.
package jaslet
