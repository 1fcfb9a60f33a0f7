package jaslet

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

// jobQueueSize bounds the statement backlog. Submission only blocks once this
// many statements are already scheduled ahead of the worker.
const jobQueueSize = 256

type job struct {
	sql    string
	params []any
	query  bool
	future *Future
}

// Client owns a single connection to an SQLite database file and the single
// worker goroutine through which every statement is funneled. Statements run
// in strict submission order; the connection is only ever touched by the
// worker. The Client itself is safe for concurrent use.
type Client struct {
	db   *sql.DB
	conn *sql.Conn

	jobs    chan job
	drained chan struct{}

	mu     sync.Mutex
	closed bool
}

// Open opens the SQLite database at path, creating the file if it does not
// exist, and starts the statement worker.
func Open(path string) (*Client, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, newError(PhaseConnect, fmt.Sprintf("open database %q", path), err)
	}
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	conn, err := db.Conn(ctx)
	if err != nil {
		_ = db.Close()
		return nil, newError(PhaseConnect, fmt.Sprintf("connect to database %q", path), err)
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		_ = db.Close()
		return nil, newError(PhaseConnect, fmt.Sprintf("ping database %q", path), err)
	}

	c := &Client{
		db:      db,
		conn:    conn,
		jobs:    make(chan job, jobQueueSize),
		drained: make(chan struct{}),
	}
	go c.run()
	return c, nil
}

// Query schedules a read statement and returns its future. Parameters bind
// positionally to ? placeholders; validation of the statement text and of the
// placeholder count is left entirely to the engine.
func (c *Client) Query(sqlText string, params ...any) *Future {
	return c.submit(true, sqlText, params)
}

// Exec schedules a write or DDL statement and returns its future. The
// resolved result never carries rows, only the engine-reported affected-row
// count and last insert id.
func (c *Client) Exec(sqlText string, params ...any) *Future {
	return c.submit(false, sqlText, params)
}

func (c *Client) submit(query bool, sqlText string, params []any) *Future {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return rejectedFuture(newError(PhaseExecute, "statement rejected", ErrClosed))
	}

	f := newFuture()
	// Sending under the lock keeps the send ordered with Close, which closes
	// the channel only after it has marked the client closed.
	c.jobs <- job{sql: sqlText, params: params, query: query, future: f}
	return f
}

// Close stops accepting statements, lets the already-scheduled backlog drain,
// then closes the connection. Close is idempotent: second and later calls
// return nil without touching the connection.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	close(c.jobs)
	c.mu.Unlock()

	<-c.drained

	connErr := c.conn.Close()
	dbErr := c.db.Close()
	if connErr != nil {
		return newError(PhaseClose, "close database", connErr)
	}
	if dbErr != nil {
		return newError(PhaseClose, "close database", dbErr)
	}
	return nil
}

// run is the worker loop. It exits when Close closes the job channel and the
// backlog is drained.
func (c *Client) run() {
	defer close(c.drained)
	for j := range c.jobs {
		if j.query {
			j.future.resolve(c.runQuery(j.sql, j.params))
		} else {
			j.future.resolve(c.runExec(j.sql, j.params))
		}
	}
}

func (c *Client) runQuery(sqlText string, params []any) (*Result, error) {
	rows, err := c.conn.QueryContext(context.Background(), sqlText, params...)
	if err != nil {
		return nil, newError(PhaseExecute, "query failed", err)
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return nil, newError(PhaseExecute, "read result columns", err)
	}

	res := &Result{Columns: columns}
	values := make([]any, len(columns))
	scan := make([]any, len(columns))
	for i := range values {
		scan[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(scan...); err != nil {
			return nil, newError(PhaseExecute, "scan row", err)
		}
		res.Rows = append(res.Rows, newRow(columns, values))
	}
	if err := rows.Err(); err != nil {
		return nil, newError(PhaseExecute, "read rows", err)
	}

	res.AffectedRows = int64(len(res.Rows))
	return res, nil
}

func (c *Client) runExec(sqlText string, params []any) (*Result, error) {
	ctx := context.Background()

	// sqlite3_changes() is sticky: a DDL statement issued after a DML still
	// reports the DML's count. Diffing total_changes() around the statement
	// gives a per-statement count, and 0 for DDL.
	before, err := c.totalChanges(ctx)
	if err != nil {
		return nil, err
	}

	out, err := c.conn.ExecContext(ctx, sqlText, params...)
	if err != nil {
		return nil, newError(PhaseExecute, "exec failed", err)
	}

	after, err := c.totalChanges(ctx)
	if err != nil {
		return nil, err
	}

	res := &Result{AffectedRows: after - before}
	if id, err := out.LastInsertId(); err == nil {
		res.LastInsertID = id
	}
	return res, nil
}

func (c *Client) totalChanges(ctx context.Context) (int64, error) {
	var n int64
	if err := c.conn.QueryRowContext(ctx, "SELECT total_changes()").Scan(&n); err != nil {
		return 0, newError(PhaseExecute, "read change counter", err)
	}
	return n, nil
}
