package jaslet

import "context"

// Future is the deferred outcome of a scheduled statement. It resolves
// exactly once, when the worker finishes the statement.
type Future struct {
	done chan struct{}
	res  *Result
	err  error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// resolve must be called exactly once, and only by the worker or the
// submission path that rejects a statement outright.
func (f *Future) resolve(res *Result, err error) {
	f.res = res
	f.err = err
	close(f.done)
}

func rejectedFuture(err error) *Future {
	f := newFuture()
	f.resolve(nil, err)
	return f
}

// Done returns a channel that is closed once the statement has finished.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Result blocks until the statement finishes, then returns its outcome.
// It may be called any number of times and from any goroutine.
func (f *Future) Result() (*Result, error) {
	<-f.done
	return f.res, f.err
}

// ResultContext waits like Result but stops waiting when ctx is done. Giving
// up abandons only the wait; the scheduled statement still runs to completion.
func (f *Future) ResultContext(ctx context.Context) (*Result, error) {
	select {
	case <-f.done:
		return f.res, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
