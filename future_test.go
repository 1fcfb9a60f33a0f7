package jaslet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFutureResolvedOnce(t *testing.T) {
	f := newFuture()

	select {
	case <-f.Done():
		t.Fatal("future resolved before resolve")
	default:
	}

	want := &Result{AffectedRows: 1}
	f.resolve(want, nil)

	<-f.Done()

	// Result is repeatable
	for i := 0; i < 2; i++ {
		res, err := f.Result()
		require.NoError(t, err)
		require.Same(t, want, res)
	}
}

func TestFutureRejected(t *testing.T) {
	cause := errors.New("boom")
	f := rejectedFuture(cause)

	res, err := f.Result()
	require.Nil(t, res)
	require.ErrorIs(t, err, cause)
}

func TestFutureResultContext(t *testing.T) {
	f := newFuture()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.ResultContext(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// the statement outcome is still observable after the abandoned wait
	f.resolve(&Result{}, nil)
	res, err := f.ResultContext(context.Background())
	require.NoError(t, err)
	require.NotNil(t, res)
}
