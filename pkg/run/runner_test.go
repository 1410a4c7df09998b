package run

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type runFunc func(context.Context) error

func (f runFunc) Run(ctx context.Context) error { return f(ctx) }

func TestRunnerWait(t *testing.T) {
	r := NewRunner()
	r.Go(
		runFunc(func(context.Context) error { return nil }),
		runFunc(func(context.Context) error { return context.Canceled }),
	)
	require.NoError(t, r.Wait())
}

func TestRunnerWaitJoinsFailures(t *testing.T) {
	r := NewRunner()
	r.Go(
		runFunc(func(context.Context) error { return errors.New("broker down") }),
		runFunc(func(context.Context) error { return errors.New("listen failed") }),
	)
	err := r.Wait()
	require.Error(t, err)
	require.Contains(t, err.Error(), "broker down")
	require.Contains(t, err.Error(), "listen failed")
}

func TestNamedRun(t *testing.T) {
	r := NamedRun("ticker", runFunc(func(context.Context) error { return nil }))
	named, ok := r.(Named)
	require.True(t, ok)
	require.Equal(t, "ticker", named.Name())
}
