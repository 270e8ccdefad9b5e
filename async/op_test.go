package async

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialState(t *testing.T) {
	op := New(func(ctx context.Context, _ None) ([]string, error) {
		return nil, nil
	}, []string{})

	st := op.State()
	assert.Equal(t, []string{}, st.Data)
	assert.False(t, st.Loading)
	assert.NoError(t, st.Err)
}

func TestResetIdempotent(t *testing.T) {
	op := New(func(ctx context.Context, _ None) (string, error) {
		return "value", nil
	}, "initial")

	_, err := op.Execute(context.Background(), None{})
	require.NoError(t, err)
	require.Equal(t, "value", op.State().Data)

	op.Reset()
	first := op.State()

	op.Reset()
	op.Reset()

	assert.Equal(t, first, op.State())
	assert.Equal(t, "initial", op.State().Data)
	assert.False(t, op.State().Loading)
	assert.NoError(t, op.State().Err)
}

func TestLoadingWhilePending(t *testing.T) {
	release := make(chan struct{})
	op := New(func(ctx context.Context, _ None) (string, error) {
		<-release
		return "done", nil
	}, "")

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = op.Execute(context.Background(), None{})
	}()

	require.Eventually(t, func() bool {
		return op.State().Loading
	}, time.Second, time.Millisecond)

	st := op.State()
	assert.True(t, st.Loading)
	assert.NoError(t, st.Err)

	close(release)
	<-done
	assert.False(t, op.State().Loading)
}

func TestSuccessSetsDataAndReturnsResult(t *testing.T) {
	op := New(func(ctx context.Context, arg int) (int, error) {
		return arg * 2, nil
	}, 0)

	result, err := op.Execute(context.Background(), 21)
	require.NoError(t, err)
	assert.Equal(t, 42, result)

	st := op.State()
	assert.Equal(t, 42, st.Data)
	assert.False(t, st.Loading)
	assert.NoError(t, st.Err)
}

func TestFailurePreservesPreviousData(t *testing.T) {
	fail := false
	op := New(func(ctx context.Context, _ None) (string, error) {
		if fail {
			return "", errors.New("boom")
		}
		return "v1", nil
	}, "")

	_, err := op.Execute(context.Background(), None{})
	require.NoError(t, err)
	require.Equal(t, "v1", op.State().Data)

	fail = true
	_, err = op.Execute(context.Background(), None{})
	require.Error(t, err)
	assert.EqualError(t, err, "boom")

	st := op.State()
	assert.Equal(t, "v1", st.Data)
	assert.EqualError(t, st.Err, "boom")
	assert.False(t, st.Loading)
}

func TestExecuteClearsPreviousError(t *testing.T) {
	fail := true
	release := make(chan struct{})
	op := New(func(ctx context.Context, _ None) (string, error) {
		if fail {
			return "", errors.New("boom")
		}
		<-release
		return "ok", nil
	}, "")

	_, err := op.Execute(context.Background(), None{})
	require.Error(t, err)
	require.Error(t, op.State().Err)

	fail = false
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = op.Execute(context.Background(), None{})
	}()

	require.Eventually(t, func() bool {
		return op.State().Loading
	}, time.Second, time.Millisecond)
	assert.NoError(t, op.State().Err)

	close(release)
	<-done
}

func TestStaleResolutionDiscarded(t *testing.T) {
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	op := New(func(ctx context.Context, arg string) (string, error) {
		if arg == "first" {
			close(firstStarted)
			<-releaseFirst
		}
		return arg, nil
	}, "")

	firstDone := make(chan string, 1)
	go func() {
		result, _ := op.Execute(context.Background(), "first")
		firstDone <- result
	}()
	<-firstStarted

	result, err := op.Execute(context.Background(), "second")
	require.NoError(t, err)
	assert.Equal(t, "second", result)

	close(releaseFirst)
	// The superseded call still hands its result to the caller.
	assert.Equal(t, "first", <-firstDone)

	st := op.State()
	assert.Equal(t, "second", st.Data)
	assert.False(t, st.Loading)
	assert.NoError(t, st.Err)
}

func TestResetDiscardsInFlightResolution(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	op := New(func(ctx context.Context, _ None) (string, error) {
		close(started)
		<-release
		return "late", nil
	}, "initial")

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = op.Execute(context.Background(), None{})
	}()
	<-started

	op.Reset()
	close(release)
	<-done

	st := op.State()
	assert.Equal(t, "initial", st.Data)
	assert.False(t, st.Loading)
	assert.NoError(t, st.Err)
}

func TestCancelledExecuteDropsResult(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})
	release := make(chan struct{})
	op := New(func(ctx context.Context, _ None) (string, error) {
		close(started)
		<-release
		return "late", nil
	}, "initial")

	done := make(chan error, 1)
	go func() {
		_, err := op.Execute(ctx, None{})
		done <- err
	}()
	<-started

	cancel()
	close(release)

	err := <-done
	require.ErrorIs(t, err, context.Canceled)

	st := op.State()
	assert.Equal(t, "initial", st.Data)
	assert.ErrorIs(t, st.Err, context.Canceled)
	assert.False(t, st.Loading)
}

func TestSubscribe(t *testing.T) {
	op := New(func(ctx context.Context, _ None) (string, error) {
		return "value", nil
	}, "")

	var seen []State[string]
	cancel := op.Subscribe(func(s State[string]) {
		seen = append(seen, s)
	})

	_, err := op.Execute(context.Background(), None{})
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.True(t, seen[0].Loading)
	assert.Equal(t, "value", seen[1].Data)
	assert.False(t, seen[1].Loading)

	cancel()
	op.Reset()
	assert.Len(t, seen, 2)
}
