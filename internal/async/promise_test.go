package async

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromiseResolves(t *testing.T) {
	getFullName := mocks.NewFn[string, *Promise[string]]().
		MockImplementation(func(...string) *Promise[string] {
			return Resolve("Luke Howsam")
		})

	name, err := getFullName.Call("Luke Howsam").Await(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Luke Howsam", name)
	getFullName.AssertCalledWith(t, "Luke Howsam")
}

func TestPromiseRejects(t *testing.T) {
	getFullName := mocks.NewFn[string, *Promise[string]]().
		MockImplementation(func(...string) *Promise[string] {
			return Reject[string](errors.New("something went wrong"))
		})

	name, err := getFullName.Call("Luke Howsam").Await(context.Background())

	assert.EqualError(t, err, "something went wrong")
	assert.Empty(t, name)
}

func TestRun(t *testing.T) {
	t.Run("should resolve with the task value", func(t *testing.T) {
		p := Run(context.Background(), func(ctx context.Context) (int, error) {
			return 42, nil
		})

		v, err := p.Await(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("should reject with the task error", func(t *testing.T) {
		boom := errors.New("boom")
		p := Run(context.Background(), func(ctx context.Context) (int, error) {
			return 0, boom
		})

		_, err := p.Await(context.Background())
		assert.ErrorIs(t, err, boom)
	})

	t.Run("should reject when the task panics", func(t *testing.T) {
		p := Run(context.Background(), func(ctx context.Context) (string, error) {
			panic("oven on fire")
		})

		v, err := p.Await(context.Background())
		assert.ErrorIs(t, err, ErrPanicked)
		assert.Contains(t, err.Error(), "oven on fire")
		assert.Empty(t, v)
	})

	t.Run("should pass the context to the task", func(t *testing.T) {
		type key struct{}
		ctx := context.WithValue(context.Background(), key{}, "chicago")
		p := Run(ctx, func(ctx context.Context) (string, error) {
			return ctx.Value(key{}).(string), nil
		})

		v, err := p.Await(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "chicago", v)
	})
}

func TestAwaitHonorsContext(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	p := Run(context.Background(), func(ctx context.Context) (int, error) {
		<-release
		return 1, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	v, err := p.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Zero(t, v)

	select {
	case <-p.Done():
		t.Fatal("promise settled before the task was released")
	default:
	}
}

func TestAwaitPrefersSettledValue(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v, err := Resolve("sicilian").Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sicilian", v)
}
