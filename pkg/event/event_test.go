package event_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/rentalease/pkg/event"
	"github.com/shashiranjanraj/rentalease/pkg/workerpool"
)

func TestFireRunsListenersInOrder(t *testing.T) {
	d := event.NewDispatcher(nil)

	var got []string
	d.Listen("hosting.created", func(_ context.Context, p any) { got = append(got, "a:"+p.(string)) })
	d.Listen("hosting.created", func(_ context.Context, p any) { got = append(got, "b:"+p.(string)) })
	d.Listen("other", func(context.Context, any) { got = append(got, "other") })

	d.Fire(context.Background(), "hosting.created", "x")
	assert.Equal(t, []string{"a:x", "b:x"}, got)
}

func TestDispatchUsesPoolAndDetachesContext(t *testing.T) {
	pool := workerpool.New("events", 2)
	d := event.NewDispatcher(pool)

	var wg sync.WaitGroup
	var calls atomic.Int32
	var ctxErr atomic.Value
	wg.Add(3)
	for i := 0; i < 3; i++ {
		d.Listen("booking.created", func(ctx context.Context, _ any) {
			defer wg.Done()
			calls.Add(1)
			if ctx.Err() != nil {
				ctxErr.Store(ctx.Err())
			}
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	d.Dispatch(ctx, "booking.created", nil)
	cancel()

	wg.Wait()
	pool.Shutdown()
	assert.Equal(t, int32(3), calls.Load())
	assert.Nil(t, ctxErr.Load())
}

func TestDispatchRunsInlineWhenPoolClosed(t *testing.T) {
	pool := workerpool.New("events", 1)
	pool.Shutdown()
	d := event.NewDispatcher(pool)

	ran := false
	d.Listen("hosting.deleted", func(context.Context, any) { ran = true })
	d.Dispatch(context.Background(), "hosting.deleted", nil)

	assert.True(t, ran)
}

func TestFlush(t *testing.T) {
	d := event.NewDispatcher(nil)
	ran := false
	d.Listen("x", func(context.Context, any) { ran = true })
	d.Flush()
	d.Fire(context.Background(), "x", nil)
	assert.False(t, ran)
}
