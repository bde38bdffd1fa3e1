// Package event provides a named-event dispatcher. Listeners run either
// inline (Fire) or on a worker pool (Dispatch).
package event

import (
	"context"
	"errors"
	"sync"

	"github.com/shashiranjanraj/rentalease/pkg/workerpool"
)

// Handler receives an event payload.
type Handler func(ctx context.Context, payload any)

type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	pool     *workerpool.Pool
}

// NewDispatcher returns a dispatcher. With a nil pool Dispatch behaves like
// Fire.
func NewDispatcher(pool *workerpool.Pool) *Dispatcher {
	return &Dispatcher{
		handlers: map[string][]Handler{},
		pool:     pool,
	}
}

// Listen registers handler for the named event.
func (d *Dispatcher) Listen(name string, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[name] = append(d.handlers[name], handler)
}

// Fire runs every listener synchronously.
func (d *Dispatcher) Fire(ctx context.Context, name string, payload any) {
	for _, h := range d.listeners(name) {
		h(ctx, payload)
	}
}

// Dispatch queues every listener on the pool and returns. Listeners get a
// context detached from the caller's cancellation. When the pool is full or
// closed the listener runs inline instead of being dropped.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, payload any) {
	hs := d.listeners(name)
	if len(hs) == 0 {
		return
	}
	if d.pool == nil {
		d.Fire(ctx, name, payload)
		return
	}

	detached := context.WithoutCancel(ctx)
	for _, h := range hs {
		err := d.pool.Submit(func() { h(detached, payload) })
		if errors.Is(err, workerpool.ErrPoolFull) || errors.Is(err, workerpool.ErrPoolClosed) {
			h(detached, payload)
		}
	}
}

// Flush removes all listeners.
func (d *Dispatcher) Flush() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = map[string][]Handler{}
}

func (d *Dispatcher) listeners(name string) []Handler {
	d.mu.RLock()
	defer d.mu.RUnlock()
	hs := make([]Handler, len(d.handlers[name]))
	copy(hs, d.handlers[name])
	return hs
}
