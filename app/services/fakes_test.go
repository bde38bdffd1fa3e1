package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shashiranjanraj/rentalease/app/models"
	"github.com/shashiranjanraj/rentalease/app/repositories"
)

type fakeAccounts struct {
	mu   sync.Mutex
	rows []models.Account
}

func (f *fakeAccounts) Create(_ context.Context, a *models.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if row.Email == a.Email {
			return repositories.ErrDuplicate
		}
	}
	a.ID = repositories.NewID()
	f.rows = append(f.rows, *a)
	return nil
}

func (f *fakeAccounts) FindByEmail(_ context.Context, email string) (models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if row.Email == email {
			return row, nil
		}
	}
	return models.Account{}, repositories.ErrNotFound
}

func (f *fakeAccounts) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

type fakeHostings struct {
	mu   sync.Mutex
	rows []models.Hosting

	// afterAll runs once All has taken its snapshot.
	afterAll func()
}

func (f *fakeHostings) Create(_ context.Context, h *models.Hosting) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if row.Email == h.Email {
			return repositories.ErrDuplicate
		}
	}
	h.ID = repositories.NewID()
	f.rows = append(f.rows, *h)
	return nil
}

func (f *fakeHostings) All(context.Context) ([]models.Hosting, error) {
	f.mu.Lock()
	rows := append([]models.Hosting{}, f.rows...)
	hook := f.afterAll
	f.afterAll = nil
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	return rows, nil
}

func (f *fakeHostings) FindByID(_ context.Context, id string) (models.Hosting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, row := range f.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return models.Hosting{}, repositories.ErrNotFound
}

func (f *fakeHostings) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, row := range f.rows {
		if row.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

type fakeBookings struct {
	mu   sync.Mutex
	rows []models.Booking
}

func (f *fakeBookings) Create(_ context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b.ID = repositories.NewID()
	f.rows = append(f.rows, *b)
	return nil
}

func (f *fakeBookings) ForUser(_ context.Context, userID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Booking{}
	for _, row := range f.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeBookings) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

// recordingEvents captures fired and dispatched events synchronously.
type recordingEvents struct {
	mu    sync.Mutex
	names []string
	last  map[string]any
}

func (r *recordingEvents) Fire(_ context.Context, name string, payload any) {
	r.record(name, payload)
}

func (r *recordingEvents) Dispatch(_ context.Context, name string, payload any) {
	r.record(name, payload)
}

func (r *recordingEvents) record(name string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.last == nil {
		r.last = map[string]any{}
	}
	r.names = append(r.names, name)
	r.last[name] = payload
}

// memRedis answers Get, Set and Del from a map.
type memRedis struct {
	redis.UniversalClient

	mu   sync.Mutex
	data map[string]string
}

func newMemRedis() *memRedis { return &memRedis{data: map[string]string{}} }

func (c *memRedis) Get(_ context.Context, key string) *redis.StringCmd {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (c *memRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func (c *memRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}
