package services

import (
	"context"

	"github.com/shashiranjanraj/rentalease/app/models"
)

// Event names.
const (
	EventHostingCreated = "hosting.created"
	EventHostingDeleted = "hosting.deleted"
	EventBookingCreated = "booking.created"
)

// Cache keys for hosting reads.
const CacheKeyHostings = "hostings:all"

func HostingCacheKey(id string) string { return "hostings:" + id }

// HostingDeleted is the payload of EventHostingDeleted.
type HostingDeleted struct {
	ID string
}

// Events is the subset of *event.Dispatcher the services use. Fire runs
// listeners before returning; Dispatch may run them later.
type Events interface {
	Fire(ctx context.Context, name string, payload any)
	Dispatch(ctx context.Context, name string, payload any)
}

type noEvents struct{}

func (noEvents) Fire(context.Context, string, any)     {}
func (noEvents) Dispatch(context.Context, string, any) {}

func eventsOrNoop(e Events) Events {
	if e == nil {
		return noEvents{}
	}
	return e
}

// BookingCreated is the payload of EventBookingCreated.
type BookingCreated struct {
	Booking models.Booking
	Nights  int
}
