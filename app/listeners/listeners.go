// Package listeners reacts to domain events: hosting writes invalidate the
// read cache, new bookings are logged and counted.
package listeners

import (
	"context"

	"github.com/shashiranjanraj/rentalease/app/services"
	"github.com/shashiranjanraj/rentalease/pkg/cache"
	"github.com/shashiranjanraj/rentalease/pkg/event"
	"github.com/shashiranjanraj/rentalease/pkg/logger"
	"github.com/shashiranjanraj/rentalease/pkg/metrics"
)

// Register attaches every listener to d. store may be nil.
func Register(d *event.Dispatcher, store *cache.Store) {
	d.Listen(services.EventHostingCreated, func(ctx context.Context, _ any) {
		forget(ctx, store, services.CacheKeyHostings)
	})

	d.Listen(services.EventHostingDeleted, func(ctx context.Context, payload any) {
		deleted, ok := payload.(services.HostingDeleted)
		if !ok {
			return
		}
		forget(ctx, store, services.CacheKeyHostings, services.HostingCacheKey(deleted.ID))
	})

	d.Listen(services.EventBookingCreated, func(ctx context.Context, payload any) {
		created, ok := payload.(services.BookingCreated)
		if !ok {
			return
		}
		metrics.RecordBooking(created.Nights)
		logger.WithCtx(ctx).Info("booking created",
			"booking_id", created.Booking.ID,
			"hosting_id", created.Booking.HostingID,
			"user_id", created.Booking.UserID,
			"nights", created.Nights,
			"total_price", created.Booking.TotalPrice,
		)
	})
}

func forget(ctx context.Context, store *cache.Store, keys ...string) {
	if err := store.Del(ctx, keys...); err != nil {
		logger.WithCtx(ctx).Warn("cache invalidation failed", "keys", keys, "error", err)
	}
}
