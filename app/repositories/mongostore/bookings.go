package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/rentalease/app/models"
	"github.com/shashiranjanraj/rentalease/app/repositories"
)

type BookingStore struct {
	coll *mongo.Collection
}

func (s *BookingStore) Create(ctx context.Context, b *models.Booking) error {
	ctx, span := tracer.Start(ctx, "BookingStore.Create")
	defer span.End()

	if b.ID == "" {
		b.ID = repositories.NewID()
	}
	b.CreatedAt = now()
	b.UpdatedAt = b.CreatedAt

	if _, err := s.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("create booking: %w", translate(err))
	}
	return nil
}

func (s *BookingStore) ForUser(ctx context.Context, userID string) ([]models.Booking, error) {
	ctx, span := tracer.Start(ctx, "BookingStore.ForUser")
	defer span.End()

	bookings, err := findAll[models.Booking](ctx, s.coll, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}
