package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/rentalease/app/models"
	"github.com/shashiranjanraj/rentalease/app/repositories"
)

type HostingStore struct {
	coll *mongo.Collection
}

func (s *HostingStore) Create(ctx context.Context, h *models.Hosting) error {
	ctx, span := tracer.Start(ctx, "HostingStore.Create")
	defer span.End()

	if h.ID == "" {
		h.ID = repositories.NewID()
	}
	h.CreatedAt = now()
	h.UpdatedAt = h.CreatedAt

	if _, err := s.coll.InsertOne(ctx, h); err != nil {
		return fmt.Errorf("create hosting: %w", translate(err))
	}
	return nil
}

func (s *HostingStore) All(ctx context.Context) ([]models.Hosting, error) {
	ctx, span := tracer.Start(ctx, "HostingStore.All")
	defer span.End()

	hostings, err := findAll[models.Hosting](ctx, s.coll, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list hostings: %w", err)
	}
	return hostings, nil
}

func (s *HostingStore) FindByID(ctx context.Context, id string) (models.Hosting, error) {
	ctx, span := tracer.Start(ctx, "HostingStore.FindByID")
	defer span.End()

	return findOne[models.Hosting](ctx, s.coll, bson.M{"_id": id})
}

func (s *HostingStore) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "HostingStore.Delete")
	defer span.End()

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete hosting: %w", err)
	}
	if res.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
