package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/rentalease/app/models"
	"github.com/shashiranjanraj/rentalease/app/repositories"
)

type AccountStore struct {
	coll *mongo.Collection
}

func (s *AccountStore) Create(ctx context.Context, a *models.Account) error {
	ctx, span := tracer.Start(ctx, "AccountStore.Create")
	defer span.End()

	if a.ID == "" {
		a.ID = repositories.NewID()
	}
	a.CreatedAt = now()
	a.UpdatedAt = a.CreatedAt

	if _, err := s.coll.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("create %s account: %w", s.coll.Name(), translate(err))
	}
	return nil
}

func (s *AccountStore) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	ctx, span := tracer.Start(ctx, "AccountStore.FindByEmail")
	defer span.End()

	return findOne[models.Account](ctx, s.coll, bson.M{"email": email})
}
