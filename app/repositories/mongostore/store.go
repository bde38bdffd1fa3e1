// Package mongostore implements the repositories interfaces over MongoDB
// for DB_DRIVER=mongo. Documents use the model's string id as _id.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/shashiranjanraj/rentalease/app/models"
	"github.com/shashiranjanraj/rentalease/app/repositories"
)

const (
	collectionHostings = "hostings"
	collectionBookings = "bookings"
)

var tracer trace.Tracer = otel.Tracer("github.com/shashiranjanraj/rentalease/app/repositories/mongostore")

// New builds the Mongo-backed repositories over db.
func New(db *mongo.Database) repositories.Set {
	return repositories.Set{
		Users:    &AccountStore{coll: db.Collection(models.TableUsers)},
		Admins:   &AccountStore{coll: db.Collection(models.TableAdmins)},
		Hostings: &HostingStore{coll: db.Collection(collectionHostings)},
		Bookings: &BookingStore{coll: db.Collection(collectionBookings)},
	}
}

// Open ensures the indexes exist and returns the repositories over db.
// Collections are created lazily, so without this a fresh database has no
// unique email index and Create never reports ErrDuplicate.
func Open(ctx context.Context, db *mongo.Database) (repositories.Set, error) {
	if err := EnsureIndexes(ctx, db); err != nil {
		return repositories.Set{}, err
	}
	return New(db), nil
}

// EnsureIndexes creates the unique email indexes and the lookup indexes.
// It is idempotent; `rentalease migrate` and server startup both run it.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	uniqueEmail := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("ux_email"),
	}
	byCreated := mongo.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}},
		Options: options.Index().SetName("ix_created_at"),
	}
	byUser := mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetName("ix_user_id"),
	}

	plan := map[string][]mongo.IndexModel{
		models.TableUsers:  {uniqueEmail},
		models.TableAdmins: {uniqueEmail},
		collectionHostings: {uniqueEmail, byCreated},
		collectionBookings: {byUser, byCreated},
	}
	for name, indexes := range plan {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("mongostore: indexes on %s: %w", name, err)
		}
	}
	return nil
}

// now is truncated to the millisecond precision BSON dates keep.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return repositories.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return errors.Join(repositories.ErrDuplicate, err)
	}
	return err
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) (T, error) {
	var out T
	err := coll.FindOne(ctx, filter).Decode(&out)
	return out, translate(err)
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) ([]T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
