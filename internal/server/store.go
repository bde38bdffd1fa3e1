package server

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/rentalease/app/repositories"
	"github.com/shashiranjanraj/rentalease/app/repositories/mongostore"
	"github.com/shashiranjanraj/rentalease/config"
	"github.com/shashiranjanraj/rentalease/pkg/database"
)

// Store is an open persistence backend selected by DB_DRIVER.
type Store struct {
	Repos repositories.Set
	close func(context.Context) error
}

// OpenStore connects the SQL database through gorm, or MongoDB when
// DB_DRIVER=mongo. The Mongo indexes are ensured before any request runs.
func OpenStore(ctx context.Context) (*Store, error) {
	if config.DatabaseDriver() == database.DriverMongo {
		db, disconnect, err := database.ConnectMongo(ctx)
		if err != nil {
			return nil, err
		}
		repos, err := mongostore.Open(ctx, db)
		if err != nil {
			_ = disconnect(context.Background())
			return nil, fmt.Errorf("server: open mongo: %w", err)
		}
		return &Store{Repos: repos, close: disconnect}, nil
	}

	db, err := database.Connect()
	if err != nil {
		return nil, fmt.Errorf("server: open %s: %w", config.DatabaseDriver(), err)
	}
	return &Store{
		Repos: repositories.NewGormSet(db),
		close: func(context.Context) error { return database.Close(db) },
	}, nil
}

func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close(ctx)
}
