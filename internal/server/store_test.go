package server

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/rentalease/app/models"
	"github.com/shashiranjanraj/rentalease/app/repositories"
	"github.com/shashiranjanraj/rentalease/config"
	"github.com/shashiranjanraj/rentalease/pkg/database"
)

func setConfig(t *testing.T, kv map[string]string) {
	t.Helper()
	for k, v := range kv {
		prev := config.Get(k, "")
		config.Set(k, v)
		t.Cleanup(func() { config.Set(k, prev) })
	}
}

func TestOpenStoreSQLite(t *testing.T) {
	setConfig(t, map[string]string{"DB_DRIVER": "sqlite", "DATABASE_DSN": "file::memory:"})

	store, err := OpenStore(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, store.Repos.Users)
	assert.NotNil(t, store.Repos.Bookings)
	assert.NoError(t, store.Close(context.Background()))
}

// A fresh Mongo database has no collections; duplicates must still be
// rejected without a prior migrate.
func TestOpenStoreMongoEnsuresIndexes(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}
	ctx := context.Background()
	name := "rentalease_serve_" + repositories.NewID()[:8]
	setConfig(t, map[string]string{"DB_DRIVER": "mongo", "MONGO_URI": uri, "MONGO_DATABASE": name})

	store, err := OpenStore(ctx)
	require.NoError(t, err)
	t.Cleanup(func() {
		db, disconnect, err := database.OpenMongo(ctx, uri, name)
		if err == nil {
			_ = db.Drop(ctx)
			_ = disconnect(ctx)
		}
		_ = store.Close(ctx)
	})

	jane := func() *models.Account {
		return &models.Account{Fullname: "Jane", Email: "jane@x.com", PasswordHash: "h"}
	}
	require.NoError(t, store.Repos.Users.Create(ctx, jane()))
	assert.ErrorIs(t, store.Repos.Users.Create(ctx, jane()), repositories.ErrDuplicate)
}
