package mongostore_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/rentalease/app/models"
	"github.com/shashiranjanraj/rentalease/app/repositories"
	"github.com/shashiranjanraj/rentalease/app/repositories/mongostore"
	"github.com/shashiranjanraj/rentalease/pkg/database"
)

// Runs against a live server only when MONGO_TEST_URI is set.
func newSet(t *testing.T) repositories.Set {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx := context.Background()
	name := "rentalease_test_" + repositories.NewID()[:8]
	db, disconnect, err := database.OpenMongo(ctx, uri, name)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Drop(ctx)
		_ = disconnect(ctx)
	})

	repos, err := mongostore.Open(ctx, db)
	require.NoError(t, err)
	return repos
}

func TestOpenEnforcesUniqueEmail(t *testing.T) {
	repos := newSet(t)
	ctx := context.Background()

	require.NoError(t, repos.Hostings.Create(ctx, &models.Hosting{Ownername: "Anita", Email: "a@x.com", Price: 1}))
	err := repos.Hostings.Create(ctx, &models.Hosting{Ownername: "Anita", Email: "a@x.com", Price: 1})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	require.NoError(t, repos.Admins.Create(ctx, &models.Account{Fullname: "Anita", Email: "a@x.com", PasswordHash: "h"}))
	err = repos.Admins.Create(ctx, &models.Account{Fullname: "Anita", Email: "a@x.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)
}

func TestAccountsDuplicateEmail(t *testing.T) {
	repos := newSet(t)
	ctx := context.Background()

	require.NoError(t, repos.Users.Create(ctx, &models.Account{Fullname: "Jane", Email: "jane@x.com", PasswordHash: "h"}))
	err := repos.Users.Create(ctx, &models.Account{Fullname: "Jane", Email: "jane@x.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	got, err := repos.Users.FindByEmail(ctx, "jane@x.com")
	require.NoError(t, err)
	assert.Equal(t, "h", got.PasswordHash)

	_, err = repos.Admins.FindByEmail(ctx, "jane@x.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestHostingsOrderAndDelete(t *testing.T) {
	repos := newSet(t)
	ctx := context.Background()

	var ids []string
	for _, email := range []string{"a@x.com", "b@x.com"} {
		h := &models.Hosting{Ownername: "Ann", Placename: "Cottage", Email: email, Price: 100}
		require.NoError(t, repos.Hostings.Create(ctx, h))
		ids = append(ids, h.ID)
	}

	all, err := repos.Hostings.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, ids[0], all[0].ID)

	require.NoError(t, repos.Hostings.Delete(ctx, ids[0]))
	assert.ErrorIs(t, repos.Hostings.Delete(ctx, ids[0]), repositories.ErrNotFound)
}

func TestBookingRoundTrip(t *testing.T) {
	repos := newSet(t)
	ctx := context.Background()

	in := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	b := &models.Booking{UserID: "u1", HostingID: "h1", CheckIn: in, CheckOut: in.AddDate(0, 0, 2), Status: models.BookingPending}
	require.NoError(t, repos.Bookings.Create(ctx, b))

	mine, err := repos.Bookings.ForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, b.ID, mine[0].ID)
	assert.True(t, in.Equal(mine[0].CheckIn))
}
