package resources_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/rentalease/app/models"
	"github.com/shashiranjanraj/rentalease/app/resources"
	"github.com/shashiranjanraj/rentalease/pkg/resource"
)

func TestAccountHidesPasswordHash(t *testing.T) {
	raw, err := json.Marshal(resource.New[models.Account](resources.Account{}, models.Account{
		ID: "a1", Fullname: "Jane", Email: "jane@x.com", PasswordHash: "$2a$10$secret",
	}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"a1","fullname":"Jane","email":"jane@x.com"}`, string(raw))
}

func TestBookingRendersInDisplayZone(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	in := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	m := resources.Booking{Location: kolkata}.ToArray(models.Booking{
		CheckIn: in, CheckOut: in.AddDate(0, 0, 2), TotalPrice: 1000, Status: models.BookingPending,
	})

	assert.Equal(t, "2024-01-10T05:30:00+05:30", m["checkIn"])
	assert.Equal(t, "2024-01-12T05:30:00+05:30", m["checkOut"])
	assert.Equal(t, 2, m["nights"])
	assert.Equal(t, models.BookingPending, m["status"])
}
