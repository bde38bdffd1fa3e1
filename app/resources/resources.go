// Package resources decides the JSON shape of every model the API returns.
package resources

import (
	"time"

	"github.com/shashiranjanraj/rentalease/app/models"
	"github.com/shashiranjanraj/rentalease/pkg/resource"
)

// Account never exposes the password hash.
type Account struct{}

func (Account) ToArray(a models.Account) resource.Map {
	return resource.Map{
		"id":       a.ID,
		"fullname": a.Fullname,
		"email":    a.Email,
	}
}

type Hosting struct{}

func (Hosting) ToArray(h models.Hosting) resource.Map {
	return resource.Map{
		"id":              h.ID,
		"ownername":       h.Ownername,
		"placename":       h.Placename,
		"address":         h.Address,
		"contactno":       h.Contactno,
		"location":        h.Location,
		"Image":           h.Image,
		"price":           h.Price,
		"room":            h.Room,
		"email":           h.Email,
		"PropertyDetails": h.PropertyDetails,
		"createdAt":       resource.Time(h.CreatedAt, time.UTC),
		"updatedAt":       resource.Time(h.UpdatedAt, time.UTC),
	}
}

// Booking renders its instants in Location.
type Booking struct {
	Location *time.Location
}

func (r Booking) ToArray(b models.Booking) resource.Map {
	return resource.Map{
		"id":         b.ID,
		"userId":     b.UserID,
		"hostingId":  b.HostingID,
		"fullname":   b.Fullname,
		"contactno":  b.Contactno,
		"adharno":    b.Adharno,
		"age":        b.Age,
		"checkIn":    resource.Time(b.CheckIn, r.Location),
		"checkOut":   resource.Time(b.CheckOut, r.Location),
		"guests":     b.Guests,
		"nights":     b.Nights(),
		"totalPrice": b.TotalPrice,
		"status":     b.Status,
		"createdAt":  resource.Time(b.CreatedAt, r.Location),
		"updatedAt":  resource.Time(b.UpdatedAt, r.Location),
	}
}
