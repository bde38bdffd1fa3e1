package models

import (
	"math"
	"time"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a renter's reservation of a hosting. HostingID is a weak
// reference: deleting the hosting leaves its bookings in place.
type Booking struct {
	ID         string        `gorm:"primaryKey;size:36"          bson:"_id"         json:"id"`
	UserID     string        `gorm:"size:36;not null;index"      bson:"user_id"     json:"userId"`
	HostingID  string        `gorm:"size:36;not null;index"      bson:"hosting_id"  json:"hostingId"`
	Fullname   string        `gorm:"size:255;not null"           bson:"fullname"    json:"fullname"`
	Contactno  string        `gorm:"size:20;not null"            bson:"contactno"   json:"contactno"`
	Adharno    string        `gorm:"size:32;not null"            bson:"adharno"     json:"adharno"`
	Age        int           `gorm:"not null"                    bson:"age"         json:"age"`
	CheckIn    time.Time     `gorm:"not null"                    bson:"check_in"    json:"checkIn"`
	CheckOut   time.Time     `gorm:"not null"                    bson:"check_out"   json:"checkOut"`
	Guests     int           `gorm:"not null"                    bson:"guests"      json:"guests"`
	TotalPrice float64       `gorm:"not null"                    bson:"total_price" json:"totalPrice"`
	Status     BookingStatus `gorm:"size:16;not null;default:pending" bson:"status" json:"status"`
	CreatedAt  time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time     `bson:"updated_at" json:"updatedAt"`
}

// Nights is the number of billed nights: the stay rounded up to whole days.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

func (b Booking) Nights() int { return Nights(b.CheckIn, b.CheckOut) }
