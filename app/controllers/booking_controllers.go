package controllers

import (
	"time"

	"github.com/shashiranjanraj/rentalease/app/models"
	"github.com/shashiranjanraj/rentalease/app/resources"
	"github.com/shashiranjanraj/rentalease/app/services"
	"github.com/shashiranjanraj/rentalease/pkg/apperror"
	"github.com/shashiranjanraj/rentalease/pkg/ctx"
	"github.com/shashiranjanraj/rentalease/pkg/resource"
)

type BookingController struct {
	service   *services.BookingService
	presenter resources.Booking
}

// NewBookingController renders booking instants in loc.
func NewBookingController(service *services.BookingService, loc *time.Location) *BookingController {
	return &BookingController{service: service, presenter: resources.Booking{Location: loc}}
}

func (b *BookingController) Create(c *ctx.Context) {
	principal, ok := c.Principal()
	if !ok {
		c.Fail(apperror.Unauthorized("Authorization token missing"))
		return
	}

	var input services.BookingInput
	if !c.DecodeJSON(&input) {
		return
	}

	booking, err := b.service.Create(c.Context(), principal, input)
	if err != nil {
		c.Fail(err)
		return
	}

	c.Created(resource.Map{
		"message": "Booking created successfully",
		"booking": resource.New[models.Booking](b.presenter, booking),
	})
}

// Mine lists the caller's bookings.
func (b *BookingController) Mine(c *ctx.Context) {
	principal, ok := c.Principal()
	if !ok {
		c.Fail(apperror.Unauthorized("Authorization token missing"))
		return
	}

	bookings, err := b.service.ForUser(c.Context(), principal)
	if err != nil {
		c.Fail(err)
		return
	}
	c.Success(resource.Collection[models.Booking](b.presenter, bookings))
}
