package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/shashiranjanraj/rentalease/app/models"
	"github.com/shashiranjanraj/rentalease/app/repositories"
	"github.com/shashiranjanraj/rentalease/pkg/apperror"
	"github.com/shashiranjanraj/rentalease/pkg/auth"
	"github.com/shashiranjanraj/rentalease/pkg/bind"
)

var tracer = otel.Tracer("github.com/shashiranjanraj/rentalease/app/services")

// BookingInput accepts the hosting under either hostingId or propertyId.
// Dates are YYYY-MM-DD or RFC 3339. Guests and age may arrive as numeric
// strings from form inputs.
type BookingInput struct {
	HostingID  string   `json:"hostingId"  validate:"required_without=PropertyID"`
	PropertyID string   `json:"propertyId"`
	CheckIn    string   `json:"checkIn"    validate:"required"`
	CheckOut   string   `json:"checkOut"   validate:"required"`
	Guests     bind.Int `json:"guests"     validate:"required,gte=1"`
	Fullname   string   `json:"fullname"   validate:"required"`
	Contactno  string   `json:"contactno"  validate:"required,numeric"`
	Adharno    string   `json:"adharno"    validate:"required"`
	Age        bind.Int `json:"age"        validate:"required,gte=1"`
}

func (in BookingInput) hostingID() string {
	if in.HostingID != "" {
		return in.HostingID
	}
	return in.PropertyID
}

type BookingService struct {
	bookings repositories.BookingRepository
	hostings repositories.HostingRepository
	events   Events
}

func NewBookingService(bookings repositories.BookingRepository, hostings repositories.HostingRepository, events Events) *BookingService {
	return &BookingService{bookings: bookings, hostings: hostings, events: eventsOrNoop(events)}
}

// Create validates, prices and stores a pending booking for p. Nothing is
// persisted when any step fails.
func (s *BookingService) Create(ctx context.Context, p auth.Principal, in BookingInput) (models.Booking, error) {
	ctx, span := tracer.Start(ctx, "BookingService.Create")
	defer span.End()

	booking, err := s.create(ctx, p, in)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, apperror.KindOf(err).String())
		return models.Booking{}, err
	}

	span.SetAttributes(
		attribute.String("booking.id", booking.ID),
		attribute.String("hosting.id", booking.HostingID),
		attribute.Float64("booking.total_price", booking.TotalPrice),
	)
	return booking, nil
}

func (s *BookingService) create(ctx context.Context, p auth.Principal, in BookingInput) (models.Booking, error) {
	in.HostingID = strings.TrimSpace(in.HostingID)
	in.PropertyID = strings.TrimSpace(in.PropertyID)
	if errs := bind.Struct(in); len(errs) > 0 {
		return models.Booking{}, apperror.ValidationFields(errs)
	}

	hosting, err := s.hostings.FindByID(ctx, in.hostingID())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.Booking{}, apperror.NotFound(msgHostingNotFound)
		}
		return models.Booking{}, apperror.Internal("Server error", err)
	}

	checkIn, checkOut, err := stayDates(in.CheckIn, in.CheckOut)
	if err != nil {
		return models.Booking{}, err
	}

	nights := models.Nights(checkIn, checkOut)
	booking := models.Booking{
		UserID:     p.ID,
		HostingID:  hosting.ID,
		Fullname:   in.Fullname,
		Contactno:  in.Contactno,
		Adharno:    in.Adharno,
		Age:        int(in.Age),
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     int(in.Guests),
		TotalPrice: hosting.Price * float64(nights),
		Status:     models.BookingPending,
	}
	if err := s.bookings.Create(ctx, &booking); err != nil {
		return models.Booking{}, apperror.Internal("Server error", err)
	}

	s.events.Dispatch(ctx, EventBookingCreated, BookingCreated{Booking: booking, Nights: nights})
	return booking, nil
}

// ForUser lists the bookings made by p.
func (s *BookingService) ForUser(ctx context.Context, p auth.Principal) ([]models.Booking, error) {
	bookings, err := s.bookings.ForUser(ctx, p.ID)
	if err != nil {
		return nil, apperror.Internal("Server error", err)
	}
	return bookings, nil
}

func stayDates(rawIn, rawOut string) (time.Time, time.Time, error) {
	fields := map[string]string{}

	checkIn, err := parseDate(rawIn)
	if err != nil {
		fields["checkIn"] = "The checkIn must be a date (YYYY-MM-DD or RFC 3339)."
	}
	checkOut, err := parseDate(rawOut)
	if err != nil {
		fields["checkOut"] = "The checkOut must be a date (YYYY-MM-DD or RFC 3339)."
	}
	if len(fields) > 0 {
		return time.Time{}, time.Time{}, apperror.ValidationFields(fields)
	}

	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, apperror.Validation("Check-out date must be after check-in date")
	}
	return checkIn, checkOut, nil
}

// parseDate reads a calendar date as midnight UTC, or an RFC 3339 instant
// converted to UTC.
func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
