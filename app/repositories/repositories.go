// Package repositories persists accounts, hostings and bookings. The gorm
// implementations here cover the SQL drivers; package mongostore provides
// the same interfaces over MongoDB.
package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/rentalease/app/models"
)

var (
	ErrNotFound  = errors.New("repositories: record not found")
	ErrDuplicate = errors.New("repositories: duplicate key")
)

type AccountRepository interface {
	// Create inserts a, assigning its ID. Returns ErrDuplicate when the
	// email is taken.
	Create(ctx context.Context, a *models.Account) error
	FindByEmail(ctx context.Context, email string) (models.Account, error)
}

type HostingRepository interface {
	Create(ctx context.Context, h *models.Hosting) error
	// All returns every hosting in insertion order.
	All(ctx context.Context) ([]models.Hosting, error)
	FindByID(ctx context.Context, id string) (models.Hosting, error)
	Delete(ctx context.Context, id string) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *models.Booking) error
	ForUser(ctx context.Context, userID string) ([]models.Booking, error)
}

// Set bundles one repository per collection.
type Set struct {
	Users    AccountRepository
	Admins   AccountRepository
	Hostings HostingRepository
	Bookings BookingRepository
}

// NewGormSet builds the SQL-backed repositories over db.
func NewGormSet(db *gorm.DB) Set {
	return Set{
		Users:    NewAccountRepository(db, models.TableUsers),
		Admins:   NewAccountRepository(db, models.TableAdmins),
		Hostings: NewHostingRepository(db),
		Bookings: NewBookingRepository(db),
	}
}

// NewID returns a time-ordered UUID so that id order follows insertion order.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// translate maps driver errors onto the package sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), isUniqueViolation(err):
		return errors.Join(ErrDuplicate, err)
	}
	return err
}

// isUniqueViolation catches dialects that do not translate their errors.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "Duplicate entry")
}
