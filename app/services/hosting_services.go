package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/shashiranjanraj/rentalease/app/models"
	"github.com/shashiranjanraj/rentalease/app/repositories"
	"github.com/shashiranjanraj/rentalease/pkg/apperror"
	"github.com/shashiranjanraj/rentalease/pkg/bind"
	"github.com/shashiranjanraj/rentalease/pkg/cache"
)

const msgHostingNotFound = "Hosting not found"

type HostingInput struct {
	Ownername       string   `json:"ownername"       validate:"required,min=3"`
	Placename       string   `json:"placename"       validate:"required,max=18"`
	Address         string   `json:"address"         validate:"required"`
	Contactno       string   `json:"contactno"       validate:"required,numeric"`
	Location        string   `json:"location"        validate:"required"`
	Image           string   `json:"Image"           validate:"required"`
	Price           float64  `json:"price"           validate:"required,gt=0"`
	Room            bind.Int `json:"room"            validate:"required,gte=1"`
	Email           string   `json:"email"           validate:"required,email"`
	PropertyDetails string   `json:"PropertyDetails" validate:"required"`
}

// HostingService manages listings. Reads go through the cache; writes bump
// the write version, then fire events whose listeners invalidate it.
type HostingService struct {
	repo   repositories.HostingRepository
	cache  *cache.Store
	events Events
	writes cache.Version
}

// NewHostingService wires the service. store may be nil (no caching) and
// events may be nil (no listeners).
func NewHostingService(repo repositories.HostingRepository, store *cache.Store, events Events) *HostingService {
	return &HostingService{repo: repo, cache: store, events: eventsOrNoop(events)}
}

func (s *HostingService) Create(ctx context.Context, in HostingInput) (models.Hosting, error) {
	in.Email = normalizeEmail(in.Email)
	if errs := bind.Struct(in); len(errs) > 0 {
		return models.Hosting{}, apperror.ValidationFields(errs)
	}

	hosting := models.Hosting{
		Ownername:       strings.TrimSpace(in.Ownername),
		Placename:       strings.TrimSpace(in.Placename),
		Address:         in.Address,
		Contactno:       in.Contactno,
		Location:        strings.TrimSpace(in.Location),
		Image:           in.Image,
		Price:           in.Price,
		Room:            int(in.Room),
		Email:           in.Email,
		PropertyDetails: in.PropertyDetails,
	}
	if err := s.repo.Create(ctx, &hosting); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return models.Hosting{}, apperror.Conflict("Hosting already exists with this email")
		}
		return models.Hosting{}, apperror.Internal("Server error", err)
	}

	s.writes.Bump()
	s.events.Fire(ctx, EventHostingCreated, hosting)
	return hosting, nil
}

// List returns every hosting in insertion order.
func (s *HostingService) List(ctx context.Context) ([]models.Hosting, error) {
	hostings, err := cache.RememberVersion(ctx, s.cache, &s.writes, CacheKeyHostings, s.repo.All)
	if err != nil {
		return nil, apperror.Internal("Server error", err)
	}
	return hostings, nil
}

// Get returns one hosting. A malformed id is a validation failure, an
// unknown one is not found.
func (s *HostingService) Get(ctx context.Context, id string) (models.Hosting, error) {
	if !validID(id) {
		return models.Hosting{}, apperror.Validation("Invalid property ID")
	}

	hosting, err := cache.RememberVersion(ctx, s.cache, &s.writes, HostingCacheKey(id), func(ctx context.Context) (models.Hosting, error) {
		return s.repo.FindByID(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.Hosting{}, apperror.NotFound(msgHostingNotFound)
		}
		return models.Hosting{}, apperror.Internal("Server error", err)
	}
	return hosting, nil
}

// Delete removes a hosting. Its bookings are left in place.
func (s *HostingService) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return apperror.NotFound(msgHostingNotFound)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperror.NotFound(msgHostingNotFound)
		}
		return apperror.Internal("Server error", err)
	}

	s.writes.Bump()
	s.events.Fire(ctx, EventHostingDeleted, HostingDeleted{ID: id})
	return nil
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
