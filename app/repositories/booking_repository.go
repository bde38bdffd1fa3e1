package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/rentalease/app/models"
	"github.com/shashiranjanraj/rentalease/pkg/metrics"
)

type GormBookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

func (r *GormBookingRepository) Create(ctx context.Context, b *models.Booking) error {
	defer metrics.ObserveDBQuery("insert", time.Now())

	if b.ID == "" {
		b.ID = NewID()
	}
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return fmt.Errorf("create booking: %w", translate(err))
	}
	return nil
}

func (r *GormBookingRepository) ForUser(ctx context.Context, userID string) ([]models.Booking, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	bookings := []models.Booking{}
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at asc, id asc").Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}
