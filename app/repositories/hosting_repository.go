package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/rentalease/app/models"
	"github.com/shashiranjanraj/rentalease/pkg/metrics"
)

type GormHostingRepository struct {
	db *gorm.DB
}

func NewHostingRepository(db *gorm.DB) *GormHostingRepository {
	return &GormHostingRepository{db: db}
}

func (r *GormHostingRepository) Create(ctx context.Context, h *models.Hosting) error {
	defer metrics.ObserveDBQuery("insert", time.Now())

	if h.ID == "" {
		h.ID = NewID()
	}
	if err := r.db.WithContext(ctx).Create(h).Error; err != nil {
		return fmt.Errorf("create hosting: %w", translate(err))
	}
	return nil
}

func (r *GormHostingRepository) All(ctx context.Context) ([]models.Hosting, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	hostings := []models.Hosting{}
	if err := r.db.WithContext(ctx).Order("created_at asc, id asc").Find(&hostings).Error; err != nil {
		return nil, fmt.Errorf("list hostings: %w", err)
	}
	return hostings, nil
}

func (r *GormHostingRepository) FindByID(ctx context.Context, id string) (models.Hosting, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var h models.Hosting
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&h).Error
	return h, translate(err)
}

func (r *GormHostingRepository) Delete(ctx context.Context, id string) error {
	defer metrics.ObserveDBQuery("delete", time.Now())

	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Hosting{})
	if res.Error != nil {
		return fmt.Errorf("delete hosting: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
