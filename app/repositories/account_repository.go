package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/rentalease/app/models"
	"github.com/shashiranjanraj/rentalease/pkg/metrics"
)

// GormAccountRepository stores accounts of one kind in table.
type GormAccountRepository struct {
	db    *gorm.DB
	table string
}

func NewAccountRepository(db *gorm.DB, table string) *GormAccountRepository {
	return &GormAccountRepository{db: db, table: table}
}

func (r *GormAccountRepository) Create(ctx context.Context, a *models.Account) error {
	defer metrics.ObserveDBQuery("insert", time.Now())

	if a.ID == "" {
		a.ID = NewID()
	}
	if err := r.db.WithContext(ctx).Table(r.table).Create(a).Error; err != nil {
		return fmt.Errorf("create %s account: %w", r.table, translate(err))
	}
	return nil
}

func (r *GormAccountRepository) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var a models.Account
	err := r.db.WithContext(ctx).Table(r.table).Where("email = ?", email).First(&a).Error
	return a, translate(err)
}
