// Package migrations holds the schema history. Each migration registers
// itself from init(); cmd/rentalease imports this package for the side
// effect.
package migrations

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/rentalease/app/models"
	"github.com/shashiranjanraj/rentalease/pkg/migration"
)

func init() {
	migration.Register("20250101000001_create_users_table", &createUsersTable{})
	migration.Register("20250101000002_create_admins_table", &createAdminsTable{})
	migration.Register("20250101000003_create_hostings_table", &createHostingsTable{})
	migration.Register("20250101000004_create_bookings_table", &createBookingsTable{})
}

type createUsersTable struct{}

func (m *createUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *createUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(models.TableUsers)
}

type createAdminsTable struct{}

func (m *createAdminsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Admin{})
}

func (m *createAdminsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(models.TableAdmins)
}

type createHostingsTable struct{}

func (m *createHostingsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Hosting{})
}

func (m *createHostingsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("hostings")
}

// Bookings keep no foreign key to hostings: deleting a hosting leaves its
// bookings behind.
type createBookingsTable struct{}

func (m *createBookingsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Booking{})
}

func (m *createBookingsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("bookings")
}
