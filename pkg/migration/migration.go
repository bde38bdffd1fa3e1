// Package migration runs versioned schema changes against a gorm database.
//
// Each migration registers itself from an init() in database/migrations:
//
//	func init() {
//	    migration.Register("20240101000001_create_users_table", &createUsersTable{})
//	}
//
// and the CLI drives a Runner:
//
//	rentalease migrate            // run all pending, as one batch
//	rentalease migrate:rollback   // reverse the last batch
//	rentalease migrate:status
package migration

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/rentalease/pkg/logger"
)

// Migration is implemented by every schema change.
type Migration interface {
	Up(db *gorm.DB) error
	Down(db *gorm.DB) error
}

// migrationRecord is a row of the tracking table.
type migrationRecord struct {
	ID    uint      `gorm:"primaryKey;autoIncrement"`
	Name  string    `gorm:"uniqueIndex;size:255;not null"`
	Batch int       `gorm:"not null"`
	RunAt time.Time `gorm:"autoCreateTime"`
}

func (migrationRecord) TableName() string { return "schema_migrations" }

// Named pairs a migration with its timestamp-prefixed name.
type Named struct {
	Name string
	M    Migration
}

var registry []Named

// Register adds a migration to the global registry.
func Register(name string, m Migration) {
	registry = append(registry, Named{Name: name, M: m})
}

// Registered returns the global registry sorted by name.
func Registered() []Named {
	out := append([]Named(nil), registry...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Runner executes and tracks migrations.
type Runner struct {
	db         *gorm.DB
	migrations []Named
	out        io.Writer
}

// New creates a Runner over the given migrations; progress lines go to out.
func New(db *gorm.DB, migrations []Named, out io.Writer) *Runner {
	if out == nil {
		out = io.Discard
	}
	sorted := append([]Named(nil), migrations...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return &Runner{db: db, migrations: sorted, out: out}
}

// EnsureTable creates the tracking table if it does not exist.
func (r *Runner) EnsureTable() error {
	return r.db.AutoMigrate(&migrationRecord{})
}

// Pending returns migrations that have not run yet, in name order.
func (r *Runner) Pending() ([]Named, error) {
	ran, err := r.ran()
	if err != nil {
		return nil, err
	}

	var pending []Named
	for _, m := range r.migrations {
		if _, ok := ran[m.Name]; !ok {
			pending = append(pending, m)
		}
	}
	return pending, nil
}

// Run executes all pending migrations as one batch.
func (r *Runner) Run() error {
	if err := r.EnsureTable(); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}

	pending, err := r.Pending()
	if err != nil {
		return fmt.Errorf("migration: fetch pending: %w", err)
	}

	if len(pending) == 0 {
		fmt.Fprintln(r.out, "Nothing to migrate.")
		return nil
	}

	batch, err := r.lastBatch()
	if err != nil {
		return err
	}
	batch++

	for _, m := range pending {
		logger.Info("migration: running", "name", m.Name)

		if err := m.M.Up(r.db); err != nil {
			return fmt.Errorf("migration: %s up: %w", m.Name, err)
		}
		if err := r.db.Create(&migrationRecord{Name: m.Name, Batch: batch}).Error; err != nil {
			return fmt.Errorf("migration: record %s: %w", m.Name, err)
		}

		fmt.Fprintf(r.out, "Migrated:  %s\n", m.Name)
	}

	logger.Info("migration: done", "ran", len(pending), "batch", batch)
	return nil
}

// Rollback reverses every migration of the most recent batch.
func (r *Runner) Rollback() error {
	if err := r.EnsureTable(); err != nil {
		return fmt.Errorf("migration: ensure table: %w", err)
	}

	last, err := r.lastBatch()
	if err != nil {
		return err
	}
	if last == 0 {
		fmt.Fprintln(r.out, "Nothing to roll back.")
		return nil
	}

	var records []migrationRecord
	if err := r.db.Where("batch = ?", last).Order("id desc").Find(&records).Error; err != nil {
		return fmt.Errorf("migration: load batch %d: %w", last, err)
	}

	byName := make(map[string]Migration, len(r.migrations))
	for _, m := range r.migrations {
		byName[m.Name] = m.M
	}

	for _, rec := range records {
		m, ok := byName[rec.Name]
		if !ok {
			return fmt.Errorf("migration: cannot roll back %s: not registered", rec.Name)
		}

		logger.Info("migration: rolling back", "name", rec.Name)
		if err := m.Down(r.db); err != nil {
			return fmt.Errorf("migration: %s down: %w", rec.Name, err)
		}
		if err := r.db.Delete(&rec).Error; err != nil {
			return fmt.Errorf("migration: unrecord %s: %w", rec.Name, err)
		}

		fmt.Fprintf(r.out, "Rolled back:  %s\n", rec.Name)
	}
	return nil
}

// Status prints every migration and whether it has run.
func (r *Runner) Status() error {
	if err := r.EnsureTable(); err != nil {
		return err
	}

	ran, err := r.ran()
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "%-50s  %-8s  %s\n", "Migration", "Status", "Batch")
	fmt.Fprintln(r.out, strings.Repeat("-", 68))
	for _, m := range r.migrations {
		if rec, ok := ran[m.Name]; ok {
			fmt.Fprintf(r.out, "%-50s  %-8s  %d\n", m.Name, "Ran", rec.Batch)
		} else {
			fmt.Fprintf(r.out, "%-50s  %-8s  -\n", m.Name, "Pending")
		}
	}
	return nil
}

func (r *Runner) ran() (map[string]migrationRecord, error) {
	var records []migrationRecord
	if err := r.db.Find(&records).Error; err != nil {
		return nil, err
	}
	out := make(map[string]migrationRecord, len(records))
	for _, rec := range records {
		out[rec.Name] = rec
	}
	return out, nil
}

func (r *Runner) lastBatch() (int, error) {
	var last struct{ Max int }
	err := r.db.Model(&migrationRecord{}).Select("COALESCE(MAX(batch), 0) as max").Scan(&last).Error
	if err != nil {
		return 0, fmt.Errorf("migration: last batch: %w", err)
	}
	return last.Max, nil
}
