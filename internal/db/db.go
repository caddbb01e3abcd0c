package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/AstralPath/consult-scheduler/internal/config"
	"github.com/AstralPath/consult-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.AvailabilityWindow{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// The overlap checks in the repositories are read-then-write; these
	// exclusion constraints enforce non-overlap at the write boundary so
	// concurrent requests cannot double-book. A failed DDL here must abort
	// startup, otherwise the race protection would be silently missing.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		log.Fatalf("failed to create btree_gist extension: %v", err)
	}

	for _, ddl := range []string{windowOverlapConstraint, bookingOverlapConstraint} {
		if err := db.Exec(ddl).Error; err != nil {
			log.Fatalf("failed to add exclusion constraint: %v", err)
		}
	}

	return db
}

// The time columns are timestamptz (gorm's mapping for time.Time), so the
// ranges must be tstzrange; tsrange only accepts timestamp without time zone
// and the ALTER would fail.
const windowOverlapConstraint = `
    DO $$ BEGIN
        ALTER TABLE availability_windows
            ADD CONSTRAINT availability_windows_no_overlap
            EXCLUDE USING gist (
                superuser_id WITH =,
                tstzrange(start_time, end_time) WITH &&
            ) WHERE (is_available);
    EXCEPTION
        WHEN duplicate_object THEN NULL;
    END $$
`

const bookingOverlapConstraint = `
    DO $$ BEGIN
        ALTER TABLE bookings
            ADD CONSTRAINT bookings_no_overlap
            EXCLUDE USING gist (
                superuser_id WITH =,
                tstzrange(scheduled_start, scheduled_end) WITH &&
            ) WHERE (status IN ('pending', 'approved'));
    EXCEPTION
        WHEN duplicate_object THEN NULL;
    END $$
`
