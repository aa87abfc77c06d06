package database

import (
	"gorm.io/gorm"

	"hotelier/internal/domain"
)

// Migrate runs AutoMigrate for all entities and, on PostgreSQL, installs the
// exclusion constraint that makes "check availability + insert" atomic: two
// non-cancelled reservations on the same room can never hold overlapping
// [check_in, check_out) ranges, no matter how the requests interleave.
// Inserts rejected by the constraint surface as pgconn errors that the
// booking service maps to its conflict error.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Room{},
		&domain.Reservation{},
	); err != nil {
		return err
	}

	if !IsPostgres(db) {
		// SQLite (local dev, tests) has no exclusion constraints; the
		// optimistic availability check is the only guard there.
		return nil
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}

	var cnt int64
	err := db.Raw(
		`SELECT COUNT(1) FROM pg_constraint WHERE conname = 'idx_no_double_booking'`,
	).Scan(&cnt).Error
	if err != nil || cnt > 0 {
		return err
	}

	return db.Exec(`
ALTER TABLE reservations
  ADD CONSTRAINT idx_no_double_booking
  EXCLUDE USING gist (
    room_id WITH =,
    daterange(check_in::date, check_out::date, '[)') WITH &&
  )
  WHERE (status <> 'cancelled')
`).Error
}
