package database

import (
	"log"

	"github.com/devansh2311/deskmate/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Desk{},
		&models.DeskBooking{},
		&models.MeetingRoom{},
		&models.MeetingRoomBooking{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Unique index: one desk booking per desk per date, enforced by the
	// database even if the in-transaction conflict check is ever bypassed.
	// Room bookings have interval semantics and rely on the row lock instead.
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_desk_booking_per_date
		ON desk_bookings (desk_id, booking_date)
	`)

	return db
}
