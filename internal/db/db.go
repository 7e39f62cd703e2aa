package db

import (
	"log"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/savorspice/assistant/internal/reservation"
)

// Connect opens the database and migrates the reservations table.
// Supported drivers: "mysql" and "sqlite" (local development).
func Connect(driver, dsn string) *gorm.DB {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		dialector = mysql.Open(dsn)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("db open (%s): %v", driver, err)
	}

	if err := gdb.AutoMigrate(&reservation.Reservation{}); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	return gdb
}
