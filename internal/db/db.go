package db

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Open connects to MySQL and migrates the schema.
func Open(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	if err := Migrate(gdb); err != nil {
		return nil, err
	}
	return gdb, nil
}

// Migrate creates or updates the table structure.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(&User{}, &ConversationTurn{}, &MoodSample{}, &ActivityLog{}, &Badge{})
}
