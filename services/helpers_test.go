package services

import (
	"path/filepath"
	"testing"
	"time"

	"hotel-management/config"
	"hotel-management/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "hotel.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	require.NoError(t, config.Seed(db, ""))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func seedRoom(t *testing.T, db *gorm.DB, number string) *models.Room {
	t.Helper()
	room, err := NewRoomService(db).Create(t.Context(), RoomInput{
		RoomNumber: number,
		RoomTypeID: 1,
		Rate:       150,
		Image:      number + ".jpg",
	})
	require.NoError(t, err)
	return room
}

func booking(roomID uint, email string, checkIn, checkOut time.Time) BookingInput {
	return BookingInput{
		RoomID:   roomID,
		Guest:    GuestInput{Name: "Jane Doe", Email: email, Phone: "555-0100"},
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Adults:   2,
		Children: 1,
	}
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func roomStatus(t *testing.T, db *gorm.DB, roomID uint) string {
	t.Helper()
	var room models.Room
	require.NoError(t, db.Preload("StatusCode").First(&room, roomID).Error)
	require.NotNil(t, room.StatusCode)
	return room.StatusCode.Name
}
