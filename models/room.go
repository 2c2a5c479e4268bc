package models

import (
	"time"
)

// Room is a bookable unit. Status is a lookup into status_codes.
type Room struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	RoomNumber   string      `gorm:"column:room_number;uniqueIndex;size:50;not null" json:"room_number"`
	RoomTypeID   uint        `gorm:"column:room_type_id;index;not null" json:"room_type_id"`
	Rate         float64     `gorm:"column:rate;not null" json:"rate"`
	Image        string      `gorm:"column:image;size:255" json:"image"`
	StatusCodeID uint        `gorm:"column:status_code_id;index;not null" json:"status_code_id"`
	RoomType     *RoomType   `gorm:"foreignKey:RoomTypeID" json:"room_type,omitempty"`
	StatusCode   *StatusCode `gorm:"foreignKey:StatusCodeID" json:"status_code,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
