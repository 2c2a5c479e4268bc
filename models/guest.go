package models

import "time"

// Guest identity is keyed by email; reservations and walk-ins reuse an existing row.
type Guest struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:191;uniqueIndex;not null" json:"email"`
	Phone     string    `gorm:"size:50" json:"phone"`
	IDPicture string    `gorm:"column:id_picture;size:255" json:"id_picture"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
