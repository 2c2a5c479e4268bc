package models

import "time"

// AboutUs is a single-row table holding the hotel's public information.
type AboutUs struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	Phone     string    `gorm:"size:50" json:"phone"`
	Email     string    `gorm:"size:150" json:"email"`
	Address   string    `gorm:"type:text" json:"address"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AboutUs) TableName() string {
	return "about_us"
}
