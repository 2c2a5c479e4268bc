package models

type Discount struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Name       string  `gorm:"size:100;not null" json:"name"`
	Percentage float64 `gorm:"not null" json:"percentage"`
}
