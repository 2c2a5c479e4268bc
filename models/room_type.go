package models

type RoomType struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description  string `gorm:"type:text" json:"description"`
	MaxOccupancy int    `gorm:"column:max_occupancy;default:2" json:"max_occupancy"`
}
