package models

// Seeded status names. Lifecycle transitions flip rooms between the first two.
const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusMaintenance = "maintenance"
)

// StatusCode carries a room's availability state and its display color.
type StatusCode struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Color string `gorm:"size:20" json:"color"`
}
