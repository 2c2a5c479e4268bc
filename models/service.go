package models

import "time"

// Service is a catalogue entry that can be billed to a stay.
type Service struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:150;not null" json:"name"`
	Price       float64 `gorm:"not null" json:"price"`
	Description string  `gorm:"type:text" json:"description"`
}

// ServiceListItem is a service billed to one stay record.
type ServiceListItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	StayRecordID uint      `gorm:"column:stay_record_id;index;not null" json:"stay_record_id"`
	ServiceID    uint      `gorm:"column:service_id;index;not null" json:"service_id"`
	Quantity     int       `gorm:"column:quantity;default:1" json:"quantity"`
	Total        float64   `gorm:"column:total" json:"total"`
	Service      *Service  `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func (ServiceListItem) TableName() string {
	return "service_list"
}
