package models

import (
	"time"

	"gorm.io/datatypes"
)

// StayRecord is an active, checked-in occupancy.
type StayRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RoomID    uint      `gorm:"column:room_id;index;not null" json:"room_id"`
	GuestID   uint      `gorm:"column:guest_id;index;not null" json:"guest_id"`
	CheckIn   time.Time `gorm:"column:check_in;type:date;not null" json:"check_in"`
	CheckOut  time.Time `gorm:"column:check_out;type:date;not null" json:"check_out"`
	Adults    int       `gorm:"column:adults;default:1" json:"adults"`
	Children  int       `gorm:"column:children;default:0" json:"children"`
	Room      *Room     `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Guest     *Guest    `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// StayRecordHistory is the append-only copy of a paid stay.
type StayRecordHistory struct {
	ID                  uint           `gorm:"primaryKey" json:"id"`
	StayRecordID        uint           `gorm:"column:stay_record_id;index" json:"stay_record_id"`
	RoomID              uint           `gorm:"column:room_id;index" json:"room_id"`
	GuestID             uint           `gorm:"column:guest_id;index" json:"guest_id"`
	CheckIn             time.Time      `gorm:"column:check_in;type:date" json:"check_in"`
	CheckOut            time.Time      `gorm:"column:check_out;type:date" json:"check_out"`
	Adults              int            `gorm:"column:adults" json:"adults"`
	Children            int            `gorm:"column:children" json:"children"`
	AmountPaid          float64        `gorm:"column:amount_paid" json:"amount_paid"`
	PaymentMethod       string         `gorm:"column:payment_method;size:50" json:"payment_method"`
	TotalServiceCharges float64        `gorm:"column:total_service_charges" json:"total_service_charges"`
	DiscountName        string         `gorm:"column:discount_name;size:100" json:"discount_name"`
	DiscountPercentage  float64        `gorm:"column:discount_percentage" json:"discount_percentage"`
	Services            datatypes.JSON `gorm:"column:services" json:"services"`
	PaidAt              time.Time      `gorm:"column:paid_at;index" json:"paid_at"`
}

func (StayRecordHistory) TableName() string {
	return "stay_record_history"
}
