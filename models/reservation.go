package models

import "time"

type Reservation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RoomID    uint      `gorm:"column:room_id;index;not null" json:"room_id"`
	GuestID   uint      `gorm:"column:guest_id;index;not null" json:"guest_id"`
	CheckIn   time.Time `gorm:"column:check_in;type:date;not null" json:"check_in"`
	CheckOut  time.Time `gorm:"column:check_out;type:date;not null;index" json:"check_out"`
	Adults    int       `gorm:"column:adults;default:1" json:"adults"`
	Children  int       `gorm:"column:children;default:0" json:"children"`
	Room      *Room     `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Guest     *Guest    `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
