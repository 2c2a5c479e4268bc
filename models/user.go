package models

import "time"

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User ID is supplied by the registering client (e.g. an employee number).
type User struct {
	ID        string       `gorm:"primaryKey;size:64" json:"id"`
	Username  string       `gorm:"uniqueIndex;size:150;not null" json:"username"`
	Password  string       `gorm:"size:255;not null" json:"-"` // bcrypt hash
	Role      string       `gorm:"size:20;not null" json:"role"`
	Profile   *UserProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleStaff
}
