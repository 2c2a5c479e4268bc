package models

import "time"

// Placeholder values written for a freshly registered user.
const (
	DefaultProfileName    = "New User"
	DefaultProfileEmail   = "user@example.com"
	DefaultProfilePhone   = "000-000-0000"
	DefaultProfileAddress = "N/A"
	DefaultProfilePicture = "default-profile.png"
)

type UserProfile struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         string    `gorm:"uniqueIndex;size:64;not null" json:"user_id"`
	FullName       string    `gorm:"size:255" json:"full_name"`
	Email          string    `gorm:"size:150" json:"email"`
	Phone          string    `gorm:"size:50" json:"phone"`
	Address        string    `gorm:"type:text" json:"address"`
	ProfilePicture string    `gorm:"size:255" json:"profile_picture"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewDefaultProfile is the placeholder profile written alongside a new user.
func NewDefaultProfile(userID string) *UserProfile {
	return &UserProfile{
		UserID:         userID,
		FullName:       DefaultProfileName,
		Email:          DefaultProfileEmail,
		Phone:          DefaultProfilePhone,
		Address:        DefaultProfileAddress,
		ProfilePicture: DefaultProfilePicture,
	}
}
