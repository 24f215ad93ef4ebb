package entity

import (
	"time"

	"github.com/rekar-dev/warehouse-api/internal/domain/enum"
	"gorm.io/gorm"
)

// User represents a user in the system
type User struct {
	ID        uint           `gorm:"primary_key" json:"id"`
	Username  string         `gorm:"size:255;unique;not null" json:"username"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	FullName  string         `gorm:"size:255" json:"full_name"`
	Role      enum.Role      `gorm:"size:50;not null;default:'staff'" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// Capabilities returns the sections this user's role grants access to
func (u *User) Capabilities() enum.CapabilitySet {
	return enum.CapabilitiesFor(u.Role)
}

// CanAccess checks if the user may access a section
func (u *User) CanAccess(section enum.Section) bool {
	return u.Capabilities().Can(section)
}
