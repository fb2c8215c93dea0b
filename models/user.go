package models

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User accounts are created by the seeder only; the API exposes reads and
// the online toggle. The password is an opaque string and is serialized
// as-is, matching the reference wire format.
type User struct {
	ID             int       `json:"id" gorm:"primaryKey"`
	Username       string    `json:"username" gorm:"uniqueIndex;not null"`
	Password       string    `json:"password" gorm:"not null"`
	Name           string    `json:"name" gorm:"not null"`
	Email          string    `json:"email" gorm:"not null"`
	AvatarInitials string    `json:"avatarInitials" gorm:"not null"`
	AvatarColor    string    `json:"avatarColor" gorm:"not null"`
	Role           string    `json:"role" gorm:"not null;default:user"`
	Online         bool      `json:"online" gorm:"default:false"`
	CreatedAt      time.Time `json:"createdAt"`
}
