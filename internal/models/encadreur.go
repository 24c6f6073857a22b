package models

import "time"

// Encadreur is the supervisor profile attached to a user with the ENCADREUR role.
type Encadreur struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	UserID     uint64    `gorm:"not null;uniqueIndex" json:"user_id"`
	Department string    `gorm:"type:varchar(100)" json:"department"`
	Deleted    bool      `gorm:"not null;default:false" json:"deleted"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Projects []Project `gorm:"foreignKey:EncadreurID" json:"-"`
}
