package models

import "time"

// Intern is the trainee profile attached to a user with the STAGIAIRE role.
// An intern belongs to at most one project at a time.
type Intern struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"not null;uniqueIndex" json:"user_id"`
	School    string    `gorm:"type:varchar(255)" json:"school"`
	ProjectID *uint64   `gorm:"index" json:"project_id"`
	Deleted   bool      `gorm:"not null;default:false" json:"deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User    User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Project *Project `gorm:"foreignKey:ProjectID" json:"-"`
}
