package models

import "time"

type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "PLANNING"
	ProjectStatusInProgress ProjectStatus = "IN_PROGRESS"
	ProjectStatusCompleted  ProjectStatus = "COMPLETED"
	ProjectStatusOnHold     ProjectStatus = "ON_HOLD"
	ProjectStatusCancelled  ProjectStatus = "CANCELLED"
)

type Project struct {
	ID          uint64        `gorm:"primarykey" json:"id"`
	Title       string        `gorm:"type:varchar(255);not null" json:"title"`
	Description string        `gorm:"type:text" json:"description"`
	StartDate   *time.Time    `gorm:"type:date" json:"start_date"`
	EndDate     *time.Time    `gorm:"type:date" json:"end_date"`
	Department  string        `gorm:"type:varchar(100);index" json:"department"`
	Progress    int           `gorm:"not null;default:0" json:"progress"`
	Status      ProjectStatus `gorm:"type:varchar(20);not null;default:'PLANNING'" json:"status"`
	EncadreurID *uint64       `gorm:"index" json:"encadreur_id"`
	Deleted     bool          `gorm:"not null;default:false;index" json:"deleted"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	// Relations
	Encadreur *Encadreur `gorm:"foreignKey:EncadreurID" json:"encadreur,omitempty"`
	Interns   []Intern   `gorm:"foreignKey:ProjectID" json:"interns,omitempty"`
	Tasks     []Task     `gorm:"foreignKey:ProjectID" json:"-"`
}

// SupervisorUserID returns the user id of the owning encadreur, or nil when the project
// has none or it was not loaded.
func (p *Project) SupervisorUserID() *uint64 {
	if p == nil || p.Encadreur == nil || p.Encadreur.UserID == 0 {
		return nil
	}
	id := p.Encadreur.UserID
	return &id
}
