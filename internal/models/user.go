package models

import (
	"time"
)

type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleEncadreur Role = "ENCADREUR"
	RoleStagiaire Role = "STAGIAIRE"
)

type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "ACTIVE"
	AccountStatusPending   AccountStatus = "PENDING"
	AccountStatusSuspended AccountStatus = "SUSPENDED"
)

type User struct {
	ID            uint64        `gorm:"primarykey" json:"id"`
	Email         string        `gorm:"type:varchar(255);index;not null" json:"email"`
	PasswordHash  string        `gorm:"type:varchar(255);not null" json:"-"`
	Nom           string        `gorm:"type:varchar(100)" json:"nom"`
	Prenom        string        `gorm:"type:varchar(100)" json:"prenom"`
	Phone         string        `gorm:"type:varchar(50)" json:"phone"`
	Department    string        `gorm:"type:varchar(100)" json:"department"`
	Avatar        string        `gorm:"type:varchar(255)" json:"avatar"`
	CVPath        string        `gorm:"column:cv_path;type:varchar(255)" json:"cv_path"`
	DateNaissance string        `gorm:"type:varchar(50)" json:"date_naissance"`
	Role          Role          `gorm:"type:varchar(20);not null;default:'STAGIAIRE'" json:"role"`
	AccountStatus AccountStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"account_status"`
	Deleted       bool          `gorm:"not null;default:false;index" json:"deleted"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// FullName joins nom and prenom the way names are displayed across the API.
func (u User) FullName() string {
	return u.Nom + " " + u.Prenom
}
