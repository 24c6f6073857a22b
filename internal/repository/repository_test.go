package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/internship-management-api/internal/database"
	"github.com/yukikurage/internship-management-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A second pooled connection would open a second, empty in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(database.Models()...))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		Email:         email,
		PasswordHash:  "hash",
		Nom:           "Nom-" + email,
		Prenom:        "Prenom",
		Role:          role,
		AccountStatus: models.AccountStatusActive,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createIntern(t *testing.T, db *gorm.DB, email string) *models.Intern {
	t.Helper()
	user := createUser(t, db, email, models.RoleStagiaire)
	intern := &models.Intern{UserID: user.ID}
	require.NoError(t, db.Create(intern).Error)
	return intern
}

func createEncadreur(t *testing.T, db *gorm.DB, email string) *models.Encadreur {
	t.Helper()
	user := createUser(t, db, email, models.RoleEncadreur)
	encadreur := &models.Encadreur{UserID: user.ID, Department: "IT"}
	require.NoError(t, db.Create(encadreur).Error)
	return encadreur
}
