package services

import (
	"errors"
	"strings"

	"github.com/yukikurage/internship-management-api/internal/models"
)

func (suite *ServiceTestSuite) TestRegisterCreatesProfile() {
	user, err := suite.auth.Register(RegisterInput{
		Email:    "intern@b.com",
		Password: "password123",
		Nom:      "Benali",
		Prenom:   "Yassine",
		School:   "ENSIAS",
	})
	suite.Require().NoError(err)
	suite.Equal(models.RoleStagiaire, user.Role)
	suite.Equal(models.AccountStatusPending, user.AccountStatus)
	suite.NotEqual("password123", user.PasswordHash)

	var intern models.Intern
	suite.Require().NoError(suite.db.Where("user_id = ?", user.ID).First(&intern).Error)
	suite.Equal("ENSIAS", intern.School)

	boss, err := suite.auth.Register(RegisterInput{Email: "boss@b.com", Password: "password123", Role: "ENCADREUR", Department: "IT"})
	suite.Require().NoError(err)
	var encadreur models.Encadreur
	suite.Require().NoError(suite.db.Where("user_id = ?", boss.ID).First(&encadreur).Error)
	suite.Equal("IT", encadreur.Department)

	admin, err := suite.auth.Register(RegisterInput{Email: "admin@b.com", Password: "password123", Role: "ADMIN"})
	suite.Require().NoError(err)
	suite.Equal(models.AccountStatusActive, admin.AccountStatus)
}

func (suite *ServiceTestSuite) TestRegisterValidation() {
	_, err := suite.auth.Register(RegisterInput{Password: "password123"})
	suite.True(errors.Is(err, ErrEmailRequired))

	_, err = suite.auth.Register(RegisterInput{Email: "a@b.com", Password: "short"})
	suite.True(errors.Is(err, ErrPasswordTooShort))

	_, err = suite.auth.Register(RegisterInput{Email: "a@b.com", Password: "ééééééé"})
	suite.True(errors.Is(err, ErrPasswordTooShort))

	_, err = suite.auth.Register(RegisterInput{Email: "a@b.com", Password: strings.Repeat("x", 73)})
	suite.True(errors.Is(err, ErrPasswordTooLong))

	_, err = suite.auth.Register(RegisterInput{Email: "a@b.com", Password: "password123", Role: "stagiaire"})
	suite.True(errors.Is(err, ErrInvalidRole))

	suite.createUser("a@b.com", "password123", models.RoleStagiaire)
	_, err = suite.auth.Register(RegisterInput{Email: "a@b.com", Password: "password123"})
	suite.True(errors.Is(err, ErrEmailTaken))
	suite.True(errors.Is(err, ErrConflict))
}

func (suite *ServiceTestSuite) TestLogin() {
	user := suite.createUser("a@b.com", "password123", models.RoleStagiaire)

	got, err := suite.auth.Login(LoginInput{Email: "a@b.com", Password: "password123"})
	suite.Require().NoError(err)
	suite.Equal(user.ID, got.ID)

	_, err = suite.auth.Login(LoginInput{Email: "a@b.com", Password: "nope"})
	suite.True(errors.Is(err, ErrInvalidCredentials))

	_, err = suite.auth.Login(LoginInput{Email: "ghost@b.com", Password: "password123"})
	suite.True(errors.Is(err, ErrInvalidCredentials))

	_, err = suite.users.SuspendAccount(user.ID)
	suite.Require().NoError(err)
	_, err = suite.auth.Login(LoginInput{Email: "a@b.com", Password: "password123"})
	suite.True(errors.Is(err, ErrAccountSuspended))
}

func (suite *ServiceTestSuite) TestRegisterReusesEmailOfDeletedUser() {
	gone := suite.createUser("a@b.com", "password123", models.RoleStagiaire)
	gone.Deleted = true
	suite.Require().NoError(suite.db.Save(gone).Error)

	user, err := suite.auth.Register(RegisterInput{Email: "a@b.com", Password: "password123"})
	suite.Require().NoError(err)
	suite.NotEqual(gone.ID, user.ID)

	_, err = suite.auth.Register(RegisterInput{Email: "a@b.com", Password: "password123"})
	suite.True(errors.Is(err, ErrEmailTaken))

	var interns int64
	suite.Require().NoError(suite.db.Model(&models.Intern{}).Count(&interns).Error)
	suite.Equal(int64(1), interns)
}
