package services

import (
	"errors"
	"strings"

	"github.com/spf13/afero"
	"github.com/yukikurage/internship-management-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func (suite *ServiceTestSuite) TestGetByEmail() {
	created := suite.createUser("a@b.com", "oldpassword", models.RoleStagiaire)

	user, err := suite.users.GetByEmail("a@b.com")
	suite.Require().NoError(err)
	suite.Equal(created.ID, user.ID)
	suite.Equal("Alaoui", user.Nom)
	suite.Equal("0600000000", user.Phone)

	_, err = suite.users.GetByEmail("missing@b.com")
	suite.True(errors.Is(err, ErrUserNotFound))
	suite.True(errors.Is(err, ErrNotFound))
}

func (suite *ServiceTestSuite) TestUpdateProfileLeavesAbsentFieldsUntouched() {
	suite.createUser("a@b.com", "oldpassword", models.RoleStagiaire)
	before, err := suite.users.GetByEmail("a@b.com")
	suite.Require().NoError(err)

	updated, err := suite.users.UpdateProfile("a@b.com", UpdateProfileInput{Phone: strPtr("0711111111")})
	suite.Require().NoError(err)
	suite.Equal("0711111111", updated.Phone)

	after, err := suite.users.GetByEmail("a@b.com")
	suite.Require().NoError(err)
	suite.Equal("0711111111", after.Phone)
	suite.Equal(before.Nom, after.Nom)
	suite.Equal(before.Prenom, after.Prenom)
	suite.Equal(before.Department, after.Department)
	suite.Equal(before.Avatar, after.Avatar)
	suite.Equal(before.CVPath, after.CVPath)
	suite.Equal(before.DateNaissance, after.DateNaissance)
	suite.Equal(before.PasswordHash, after.PasswordHash)
}

func (suite *ServiceTestSuite) TestUploadAvatar() {
	suite.createUser("a@b.com", "oldpassword", models.RoleStagiaire)

	_, err := suite.users.UploadAvatar("a@b.com", FileUpload{Data: []byte("hello"), ContentType: "text/plain", Filename: "a.txt"})
	suite.True(errors.Is(err, ErrValidation))

	_, err = suite.users.UploadAvatar("a@b.com", FileUpload{ContentType: "image/png", Filename: "a.png"})
	suite.True(errors.Is(err, ErrEmptyFile))

	path, err := suite.users.UploadAvatar("a@b.com", FileUpload{Data: []byte("png"), ContentType: "image/png", Filename: "me.png"})
	suite.Require().NoError(err)
	suite.True(strings.HasPrefix(path, "/uploads/profile-images/"))
	suite.True(strings.HasSuffix(path, ".png"))

	name := strings.TrimPrefix(path, "/uploads/profile-images/")
	exists, err := afero.Exists(suite.fs, "/srv/uploads/profile-images/"+name)
	suite.Require().NoError(err)
	suite.True(exists)

	user, err := suite.users.GetByEmail("a@b.com")
	suite.Require().NoError(err)
	suite.Equal(path, user.Avatar)
}

func (suite *ServiceTestSuite) TestUploadAvatarWithoutExtension() {
	suite.createUser("a@b.com", "oldpassword", models.RoleStagiaire)

	path, err := suite.users.UploadAvatar("a@b.com", FileUpload{Data: []byte("gif"), ContentType: "image/gif"})
	suite.Require().NoError(err)
	suite.NotContains(strings.TrimPrefix(path, "/uploads/profile-images/"), ".")
}

func (suite *ServiceTestSuite) TestUploadCV() {
	suite.createUser("a@b.com", "oldpassword", models.RoleStagiaire)

	_, err := suite.users.UploadCV("a@b.com", FileUpload{Data: []byte("doc"), ContentType: "application/msword", Filename: "cv.doc"})
	suite.True(errors.Is(err, ErrNotAPDF))

	path, err := suite.users.UploadCV("a@b.com", FileUpload{Data: []byte("%PDF"), ContentType: "application/pdf", Filename: "my-cv.final.PDF"})
	suite.Require().NoError(err)
	suite.True(strings.HasPrefix(path, "/uploads/cv-files/"))
	suite.True(strings.HasSuffix(path, ".pdf"))
	suite.NotContains(path, "my-cv")

	user, err := suite.users.GetByEmail("a@b.com")
	suite.Require().NoError(err)
	suite.Equal(path, user.CVPath)
}

func (suite *ServiceTestSuite) TestChangePassword() {
	suite.createUser("a@b.com", "oldpassword", models.RoleStagiaire)

	err := suite.users.ChangePassword("a@b.com", "wrong", "newpass12")
	suite.True(errors.Is(err, ErrAuth))

	err = suite.users.ChangePassword("a@b.com", "oldpassword", "newpass")
	suite.True(errors.Is(err, ErrValidation))

	// seven characters, fourteen bytes
	err = suite.users.ChangePassword("a@b.com", "oldpassword", "ééééééé")
	suite.True(errors.Is(err, ErrPasswordTooShort))

	err = suite.users.ChangePassword("a@b.com", "oldpassword", strings.Repeat("a", 73))
	suite.True(errors.Is(err, ErrPasswordTooLong))
	suite.True(errors.Is(err, ErrValidation))

	suite.Require().NoError(suite.users.ChangePassword("a@b.com", "oldpassword", "éééééééé"))

	user, err := suite.users.GetByEmail("a@b.com")
	suite.Require().NoError(err)
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("éééééééé")))
}

func (suite *ServiceTestSuite) TestSuspendAndActivate() {
	created := suite.createUser("a@b.com", "oldpassword", models.RoleStagiaire)

	user, err := suite.users.SuspendAccount(created.ID)
	suite.Require().NoError(err)
	suite.Equal(models.AccountStatusSuspended, user.AccountStatus)

	user, err = suite.users.SuspendAccount(created.ID)
	suite.Require().NoError(err)
	suite.Equal(models.AccountStatusSuspended, user.AccountStatus)

	user, err = suite.users.ActivateAccount(created.ID)
	suite.Require().NoError(err)
	suite.Equal(models.AccountStatusActive, user.AccountStatus)

	_, err = suite.users.ActivateAccount(9999)
	suite.True(errors.Is(err, ErrUserNotFound))
}

func (suite *ServiceTestSuite) TestListUsers() {
	suite.createUser("admin@b.com", "password123", models.RoleAdmin)
	suite.createUser("intern@b.com", "password123", models.RoleStagiaire)

	all, err := suite.users.ListUsers("")
	suite.Require().NoError(err)
	suite.Len(all, 2)

	admins, err := suite.users.ListUsers("ADMIN")
	suite.Require().NoError(err)
	suite.Require().Len(admins, 1)
	suite.Equal("admin@b.com", admins[0].Email)

	_, err = suite.users.ListUsers("ROOT")
	suite.True(errors.Is(err, ErrInvalidRole))
}

func (suite *ServiceTestSuite) TestGetAccountLoadsRoleProfile() {
	intern := suite.createIntern("intern@b.com", "Benali")
	encadreur := suite.createEncadreur("boss@b.com")
	admin := suite.createUser("admin@b.com", "password123", models.RoleAdmin)

	account, err := suite.users.GetAccount(intern.UserID)
	suite.Require().NoError(err)
	suite.Require().NotNil(account.Intern)
	suite.Equal(intern.ID, account.Intern.ID)
	suite.Nil(account.Encadreur)

	account, err = suite.users.GetAccount(encadreur.UserID)
	suite.Require().NoError(err)
	suite.Require().NotNil(account.Encadreur)
	suite.Equal(encadreur.ID, account.Encadreur.ID)
	suite.Nil(account.Intern)

	account, err = suite.users.GetAccount(admin.ID)
	suite.Require().NoError(err)
	suite.Equal("admin@b.com", account.User.Email)
	suite.Nil(account.Encadreur)
	suite.Nil(account.Intern)

	_, err = suite.users.GetAccount(9999)
	suite.True(errors.Is(err, ErrUserNotFound))
}
