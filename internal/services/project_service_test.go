package services

import (
	"errors"
	"time"

	"github.com/yukikurage/internship-management-api/internal/models"
)

func (suite *ServiceTestSuite) TestCreateProjectDefaults() {
	project, err := suite.projects.Create(ProjectInput{Title: strPtr("Apollo")})
	suite.Require().NoError(err)
	suite.Equal(0, project.Progress)
	suite.Equal(models.ProjectStatusPlanning, project.Status)
	suite.Nil(project.EncadreurID)

	entries := suite.activities()
	suite.Require().Len(entries, 1)
	suite.Equal(models.ActivityCreate, entries[0].Action)
	suite.Equal(models.EntityProject, entries[0].EntityType)
	suite.Equal(project.ID, entries[0].EntityID)
	suite.Nil(entries[0].UserID)
}

func (suite *ServiceTestSuite) TestCreateProjectWithEncadreur() {
	encadreur := suite.createEncadreur("boss@b.com")
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	project, err := suite.projects.Create(ProjectInput{
		Title:       strPtr("Apollo"),
		Department:  strPtr("IT"),
		StartDate:   &start,
		Progress:    intPtr(10),
		Status:      strPtr("IN_PROGRESS"),
		EncadreurID: &encadreur.ID,
	})
	suite.Require().NoError(err)
	suite.Require().NotNil(project.Encadreur)
	suite.Equal(encadreur.ID, project.Encadreur.ID)
	suite.Equal(models.ProjectStatusInProgress, project.Status)
	suite.Equal(10, project.Progress)

	entries := suite.activities()
	suite.Require().Len(entries, 1)
	suite.Require().NotNil(entries[0].UserID)
	suite.Equal(encadreur.UserID, *entries[0].UserID)
}

func (suite *ServiceTestSuite) TestCreateProjectValidation() {
	_, err := suite.projects.Create(ProjectInput{})
	suite.True(errors.Is(err, ErrTitleRequired))

	_, err = suite.projects.Create(ProjectInput{Title: strPtr("A"), Status: strPtr("planning")})
	suite.True(errors.Is(err, ErrInvalidProjectStatus))

	_, err = suite.projects.Create(ProjectInput{Title: strPtr("A"), Progress: intPtr(101)})
	suite.True(errors.Is(err, ErrInvalidProgress))

	_, err = suite.projects.Create(ProjectInput{Title: strPtr("A"), EncadreurID: uint64Ptr(42)})
	suite.True(errors.Is(err, ErrEncadreurNotFound))

	suite.Empty(suite.activities())
}

func (suite *ServiceTestSuite) TestUpdateProjectIsPartial() {
	encadreur := suite.createEncadreur("boss@b.com")
	project, err := suite.projects.Create(ProjectInput{
		Title:       strPtr("Apollo"),
		Description: strPtr("Moon"),
		Department:  strPtr("IT"),
		EncadreurID: &encadreur.ID,
	})
	suite.Require().NoError(err)

	updated, err := suite.projects.Update(project.ID, ProjectInput{Progress: intPtr(50)})
	suite.Require().NoError(err)
	suite.Equal(50, updated.Progress)
	suite.Equal("Apollo", updated.Title)
	suite.Equal("Moon", updated.Description)
	suite.Equal("IT", updated.Department)
	suite.Require().NotNil(updated.EncadreurID)
	suite.Equal(encadreur.ID, *updated.EncadreurID)

	_, err = suite.projects.Update(project.ID, ProjectInput{Status: strPtr("BOGUS")})
	suite.True(errors.Is(err, ErrInvalidProjectStatus))

	entries := suite.activities()
	suite.Require().Len(entries, 2)
	suite.Equal(models.ActivityUpdate, entries[1].Action)
}

func (suite *ServiceTestSuite) TestDeleteProjectIsSoft() {
	project, err := suite.projects.Create(ProjectInput{Title: strPtr("Apollo")})
	suite.Require().NoError(err)
	other, err := suite.projects.Create(ProjectInput{Title: strPtr("Gemini")})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.projects.Delete(project.ID))

	all, err := suite.projects.ListAll()
	suite.Require().NoError(err)
	suite.Require().Len(all, 1)
	suite.Equal(other.ID, all[0].ID)

	found, err := suite.projects.GetByID(project.ID)
	suite.Require().NoError(err)
	suite.True(found.Deleted)

	err = suite.projects.Delete(project.ID)
	suite.True(errors.Is(err, ErrProjectNotFound))
	_, err = suite.projects.Update(project.ID, ProjectInput{Title: strPtr("x")})
	suite.True(errors.Is(err, ErrProjectNotFound))

	_, err = suite.projects.GetByID(9999)
	suite.True(errors.Is(err, ErrProjectNotFound))
}

func (suite *ServiceTestSuite) TestDeleteProjectDoesNotCascade() {
	project, err := suite.projects.Create(ProjectInput{Title: strPtr("Apollo")})
	suite.Require().NoError(err)
	intern := suite.createIntern("i@b.com", "Intern")
	_, err = suite.projects.AssignInterns(project.ID, []uint64{intern.ID})
	suite.Require().NoError(err)
	task, err := suite.tasks.Create(TaskInput{Title: strPtr("Write report"), ProjectID: &project.ID})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.projects.Delete(project.ID))

	stillLive, err := suite.tasks.GetByID(task.ID)
	suite.Require().NoError(err)
	suite.False(stillLive.Deleted)

	var reloaded models.Intern
	suite.Require().NoError(suite.db.First(&reloaded, intern.ID).Error)
	suite.Require().NotNil(reloaded.ProjectID)
	suite.Equal(project.ID, *reloaded.ProjectID)
}

func (suite *ServiceTestSuite) TestAssignInternsAllOrNothing() {
	project, err := suite.projects.Create(ProjectInput{Title: strPtr("Apollo")})
	suite.Require().NoError(err)
	first := suite.createIntern("one@b.com", "One")
	third := suite.createIntern("three@b.com", "Three")

	_, err = suite.projects.AssignInterns(project.ID, []uint64{first.ID, 9999, third.ID})
	suite.True(errors.Is(err, ErrInternNotFound))

	var interns []models.Intern
	suite.Require().NoError(suite.db.Find(&interns).Error)
	for _, intern := range interns {
		suite.Nil(intern.ProjectID)
	}

	assigned, err := suite.projects.AssignInterns(project.ID, []uint64{third.ID, first.ID, third.ID})
	suite.Require().NoError(err)
	suite.Require().Len(assigned.Interns, 2)
	suite.Equal(first.ID, assigned.Interns[0].ID)
	suite.Equal("One", assigned.Interns[0].User.Nom)

	_, err = suite.projects.AssignInterns(9999, []uint64{first.ID})
	suite.True(errors.Is(err, ErrProjectNotFound))
}

func (suite *ServiceTestSuite) TestAssignInternsMovesFromPreviousProject() {
	apollo, err := suite.projects.Create(ProjectInput{Title: strPtr("Apollo")})
	suite.Require().NoError(err)
	gemini, err := suite.projects.Create(ProjectInput{Title: strPtr("Gemini")})
	suite.Require().NoError(err)
	intern := suite.createIntern("i@b.com", "Intern")

	_, err = suite.projects.AssignInterns(apollo.ID, []uint64{intern.ID})
	suite.Require().NoError(err)
	_, err = suite.projects.AssignInterns(gemini.ID, []uint64{intern.ID})
	suite.Require().NoError(err)

	byIntern, err := suite.projects.ListByIntern(intern.ID)
	suite.Require().NoError(err)
	suite.Require().Len(byIntern, 1)
	suite.Equal(gemini.ID, byIntern[0].ID)

	reloaded, err := suite.projects.GetByID(apollo.ID)
	suite.Require().NoError(err)
	suite.Empty(reloaded.Interns)
}

func (suite *ServiceTestSuite) TestAssignNoInternsIsNoop() {
	project, err := suite.projects.Create(ProjectInput{Title: strPtr("Apollo")})
	suite.Require().NoError(err)

	got, err := suite.projects.AssignInterns(project.ID, nil)
	suite.Require().NoError(err)
	suite.Equal(project.ID, got.ID)
	suite.Len(suite.activities(), 1)
}

func (suite *ServiceTestSuite) TestListProjectsByFilters() {
	encadreur := suite.createEncadreur("boss@b.com")
	_, err := suite.projects.Create(ProjectInput{Title: strPtr("A"), Department: strPtr("IT"), EncadreurID: &encadreur.ID})
	suite.Require().NoError(err)
	_, err = suite.projects.Create(ProjectInput{Title: strPtr("B"), Department: strPtr("HR")})
	suite.Require().NoError(err)

	byEncadreur, err := suite.projects.ListByEncadreur(encadreur.ID)
	suite.Require().NoError(err)
	suite.Require().Len(byEncadreur, 1)
	suite.Equal("A", byEncadreur[0].Title)

	byDept, err := suite.projects.ListByDepartment("HR")
	suite.Require().NoError(err)
	suite.Require().Len(byDept, 1)
	suite.Equal("B", byDept[0].Title)

	_, err = suite.projects.ListByEncadreur(9999)
	suite.True(errors.Is(err, ErrEncadreurNotFound))
	_, err = suite.projects.ListByIntern(9999)
	suite.True(errors.Is(err, ErrInternNotFound))
}
