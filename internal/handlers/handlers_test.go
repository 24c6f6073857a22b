package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/internship-management-api/internal/config"
	"github.com/yukikurage/internship-management-api/internal/constants"
	"github.com/yukikurage/internship-management-api/internal/database"
	"github.com/yukikurage/internship-management-api/internal/repository"
	"github.com/yukikurage/internship-management-api/internal/services"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db     *gorm.DB
	fs     afero.Fs
	router *gin.Engine
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(database.Models()...))

	log := zap.NewNop()
	fs := afero.NewMemMapFs()

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	activity := services.NewActivityService(repository.NewActivityRepository(db), log)
	encadreurRepo := repository.NewEncadreurRepository(db)
	internRepo := repository.NewInternRepository(db)
	userService := services.NewUserService(userRepo, encadreurRepo, internRepo, fs, config.UploadConfig{
		AvatarDir: "/uploads/profile-images",
		CVDir:     "/uploads/cv-files",
	}, log)
	projectService := services.NewProjectService(projectRepo, encadreurRepo, internRepo, activity, log)
	taskService := services.NewTaskService(repository.NewTaskRepository(db), projectRepo, activity, nil, log)
	authService := services.NewAuthService(userRepo, activity, log)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions(constants.SessionCookieName, cookie.NewStore([]byte("secret"))))
	RegisterRoutes(r, Set{
		Auth:     NewAuthHandler(authService, userService, log),
		Users:    NewUserHandler(userService, log),
		Projects: NewProjectHandler(projectService, log),
		Tasks:    NewTaskHandler(taskService, log),
		Activity: NewActivityHandler(activity, log),
	})

	return testEnv{db: db, fs: fs, router: r}
}

func (e testEnv) request(t *testing.T, method, path string, body any, session *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if session != nil {
		req.AddCookie(session)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// signup registers an account and returns its session cookie.
func (e testEnv) signup(t *testing.T, email, role string) *http.Cookie {
	t.Helper()

	w := e.request(t, http.MethodPost, "/api/auth/register", map[string]string{
		"email":    email,
		"password": "password123",
		"nom":      "Nom",
		"prenom":   email,
		"role":     role,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	return e.login(t, email, "password123")
}

func (e testEnv) login(t *testing.T, email, password string) *http.Cookie {
	t.Helper()

	w := e.request(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	for _, c := range w.Result().Cookies() {
		if c.Name == constants.SessionCookieName {
			return c
		}
	}
	t.Fatalf("no session cookie in login response")
	return nil
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func itoa(id uint64) string {
	return strconv.FormatUint(id, 10)
}
