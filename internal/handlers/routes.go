package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/internship-management-api/internal/middleware"
	"github.com/yukikurage/internship-management-api/internal/models"
)

// Set groups every handler the API mounts.
type Set struct {
	Auth     *AuthHandler
	Users    *UserHandler
	Projects *ProjectHandler
	Tasks    *TaskHandler
	Activity *ActivityHandler
}

// RegisterRoutes mounts the API under /api. Session middleware must already be installed on r.
func RegisterRoutes(r *gin.Engine, h Set) {
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Internship Management API is running",
		})
	})

	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
			auth.GET("/me", middleware.RequireAuth(), h.Auth.GetCurrentUser)
		}

		adminOnly := middleware.RequireRole(models.RoleAdmin)

		// User routes (protected)
		users := api.Group("/users")
		users.Use(middleware.RequireAuth())
		{
			users.GET("/profile", h.Users.GetProfile)
			users.PUT("/profile", h.Users.UpdateProfile)
			users.POST("/profile/avatar", h.Users.UploadAvatar)
			users.POST("/profile/cv", h.Users.UploadCV)
			users.POST("/change-password", h.Users.ChangePassword)
			users.GET("", adminOnly, h.Users.ListUsers)
			users.PUT("/:id/suspend", adminOnly, h.Users.SuspendAccount)
			users.PUT("/:id/activate", adminOnly, h.Users.ActivateAccount)
		}

		// Project routes (protected)
		projects := api.Group("/projects")
		projects.Use(middleware.RequireAuth())
		{
			projects.GET("", h.Projects.ListProjects)
			projects.POST("", h.Projects.CreateProject)
			projects.GET("/:id", h.Projects.GetProject)
			projects.PUT("/:id", h.Projects.UpdateProject)
			projects.DELETE("/:id", h.Projects.DeleteProject)
			projects.POST("/:id/interns", h.Projects.AssignInterns)
			projects.POST("/:id/tasks/suggest", h.Tasks.SuggestTasks)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth())
		{
			tasks.GET("", h.Tasks.ListTasks)
			tasks.POST("", h.Tasks.CreateTask)
			tasks.GET("/:id", h.Tasks.GetTask)
			tasks.PUT("/:id", h.Tasks.UpdateTask)
			tasks.PATCH("/:id/status", h.Tasks.UpdateTaskStatus)
			tasks.DELETE("/:id", h.Tasks.DeleteTask)
		}

		// Activity routes (admin)
		api.GET("/activities", middleware.RequireAuth(), adminOnly, h.Activity.ListActivities)
	}
}
