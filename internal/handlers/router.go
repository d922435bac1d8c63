package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-board/internal/middleware"
	"github.com/yukikurage/project-board/internal/paths"
	"github.com/yukikurage/project-board/internal/repository"
	"github.com/yukikurage/project-board/internal/services"
	"github.com/yukikurage/project-board/internal/web"
	"gorm.io/gorm"
)

// SetupRouter installs the page templates and every route on r. Session
// middleware must already be installed on r.
func SetupRouter(r *gin.Engine, db *gorm.DB) error {
	tmpl, err := web.Templates()
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	subTaskRepo := repository.NewSubTaskRepository(db)
	postRepo := repository.NewPostRepository(db)

	// Services
	authz := services.NewAuthorizationService(userRepo, projectRepo, postRepo)
	authService := services.NewAuthService(userRepo)
	projectService := services.NewProjectService(projectRepo, taskRepo, userRepo)
	taskService := services.NewTaskService(taskRepo, subTaskRepo)
	postService := services.NewPostService(postRepo, projectRepo, authz)

	// Handlers
	authHandler := NewAuthHandler(authService)
	homeHandler := NewHomeHandler(projectService, postService)
	projectHandler := NewProjectHandler(projectService)
	taskHandler := NewTaskHandler(taskService)
	postHandler := NewPostHandler(postService, authz)

	// Public routes
	r.GET("/health", Health(db))
	r.GET(paths.Login, authHandler.LoginForm)
	r.POST(paths.Login, authHandler.Login)
	r.GET(paths.Logout, authHandler.Logout)

	// Session-gated routes
	member := middleware.RequireProjectMember(db, authz)
	pages := r.Group("/")
	pages.Use(middleware.RequireAuth())
	{
		pages.GET(paths.Home, homeHandler.Home)
		pages.GET(paths.ProjectView, member, projectHandler.ViewProject)
		pages.GET(paths.TaskView, taskHandler.ViewTask)
		pages.GET(paths.PostList, member, postHandler.ListPosts)
		pages.GET(paths.PostView, postHandler.ViewPost)
		pages.GET(paths.PostNew, member, postHandler.NewPostForm)
		pages.POST(paths.PostNew, member, postHandler.CreatePost)
		pages.GET(paths.PostDelete, postHandler.DeletePost)
		pages.POST(paths.PostDelete, postHandler.DeletePost)
	}

	// Manager pages
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuth(), middleware.RequireProjectManager(db, authz))
	{
		admin.GET("/projects/view", projectHandler.AdminViewProject)
		admin.GET("/tasks/view", taskHandler.AdminViewTask)
		admin.GET("/subtasks/new", taskHandler.NewSubTaskForm)
		admin.POST("/subtasks/new", taskHandler.CreateSubTask)
		admin.GET("/posts", postHandler.AdminListPosts)
		admin.GET("/posts/view", postHandler.AdminViewPost)
	}

	return nil
}
