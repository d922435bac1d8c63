package middleware

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-board/internal/constants"
	pageerrors "github.com/yukikurage/project-board/internal/errors"
	"github.com/yukikurage/project-board/internal/models"
	"github.com/yukikurage/project-board/internal/repository"
	"github.com/yukikurage/project-board/internal/services"
	"github.com/yukikurage/project-board/internal/utils"
	"gorm.io/gorm"
)

// RequireProjectMember lets system admins and members of the requested
// project through
func RequireProjectMember(db *gorm.DB, authz *services.AuthorizationService) gin.HandlerFunc {
	return projectGate(db, func(loginID string, projectID uint64) error {
		return authz.EnsureProjectMember(loginID, projectID)
	})
}

// RequireProjectManager lets system admins and managers of the requested
// project through
func RequireProjectManager(db *gorm.DB, authz *services.AuthorizationService) gin.HandlerFunc {
	return projectGate(db, func(loginID string, projectID uint64) error {
		_, err := authz.EnsureProjectManager(loginID, projectID)
		return err
	})
}

func projectGate(db *gorm.DB, check func(loginID string, projectID uint64) error) gin.HandlerFunc {
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	return func(c *gin.Context) {
		loginID, exists := GetUserID(c)
		if !exists {
			pageerrors.Unauthenticated(c)
			return
		}

		project, ok := resolveProject(c, projectRepo, taskRepo)
		if !ok {
			return
		}

		if err := check(loginID, project.ID); err != nil {
			switch {
			case errors.Is(err, services.ErrNotProjectMember), errors.Is(err, services.ErrNotProjectManager):
				pageerrors.Forbidden(c, pageerrors.MsgAccessDenied)
			default:
				log.Printf("[%s] project gate: %v", GetRequestID(c), err)
				pageerrors.InternalError(c)
			}
			return
		}

		// Store project in context for handlers
		c.Set(constants.ContextKeyProject, project)
		c.Next()
	}
}

// resolveProject finds the project named by project_id, or the project of
// the task named by task_id. It writes the error response itself.
func resolveProject(c *gin.Context, projectRepo repository.ProjectRepository, taskRepo repository.TaskRepository) (models.Project, bool) {
	projectID, ok := utils.QueryID(c, "project_id")
	if !ok {
		taskID, ok := utils.QueryID(c, "task_id")
		if !ok {
			pageerrors.MissingParameter(c)
			return models.Project{}, false
		}

		task, err := taskRepo.FindByID(taskID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				pageerrors.NotFound(c, pageerrors.MsgTaskNotFound)
			} else {
				log.Printf("[%s] resolve task project: %v", GetRequestID(c), err)
				pageerrors.InternalError(c)
			}
			return models.Project{}, false
		}
		projectID = task.ProjectID
	}

	project, err := projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			pageerrors.NotFound(c, pageerrors.MsgProjectNotFound)
		} else {
			log.Printf("[%s] resolve project: %v", GetRequestID(c), err)
			pageerrors.InternalError(c)
		}
		return models.Project{}, false
	}

	return *project, true
}

// GetProject returns the project stored by the project gates
func GetProject(c *gin.Context) (models.Project, bool) {
	v, exists := c.Get(constants.ContextKeyProject)
	if !exists {
		return models.Project{}, false
	}
	project, ok := v.(models.Project)
	return project, ok
}
