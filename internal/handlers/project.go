package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-board/internal/dto"
	pageerrors "github.com/yukikurage/project-board/internal/errors"
	"github.com/yukikurage/project-board/internal/services"
	"github.com/yukikurage/project-board/internal/utils"
	"github.com/yukikurage/project-board/internal/web"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// ViewProject shows a project with its tasks
func (h *ProjectHandler) ViewProject(c *gin.Context) {
	h.viewProject(c, false)
}

// AdminViewProject is ViewProject linking to the management pages
func (h *ProjectHandler) AdminViewProject(c *gin.Context) {
	h.viewProject(c, true)
}

func (h *ProjectHandler) viewProject(c *gin.Context, admin bool) {
	projectID, ok := utils.QueryID(c, "project_id")
	if !ok {
		pageerrors.MissingParameter(c)
		return
	}

	project, tasks, err := h.projectService.GetProjectWithTasks(projectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	render(c, http.StatusOK, web.PageProject, project.Name, gin.H{
		"Detail": dto.ToProjectDetailDTO(*project, tasks),
		"Admin":  admin,
	})
}
