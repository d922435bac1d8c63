package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-board/internal/dto"
	"github.com/yukikurage/project-board/internal/services"
	"github.com/yukikurage/project-board/internal/web"
)

// HomeHandler renders the landing page
type HomeHandler struct {
	projectService *services.ProjectService
	postService    *services.PostService
}

func NewHomeHandler(projectService *services.ProjectService, postService *services.PostService) *HomeHandler {
	return &HomeHandler{
		projectService: projectService,
		postService:    postService,
	}
}

// Home lists the user's projects and the posts of those projects, newest
// activity first
func (h *HomeHandler) Home(c *gin.Context) {
	loginID, ok := currentUser(c)
	if !ok {
		return
	}

	projects, err := h.projectService.ListProjectsForUser(loginID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	feed, err := h.postService.HomeFeed(loginID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	render(c, http.StatusOK, web.PageHome, "Home", gin.H{
		"Projects": dto.ToProjectDTOs(projects),
		"Feed":     dto.ToFeedItems(feed),
	})
}
