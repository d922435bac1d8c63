package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-board/internal/dto"
	pageerrors "github.com/yukikurage/project-board/internal/errors"
	"github.com/yukikurage/project-board/internal/middleware"
	"github.com/yukikurage/project-board/internal/paths"
	"github.com/yukikurage/project-board/internal/services"
	"github.com/yukikurage/project-board/internal/utils"
	"github.com/yukikurage/project-board/internal/web"
)

// PostHandler serves the discussion board pages
type PostHandler struct {
	postService *services.PostService
	authz       *services.AuthorizationService
}

func NewPostHandler(postService *services.PostService, authz *services.AuthorizationService) *PostHandler {
	return &PostHandler{
		postService: postService,
		authz:       authz,
	}
}

// ListPosts shows one page of a project's board
func (h *PostHandler) ListPosts(c *gin.Context) {
	h.listPosts(c, false)
}

// AdminListPosts is ListPosts with delete links
func (h *PostHandler) AdminListPosts(c *gin.Context) {
	h.listPosts(c, true)
}

func (h *PostHandler) listPosts(c *gin.Context, admin bool) {
	project, ok := middleware.GetProject(c)
	if !ok {
		pageerrors.MissingParameter(c)
		return
	}

	params := utils.GetPaginationParams(c)
	posts, total, err := h.postService.ListProjectPosts(project.ID, params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	render(c, http.StatusOK, web.PagePosts, project.Name, gin.H{
		"Project":  dto.ToProjectDTO(project),
		"Posts":    dto.ToPostDTOs(posts),
		"PageInfo": utils.NewPageInfo(params, total),
		"Admin":    admin,
	})
}

// ViewPost shows a single post. The post is looked up by post_id alone;
// project_id only feeds the page's links.
func (h *PostHandler) ViewPost(c *gin.Context) {
	postID, ok := utils.QueryID(c, "post_id")
	if !ok {
		pageerrors.MissingParameter(c)
		return
	}
	projectID, ok := utils.QueryID(c, "project_id")
	if !ok {
		pageerrors.MissingParameter(c)
		return
	}

	post, err := h.postService.GetPost(postID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	render(c, http.StatusOK, web.PagePost, post.Title, gin.H{
		"Post":      dto.ToPostDTO(*post),
		"ProjectID": projectID,
		"Admin":     false,
	})
}

// AdminViewPost shows a post of the managed project with its delete link
func (h *PostHandler) AdminViewPost(c *gin.Context) {
	postID, ok := utils.QueryID(c, "post_id")
	if !ok {
		pageerrors.MissingParameter(c)
		return
	}
	project, ok := middleware.GetProject(c)
	if !ok {
		pageerrors.MissingParameter(c)
		return
	}

	post, err := h.postService.GetPostInProject(postID, project.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	render(c, http.StatusOK, web.PagePost, post.Title, gin.H{
		"Post":      dto.ToPostDTO(*post),
		"ProjectID": project.ID,
		"Admin":     true,
	})
}

// postForm is the new post form as submitted
type postForm struct {
	Title     string `form:"title"`
	Content   string `form:"content"`
	IsNoticed bool   `form:"is_noticed"`
}

// NewPostForm shows the form for a new post or a reply
func (h *PostHandler) NewPostForm(c *gin.Context) {
	h.renderPostForm(c, http.StatusOK, postForm{}, "")
}

// CreatePost stores a new post or reply and shows it
func (h *PostHandler) CreatePost(c *gin.Context) {
	loginID, ok := currentUser(c)
	if !ok {
		return
	}
	project, ok := middleware.GetProject(c)
	if !ok {
		pageerrors.MissingParameter(c)
		return
	}

	var form postForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderPostForm(c, http.StatusBadRequest, form, "The form could not be read.")
		return
	}

	post, err := h.postService.CreatePost(services.CreatePostInput{
		ProjectID:    project.ID,
		LoginID:      loginID,
		Title:        form.Title,
		Content:      form.Content,
		ParentPostID: utils.OptionalQueryID(c, "parent_post_id"),
		IsNoticed:    form.IsNoticed,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTitleRequired):
			h.renderPostForm(c, http.StatusBadRequest, form, "Title is required.")
		case errors.Is(err, services.ErrParentPostNotFound):
			pageerrors.NotFound(c, pageerrors.MsgPostNotFound)
		default:
			respondServiceError(c, err)
		}
		return
	}

	redirect(c, paths.Post(post.ID, post.ProjectID))
}

func (h *PostHandler) renderPostForm(c *gin.Context, status int, form postForm, message string) {
	loginID, ok := currentUser(c)
	if !ok {
		return
	}
	project, ok := middleware.GetProject(c)
	if !ok {
		pageerrors.MissingParameter(c)
		return
	}

	action := paths.NewPost(project.ID)
	parentTitle := ""
	if parentID := utils.OptionalQueryID(c, "parent_post_id"); parentID != nil {
		parent, err := h.postService.GetPostInProject(*parentID, project.ID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		action = paths.Reply(project.ID, parent.ID)
		parentTitle = parent.Title
	}

	decision, err := h.authz.ResolveProjectDecision(loginID, project.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	render(c, status, web.PagePostNew, "New post", gin.H{
		"Action":      action,
		"ParentTitle": parentTitle,
		"CanNotice":   decision.CanModerate(),
		"Form":        form,
		"Error":       message,
	})
}

// DeletePost runs the deletion workflow. GET and a POST without
// confirm_delete show the confirmation page; a POST with it deletes and
// redirects.
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID, ok := utils.QueryID(c, "post_id")
	if !ok {
		pageerrors.MissingParameter(c)
		return
	}
	projectID, ok := utils.QueryID(c, "project_id")
	if !ok {
		pageerrors.MissingParameter(c)
		return
	}
	loginID, ok := currentUser(c)
	if !ok {
		return
	}

	confirmed := false
	if c.Request.Method == http.MethodPost {
		_, confirmed = c.GetPostForm("confirm_delete")
	}

	result, err := h.postService.ProcessDeletion(services.DeletionRequest{
		LoginID:   loginID,
		ProjectID: projectID,
		PostID:    postID,
		Confirmed: confirmed,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if !result.Deleted {
		render(c, http.StatusOK, web.PagePostDelete, "Delete post", gin.H{
			"Confirm": dto.ToDeleteConfirmDTO(*result.Post),
		})
		return
	}

	redirect(c, result.RedirectTo)
}
