package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/project-board/internal/models"
	"github.com/yukikurage/project-board/internal/paths"
	"github.com/yukikurage/project-board/internal/repository"
	"github.com/yukikurage/project-board/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrTitleRequired      = errors.New("title is required")
	ErrParentPostNotFound = errors.New("parent post not found in this project")
)

// PostService handles discussion board business logic
type PostService struct {
	postRepo    repository.PostRepository
	projectRepo repository.ProjectRepository
	authz       *AuthorizationService
}

// NewPostService creates a new PostService
func NewPostService(postRepo repository.PostRepository, projectRepo repository.ProjectRepository, authz *AuthorizationService) *PostService {
	return &PostService{
		postRepo:    postRepo,
		projectRepo: projectRepo,
		authz:       authz,
	}
}

// DeletionRequest carries one request to the post deletion page.
type DeletionRequest struct {
	LoginID   string
	ProjectID uint64
	PostID    uint64
	// Confirmed is set when the state-changing submission carried the
	// confirmation flag.
	Confirmed bool
}

// DeletionResult describes where the workflow ended.
type DeletionResult struct {
	Post     *models.Post
	Decision AuthorizationDecision
	// Deleted is false while the confirmation page is shown.
	Deleted    bool
	RedirectTo string
}

// ProcessDeletion runs the post deletion workflow.
//
// Without confirmation it only loads the post and the decision for the
// confirmation page. With confirmation it hard-deletes the post by
// (PostID, ProjectID) and picks the redirect target. The decision only
// selects the redirect: it does not gate the delete, and the affected row
// count is not checked.
func (s *PostService) ProcessDeletion(req DeletionRequest) (*DeletionResult, error) {
	post, err := s.GetPostInProject(req.PostID, req.ProjectID)
	if err != nil {
		return nil, err
	}

	decision, err := s.authz.ResolvePostDecision(req.LoginID, req.ProjectID, req.PostID)
	if err != nil {
		return nil, err
	}

	result := &DeletionResult{
		Post:     post,
		Decision: decision,
	}
	if !req.Confirmed {
		return result, nil
	}

	// TODO: refuse unless decision.CanModerate() or decision.IsAuthor; any
	// signed-in user who reaches this page can currently delete the post.
	if _, err := s.postRepo.Delete(req.PostID, req.ProjectID); err != nil {
		return nil, fmt.Errorf("failed to delete post: %w", err)
	}

	result.Deleted = true
	result.RedirectTo = DeletionRedirect(decision, req.ProjectID, req.PostID)
	return result, nil
}

// DeletionRedirect returns the page shown after a delete: the admin listing
// for moderators, otherwise the single-post view of the removed post.
func DeletionRedirect(decision AuthorizationDecision, projectID, postID uint64) string {
	if decision.CanModerate() {
		return paths.AdminPosts(projectID)
	}
	return paths.Post(postID, projectID)
}

// GetPost returns a post by ID alone, as the single-post pages look it up
func (s *PostService) GetPost(postID uint64) (*models.Post, error) {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return post, nil
}

// GetPostInProject returns a post that must belong to the given project
func (s *PostService) GetPostInProject(postID, projectID uint64) (*models.Post, error) {
	post, err := s.postRepo.FindInProject(postID, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return post, nil
}

// ListProjectPosts returns one page of a project's board
func (s *PostService) ListProjectPosts(projectID uint64, params utils.PaginationParams) ([]models.Post, int64, error) {
	posts, total, err := s.postRepo.ListByProject(projectID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, total, nil
}

// Feed is the home page board: posts from every project the user belongs
// to, with what is needed to decorate and link them.
type Feed struct {
	Posts        []models.Post
	ParentTitles map[uint64]string
	Managed      map[uint64]bool
}

// HomeFeed collects the posts of the user's projects, newest activity first
func (s *PostService) HomeFeed(loginID string) (*Feed, error) {
	posts, err := s.postRepo.ListForMember(loginID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	parentIDs := make([]uint64, 0)
	for _, p := range posts {
		if p.ParentPostID != nil {
			parentIDs = append(parentIDs, *p.ParentPostID)
		}
	}
	titles, err := s.postRepo.FindTitles(uniqueUint64(parentIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to load parent titles: %w", err)
	}

	managedIDs, err := s.projectRepo.ListManagedProjectIDs(loginID)
	if err != nil {
		return nil, fmt.Errorf("failed to load managed projects: %w", err)
	}
	managed := make(map[uint64]bool, len(managedIDs))
	for _, id := range managedIDs {
		managed[id] = true
	}

	return &Feed{
		Posts:        posts,
		ParentTitles: titles,
		Managed:      managed,
	}, nil
}

// CreatePostInput represents input for creating a post or reply
type CreatePostInput struct {
	ProjectID    uint64
	LoginID      string
	Title        string
	Content      string
	ParentPostID *uint64
	IsNoticed    bool
}

// CreatePost stores a new post. The notice flag is kept only for system
// admins and project managers; a reply's parent must be in the same project.
func (s *PostService) CreatePost(input CreatePostInput) (*models.Post, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	if err := s.authz.EnsureProjectMember(input.LoginID, input.ProjectID); err != nil {
		return nil, err
	}

	if input.ParentPostID != nil {
		if _, err := s.postRepo.FindInProject(*input.ParentPostID, input.ProjectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrParentPostNotFound
			}
			return nil, fmt.Errorf("failed to find parent post: %w", err)
		}
	}

	isNoticed := false
	if input.IsNoticed {
		decision, err := s.authz.ResolveProjectDecision(input.LoginID, input.ProjectID)
		if err != nil {
			return nil, err
		}
		isNoticed = decision.CanModerate()
	}

	post := &models.Post{
		Title:        title,
		Content:      input.Content,
		LoginID:      input.LoginID,
		ProjectID:    input.ProjectID,
		ParentPostID: input.ParentPostID,
		IsNoticed:    isNoticed,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// uniqueUint64 removes duplicate values from a slice of uint64
func uniqueUint64(values []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(values))
	result := make([]uint64, 0, len(values))

	for _, v := range values {
		if _, exists := seen[v]; exists {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}

	return result
}
