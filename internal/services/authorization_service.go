package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/project-board/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound      = errors.New("post not found")
	ErrProjectNotFound   = errors.New("project not found")
	ErrNotProjectMember  = errors.New("user is not a member of the project")
	ErrNotProjectManager = errors.New("user does not manage the project")
)

// AuthorizationDecision holds the permission facts about one user and one
// resource. It is recomputed on every request and never stored.
type AuthorizationDecision struct {
	IsSystemAdmin    bool
	IsProjectManager bool
	IsAuthor         bool
}

// CanModerate reports whether the user administers the project's board.
func (d AuthorizationDecision) CanModerate() bool {
	return d.IsSystemAdmin || d.IsProjectManager
}

// AuthorizationService resolves permission facts. Each fact is looked up on
// its own; none is derived from another.
type AuthorizationService struct {
	userRepo    repository.UserRepository
	projectRepo repository.ProjectRepository
	postRepo    repository.PostRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(userRepo repository.UserRepository, projectRepo repository.ProjectRepository, postRepo repository.PostRepository) *AuthorizationService {
	return &AuthorizationService{
		userRepo:    userRepo,
		projectRepo: projectRepo,
		postRepo:    postRepo,
	}
}

// IsSystemAdmin reports whether the user's global role is the admin sentinel.
// An unknown user is not an admin.
func (s *AuthorizationService) IsSystemAdmin(loginID string) (bool, error) {
	user, err := s.userRepo.FindByLoginID(loginID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up user role: %w", err)
	}
	return user.IsSystemAdmin(), nil
}

// IsProjectManager reports whether a manager membership exists for the pair.
func (s *AuthorizationService) IsProjectManager(projectID uint64, loginID string) (bool, error) {
	count, err := s.projectRepo.CountManagerRows(projectID, loginID)
	if err != nil {
		return false, fmt.Errorf("failed to look up project role: %w", err)
	}
	return count > 0, nil
}

// IsAuthor reports whether the post's stored author is exactly loginID. The
// post must resolve by the (postID, projectID) pair.
func (s *AuthorizationService) IsAuthor(loginID string, projectID, postID uint64) (bool, error) {
	authorID, err := s.postRepo.FindAuthorLoginID(postID, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrPostNotFound
		}
		return false, fmt.Errorf("failed to look up post author: %w", err)
	}
	return authorID == loginID, nil
}

// ResolvePostDecision computes all three facts for a post. All lookups run
// even when an earlier one already grants access, since callers pick
// redirect targets from the individual facts.
func (s *AuthorizationService) ResolvePostDecision(loginID string, projectID, postID uint64) (AuthorizationDecision, error) {
	var decision AuthorizationDecision
	var err error

	if decision.IsSystemAdmin, err = s.IsSystemAdmin(loginID); err != nil {
		return AuthorizationDecision{}, err
	}
	if decision.IsProjectManager, err = s.IsProjectManager(projectID, loginID); err != nil {
		return AuthorizationDecision{}, err
	}
	if decision.IsAuthor, err = s.IsAuthor(loginID, projectID, postID); err != nil {
		return AuthorizationDecision{}, err
	}

	return decision, nil
}

// ResolveProjectDecision computes the project-level facts. IsAuthor is
// always false.
func (s *AuthorizationService) ResolveProjectDecision(loginID string, projectID uint64) (AuthorizationDecision, error) {
	var decision AuthorizationDecision
	var err error

	if decision.IsSystemAdmin, err = s.IsSystemAdmin(loginID); err != nil {
		return AuthorizationDecision{}, err
	}
	if decision.IsProjectManager, err = s.IsProjectManager(projectID, loginID); err != nil {
		return AuthorizationDecision{}, err
	}

	return decision, nil
}

// EnsureProjectMember checks that the user belongs to the project. System
// admins pass without a membership row.
func (s *AuthorizationService) EnsureProjectMember(loginID string, projectID uint64) error {
	isAdmin, err := s.IsSystemAdmin(loginID)
	if err != nil {
		return err
	}
	if isAdmin {
		return nil
	}

	if _, err := s.projectRepo.FindMember(projectID, loginID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotProjectMember
		}
		return fmt.Errorf("failed to verify project membership: %w", err)
	}
	return nil
}

// EnsureProjectManager checks that the user is a system admin or manages the
// project.
func (s *AuthorizationService) EnsureProjectManager(loginID string, projectID uint64) (AuthorizationDecision, error) {
	decision, err := s.ResolveProjectDecision(loginID, projectID)
	if err != nil {
		return AuthorizationDecision{}, err
	}
	if !decision.CanModerate() {
		return decision, ErrNotProjectManager
	}
	return decision, nil
}
