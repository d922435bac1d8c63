package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/project-board/internal/models"
	"github.com/yukikurage/project-board/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrInvalidProjectName = errors.New("project name cannot be empty")
	ErrMemberUserNotFound = errors.New("user to add does not exist")
)

// ProjectService provides business logic for project operations.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
	userRepo    repository.UserRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, taskRepo repository.TaskRepository, userRepo repository.UserRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		userRepo:    userRepo,
	}
}

// CreateProject creates a new project.
func (s *ProjectService) CreateProject(name string) (*models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidProjectName
	}

	project := &models.Project{Name: name}
	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// AddMemberInput represents parameters to add a user to a project.
type AddMemberInput struct {
	ProjectID uint64
	LoginID   string
	Manager   bool
}

// AddMember adds a user to a project, or changes the role of an existing member.
func (s *ProjectService) AddMember(input AddMemberInput) error {
	if _, err := s.GetProject(input.ProjectID); err != nil {
		return err
	}

	if _, err := s.userRepo.FindByLoginID(input.LoginID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemberUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	role := models.ProjectRoleMember
	if input.Manager {
		role = models.ProjectRoleManager
	}

	member := &models.ProjectMember{
		ProjectID:   input.ProjectID,
		LoginID:     input.LoginID,
		ProjectRole: role,
	}
	if err := s.projectRepo.AddMember(member); err != nil {
		return fmt.Errorf("failed to add member to project: %w", err)
	}

	return nil
}

// ListProjectsForUser returns the projects the user belongs to.
func (s *ProjectService) ListProjectsForUser(loginID string) ([]models.Project, error) {
	projects, err := s.projectRepo.ListByMember(loginID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetProject returns a project by ID.
func (s *ProjectService) GetProject(projectID uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// GetProjectWithTasks returns a project and its tasks ordered by start date.
func (s *ProjectService) GetProjectWithTasks(projectID uint64) (*models.Project, []models.Task, error) {
	project, err := s.GetProject(projectID)
	if err != nil {
		return nil, nil, err
	}

	tasks, err := s.taskRepo.ListByProject(projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list project tasks: %w", err)
	}

	return project, tasks, nil
}
