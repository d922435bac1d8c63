package repository

import (
	"github.com/yukikurage/project-board/internal/models"
	"github.com/yukikurage/project-board/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByLoginID finds a user by login id
	FindByLoginID(loginID string) (*models.User, error)
}

// ProjectRepository defines the interface for project and membership data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID
	FindByID(id uint64) (*models.Project, error)

	// ListByMember lists the projects a user belongs to
	ListByMember(loginID string) ([]models.Project, error)

	// AddMember adds or updates a membership
	AddMember(member *models.ProjectMember) error

	// FindMember finds a specific project member
	FindMember(projectID uint64, loginID string) (*models.ProjectMember, error)

	// CountManagerRows counts manager memberships for (projectID, loginID)
	CountManagerRows(projectID uint64, loginID string) (int64, error)

	// ListManagedProjectIDs lists the projects the user manages
	ListManagedProjectIDs(loginID string) ([]uint64, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// ListByProject lists a project's tasks ordered by start date
	ListByProject(projectID uint64) ([]models.Task, error)
}

// SubTaskRepository defines the interface for sub-task data access
type SubTaskRepository interface {
	// Create creates a new sub-task
	Create(subTask *models.SubTask) error

	// FindByID finds a sub-task by ID
	FindByID(id uint64) (*models.SubTask, error)

	// ListByTask lists a task's sub-tasks ordered by start date, with the
	// predecessor's name filled in
	ListByTask(taskID uint64) ([]models.SubTask, error)
}

// PostRepository defines the interface for discussion board data access
type PostRepository interface {
	// Create creates a new post
	Create(post *models.Post) error

	// FindByID finds a post by ID alone, with its author
	FindByID(id uint64) (*models.Post, error)

	// FindInProject finds a post by the (id, projectID) pair, with its author
	FindInProject(id, projectID uint64) (*models.Post, error)

	// FindAuthorLoginID returns the stored author id of a post
	FindAuthorLoginID(id, projectID uint64) (string, error)

	// ListByProject lists a project's posts newest activity first
	ListByProject(projectID uint64, params utils.PaginationParams) ([]models.Post, int64, error)

	// ListForMember lists posts of every project the user belongs to
	ListForMember(loginID string) ([]models.Post, error)

	// FindTitles returns the titles of the given posts keyed by ID
	FindTitles(ids []uint64) (map[uint64]string, error)

	// Delete hard deletes the post matching (id, projectID) and returns the
	// affected row count
	Delete(id, projectID uint64) (int64, error)
}
