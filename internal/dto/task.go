package dto

import (
	"time"

	"github.com/yukikurage/project-board/internal/models"
	"github.com/yukikurage/project-board/internal/services"
)

const (
	// DateLayout is how dates are shown on task pages
	DateLayout = "2006-01-02"
	// DateTimeLayout is how timestamps are shown on board pages
	DateTimeLayout = "2006-01-02 15:04:05"
)

// UserDTO represents a user on rendered pages
type UserDTO struct {
	LoginID  string `json:"login_id"`
	UserName string `json:"user_name"`
}

// ProjectDTO represents a project on rendered pages
type ProjectDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// TaskDTO represents a task on rendered pages
type TaskDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Start       string `json:"start"`
	End         string `json:"end"`
	ProjectID   uint64 `json:"project_id"`
}

// SubTaskDTO represents one node of the chain diagram
type SubTaskDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	IsCompleted bool   `json:"is_completed"`
	MinDays     int    `json:"min_days"`
	Start       string `json:"start"`
	End         string `json:"end"`
	PreTaskName string `json:"pre_task_name,omitempty"`
}

// TaskDetailDTO is the task page: the task, every sub-task, and the
// sub-tasks laid out as chains
type TaskDetailDTO struct {
	Task     TaskDTO        `json:"task"`
	SubTasks []SubTaskDTO   `json:"sub_tasks"`
	Chains   [][]SubTaskDTO `json:"chains"`
}

// ProjectDetailDTO is the project page
type ProjectDetailDTO struct {
	Project ProjectDTO `json:"project"`
	Tasks   []TaskDTO  `json:"tasks"`
}

// Conversion functions

// FormatDate renders a date, or "" for the zero time
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		LoginID:  user.LoginID,
		UserName: user.UserName,
	}
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:   project.ID,
		Name: project.Name,
	}
}

// ToProjectDTOs converts a slice of projects
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, p := range projects {
		dtos[i] = ToProjectDTO(p)
	}
	return dtos
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
		Start:       FormatDate(task.Start),
		End:         FormatDate(task.End),
		ProjectID:   task.ProjectID,
	}
}

// ToProjectDetailDTO converts a project and its tasks
func ToProjectDetailDTO(project models.Project, tasks []models.Task) ProjectDetailDTO {
	taskDTOs := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		taskDTOs[i] = ToTaskDTO(task)
	}

	return ProjectDetailDTO{
		Project: ToProjectDTO(project),
		Tasks:   taskDTOs,
	}
}

// ToSubTaskDTO converts a SubTask model to SubTaskDTO
func ToSubTaskDTO(subTask models.SubTask) SubTaskDTO {
	dto := SubTaskDTO{
		ID:          subTask.ID,
		Name:        subTask.Name,
		IsCompleted: subTask.IsCompleted,
		MinDays:     subTask.MinDays,
		Start:       FormatDate(subTask.Start),
		End:         FormatDate(subTask.End),
	}
	if subTask.PreTaskName != nil {
		dto.PreTaskName = *subTask.PreTaskName
	}
	return dto
}

// ToTaskDetailDTO converts a loaded task detail
func ToTaskDetailDTO(detail *services.TaskDetail) TaskDetailDTO {
	subTasks := make([]SubTaskDTO, len(detail.SubTasks))
	for i, s := range detail.SubTasks {
		subTasks[i] = ToSubTaskDTO(s)
	}

	chains := make([][]SubTaskDTO, len(detail.Chains))
	for i, chain := range detail.Chains {
		nodes := make([]SubTaskDTO, len(chain))
		for j, s := range chain {
			nodes[j] = ToSubTaskDTO(s)
		}
		chains[i] = nodes
	}

	return TaskDetailDTO{
		Task:     ToTaskDTO(*detail.Task),
		SubTasks: subTasks,
		Chains:   chains,
	}
}
