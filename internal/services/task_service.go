package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/project-board/internal/models"
	"github.com/yukikurage/project-board/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrSubTaskNameRequired  = errors.New("sub-task name is required")
	ErrInvalidSubTaskPeriod = errors.New("sub-task end is before its start")
	ErrPredecessorNotFound  = errors.New("predecessor sub-task not found in this task")
	ErrNegativeMinDays      = errors.New("minimum days cannot be negative")
)

// TaskService handles task and sub-task business logic
type TaskService struct {
	taskRepo    repository.TaskRepository
	subTaskRepo repository.SubTaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, subTaskRepo repository.SubTaskRepository) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		subTaskRepo: subTaskRepo,
	}
}

// TaskDetail is a task with its sub-tasks and their chain layout
type TaskDetail struct {
	Task     *models.Task
	SubTasks []models.SubTask
	Chains   []Chain
}

// GetTask returns a task by ID
func (s *TaskService) GetTask(taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// GetTaskDetail loads a task and lays its sub-tasks out as chains
func (s *TaskService) GetTaskDetail(taskID uint64) (*TaskDetail, error) {
	task, err := s.GetTask(taskID)
	if err != nil {
		return nil, err
	}

	subTasks, err := s.subTaskRepo.ListByTask(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sub-tasks: %w", err)
	}

	return &TaskDetail{
		Task:     task,
		SubTasks: subTasks,
		Chains:   BuildChains(subTasks),
	}, nil
}

// CreateSubTaskInput represents input for adding a sub-task
type CreateSubTaskInput struct {
	TaskID       uint64
	Name         string
	MinDays      int
	Start        time.Time
	End          time.Time
	PreSubTaskID *uint64
}

// CreateSubTask adds a sub-task. A predecessor must belong to the same task.
func (s *TaskService) CreateSubTask(input CreateSubTaskInput) (*models.SubTask, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrSubTaskNameRequired
	}
	if input.MinDays < 0 {
		return nil, ErrNegativeMinDays
	}
	if !input.End.IsZero() && input.End.Before(input.Start) {
		return nil, ErrInvalidSubTaskPeriod
	}

	if _, err := s.GetTask(input.TaskID); err != nil {
		return nil, err
	}

	preID := input.PreSubTaskID
	if preID != nil && *preID == 0 {
		preID = nil
	}
	if preID != nil {
		pre, err := s.subTaskRepo.FindByID(*preID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrPredecessorNotFound
			}
			return nil, fmt.Errorf("failed to find predecessor: %w", err)
		}
		if pre.TaskID != input.TaskID {
			return nil, ErrPredecessorNotFound
		}
	}

	subTask := &models.SubTask{
		Name:         name,
		MinDays:      input.MinDays,
		Start:        input.Start,
		End:          input.End,
		PreSubTaskID: preID,
		TaskID:       input.TaskID,
	}
	if err := s.subTaskRepo.Create(subTask); err != nil {
		return nil, fmt.Errorf("failed to create sub-task: %w", err)
	}

	return subTask, nil
}
