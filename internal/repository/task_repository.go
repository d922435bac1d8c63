package repository

import (
	"github.com/yukikurage/project-board/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByProject lists a project's tasks ordered by start date
func (r *GormTaskRepository) ListByProject(projectID uint64) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Where("project_id = ?", projectID).
		Order("start ASC").
		Order("id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// GormSubTaskRepository is a GORM implementation of SubTaskRepository
type GormSubTaskRepository struct {
	db *gorm.DB
}

// NewSubTaskRepository creates a new SubTaskRepository
func NewSubTaskRepository(db *gorm.DB) SubTaskRepository {
	return &GormSubTaskRepository{db: db}
}

// Create creates a new sub-task
func (r *GormSubTaskRepository) Create(subTask *models.SubTask) error {
	return r.db.Create(subTask).Error
}

// FindByID finds a sub-task by ID
func (r *GormSubTaskRepository) FindByID(id uint64) (*models.SubTask, error) {
	var subTask models.SubTask
	if err := r.db.First(&subTask, id).Error; err != nil {
		return nil, err
	}
	return &subTask, nil
}

// ListByTask lists a task's sub-tasks ordered by start date, with the
// predecessor's name joined in
func (r *GormSubTaskRepository) ListByTask(taskID uint64) ([]models.SubTask, error) {
	var subTasks []models.SubTask
	if err := r.db.Table("sub_task AS st").
		Select("st.*, pst.sub_task_name AS pre_task_name").
		Joins("LEFT JOIN sub_task AS pst ON st.pre_sub_task_id = pst.id").
		Where("st.task_id = ?", taskID).
		Order("st.start ASC").
		Order("st.id ASC").
		Find(&subTasks).Error; err != nil {
		return nil, err
	}
	return subTasks, nil
}
