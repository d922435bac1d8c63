package models

import (
	"time"
)

type Task struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"column:task_name;type:varchar(255);not null" json:"task_name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Start       time.Time `gorm:"column:start" json:"start"`
	End         time.Time `gorm:"column:end" json:"end"`
	ProjectID   uint64    `gorm:"column:project_id;not null;index" json:"project_id"`

	// Relations
	Project  Project   `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	SubTasks []SubTask `gorm:"foreignKey:TaskID" json:"sub_tasks,omitempty"`
}

func (Task) TableName() string {
	return "task"
}
