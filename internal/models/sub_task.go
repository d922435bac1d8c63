package models

import (
	"time"
)

type SubTask struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"column:sub_task_name;type:varchar(255);not null" json:"sub_task_name"`
	IsCompleted  bool      `gorm:"column:is_completed;not null;default:false" json:"is_completed"`
	MinDays      int       `gorm:"column:min_days;not null;default:0" json:"min_days"`
	Start        time.Time `gorm:"column:start" json:"start"`
	End          time.Time `gorm:"column:end" json:"end"`
	PreSubTaskID *uint64   `gorm:"column:pre_sub_task_id" json:"pre_sub_task_id"`
	TaskID       uint64    `gorm:"column:task_id;not null;index" json:"task_id"`

	// Filled by the listing query's self join; never written.
	PreTaskName *string `gorm:"column:pre_task_name;->;-:migration" json:"pre_task_name,omitempty"`
}

func (SubTask) TableName() string {
	return "sub_task"
}

// HasPredecessor reports whether the sub-task names a predecessor.
func (s SubTask) HasPredecessor() bool {
	return s.PreSubTaskID != nil && *s.PreSubTaskID != 0
}
