package models

type Project struct {
	ID   uint64 `gorm:"primarykey" json:"id"`
	Name string `gorm:"column:project_name;type:varchar(255);not null" json:"project_name"`

	// Relations
	Members []ProjectMember `gorm:"foreignKey:ProjectID" json:"members,omitempty"`
	Tasks   []Task          `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
	Posts   []Post          `gorm:"foreignKey:ProjectID" json:"-"`
}

func (Project) TableName() string {
	return "project"
}
