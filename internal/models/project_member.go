package models

type ProjectRole int

const (
	ProjectRoleMember  ProjectRole = 0
	ProjectRoleManager ProjectRole = 1
)

type ProjectMember struct {
	ProjectID   uint64      `gorm:"column:project_id;primarykey" json:"project_id"`
	LoginID     string      `gorm:"column:login_id;type:varchar(50);primarykey" json:"login_id"`
	ProjectRole ProjectRole `gorm:"column:project_role;not null;default:0" json:"project_role"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	User    User    `gorm:"foreignKey:LoginID;references:LoginID" json:"user,omitempty"`
}

func (ProjectMember) TableName() string {
	return "project_member"
}

func (m ProjectMember) IsManager() bool {
	return m.ProjectRole == ProjectRoleManager
}
