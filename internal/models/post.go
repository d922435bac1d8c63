package models

import "time"

// Post is a discussion board entry. Replies point at their parent through
// ParentPostID. Posts are hard-deleted, so there is no DeletedAt column.
type Post struct {
	ID           uint64     `gorm:"primarykey" json:"id"`
	ParentPostID *uint64    `gorm:"column:Post_id" json:"parent_post_id"`
	Title        string     `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Content      string     `gorm:"column:content;type:text" json:"content"`
	CreatedDate  time.Time  `gorm:"column:created_date;autoCreateTime" json:"created_date"`
	UpdatedDate  *time.Time `gorm:"column:updated_date" json:"updated_date"`
	IsNoticed    bool       `gorm:"column:is_noticed;not null;default:false" json:"is_noticed"`
	LoginID      string     `gorm:"column:login_id;type:varchar(50);not null;index" json:"login_id"`
	ProjectID    uint64     `gorm:"column:project_id;not null;index" json:"project_id"`

	// Relations
	Author  User    `gorm:"foreignKey:LoginID;references:LoginID" json:"author,omitempty"`
	Project Project `gorm:"foreignKey:ProjectID" json:"-"`
}

func (Post) TableName() string {
	return "Post"
}

// LastActivity is the update time when present, else the creation time.
func (p Post) LastActivity() time.Time {
	if p.UpdatedDate != nil {
		return *p.UpdatedDate
	}
	return p.CreatedDate
}
