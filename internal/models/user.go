package models

type UserRole int

const (
	UserRoleMember      UserRole = 0
	UserRoleSystemAdmin UserRole = 1
)

type User struct {
	LoginID      string   `gorm:"column:login_id;type:varchar(50);primarykey" json:"login_id"`
	UserName     string   `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	PasswordHash string   `gorm:"column:password;type:varchar(255);not null" json:"-"`
	Role         UserRole `gorm:"column:role;not null;default:0" json:"role"`

	// Relations
	Memberships []ProjectMember `gorm:"foreignKey:LoginID;references:LoginID" json:"-"`
}

func (User) TableName() string {
	return "User"
}

// IsSystemAdmin reports whether the user's global role is the admin sentinel.
func (u User) IsSystemAdmin() bool {
	return u.Role == UserRoleSystemAdmin
}
