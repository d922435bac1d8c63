// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-board/internal/database"
	"github.com/yukikurage/project-board/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Password is the plain-text password of every seeded user.
const Password = "supersecret"

// NewTestDB opens a migrated in-memory sqlite database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to ":memory:" is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(database.Models()...))

	return db
}

// NewMockDB returns a gorm handle backed by sqlmock, speaking the MySQL dialect.
func NewMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		conn.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

// CreateUser stores a user whose password is Password.
func CreateUser(t *testing.T, db *gorm.DB, loginID, name string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		LoginID:      loginID,
		UserName:     name,
		PasswordHash: string(hash),
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func CreateProject(t *testing.T, db *gorm.DB, name string) *models.Project {
	t.Helper()

	project := &models.Project{Name: name}
	require.NoError(t, db.Create(project).Error)
	return project
}

func AddMember(t *testing.T, db *gorm.DB, projectID uint64, loginID string, role models.ProjectRole) {
	t.Helper()

	member := &models.ProjectMember{
		ProjectID:   projectID,
		LoginID:     loginID,
		ProjectRole: role,
	}
	require.NoError(t, db.Create(member).Error)
}

func CreateTask(t *testing.T, db *gorm.DB, projectID uint64, name string) *models.Task {
	t.Helper()

	start := Day(1)
	task := &models.Task{
		Name:        name,
		Description: name + " description",
		Start:       start,
		End:         start.AddDate(0, 1, 0),
		ProjectID:   projectID,
	}
	require.NoError(t, db.Create(task).Error)
	return task
}

// CreateSubTask stores a sub-task starting on the given day of the test month.
func CreateSubTask(t *testing.T, db *gorm.DB, taskID uint64, name string, startDay int, pre *uint64) *models.SubTask {
	t.Helper()

	subTask := &models.SubTask{
		Name:         name,
		MinDays:      2,
		Start:        Day(startDay),
		End:          Day(startDay + 2),
		PreSubTaskID: pre,
		TaskID:       taskID,
	}
	require.NoError(t, db.Create(subTask).Error)
	return subTask
}

func CreatePost(t *testing.T, db *gorm.DB, projectID uint64, loginID, title string) *models.Post {
	t.Helper()

	post := &models.Post{
		Title:     title,
		Content:   title + " body",
		LoginID:   loginID,
		ProjectID: projectID,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

// Day returns midnight UTC of the given day in a fixed month.
func Day(day int) time.Time {
	return time.Date(2024, time.November, day, 0, 0, 0, 0, time.UTC)
}

// IDPtr returns a pointer to id.
func IDPtr(id uint64) *uint64 {
	return &id
}
