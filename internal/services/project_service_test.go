package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-board/internal/models"
	"github.com/yukikurage/project-board/internal/repository"
	"github.com/yukikurage/project-board/internal/testutil"
	"gorm.io/gorm"
)

func newProjectService(db *gorm.DB) *ProjectService {
	return NewProjectService(
		repository.NewProjectRepository(db),
		repository.NewTaskRepository(db),
		repository.NewUserRepository(db),
	)
}

func TestProjectService_CreateAndAddMember(t *testing.T) {
	db := testutil.NewTestDB(t)
	service := newProjectService(db)
	testutil.CreateUser(t, db, "alice", "Alice", models.UserRoleMember)

	_, err := service.CreateProject("  ")
	assert.ErrorIs(t, err, ErrInvalidProjectName)

	project, err := service.CreateProject(" Alpha ")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", project.Name)

	require.NoError(t, service.AddMember(AddMemberInput{ProjectID: project.ID, LoginID: "alice"}))
	require.NoError(t, service.AddMember(AddMemberInput{ProjectID: project.ID, LoginID: "alice", Manager: true}))

	projects, err := service.ListProjectsForUser("alice")
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, project.ID, projects[0].ID)

	var member models.ProjectMember
	require.NoError(t, db.Where("project_id = ? AND login_id = ?", project.ID, "alice").First(&member).Error)
	assert.True(t, member.IsManager())

	err = service.AddMember(AddMemberInput{ProjectID: project.ID, LoginID: "ghost"})
	assert.ErrorIs(t, err, ErrMemberUserNotFound)

	err = service.AddMember(AddMemberInput{ProjectID: project.ID + 100, LoginID: "alice"})
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectService_GetProjectWithTasks(t *testing.T) {
	db := testutil.NewTestDB(t)
	service := newProjectService(db)

	project := testutil.CreateProject(t, db, "Alpha")
	testutil.CreateTask(t, db, project.ID, "Release")
	testutil.CreateTask(t, db, project.ID, "Retro")

	got, tasks, err := service.GetProjectWithTasks(project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alpha", got.Name)
	assert.Len(t, tasks, 2)

	_, _, err = service.GetProjectWithTasks(project.ID + 100)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}
