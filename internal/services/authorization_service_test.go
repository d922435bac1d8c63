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

func newAuthorizationService(db *gorm.DB) *AuthorizationService {
	return NewAuthorizationService(
		repository.NewUserRepository(db),
		repository.NewProjectRepository(db),
		repository.NewPostRepository(db),
	)
}

func TestAuthorizationService_ResolvePostDecision(t *testing.T) {
	db := testutil.NewTestDB(t)
	authz := newAuthorizationService(db)

	testutil.CreateUser(t, db, "root", "Root", models.UserRoleSystemAdmin)
	testutil.CreateUser(t, db, "mgr", "Manager", models.UserRoleMember)
	testutil.CreateUser(t, db, "alice", "Alice", models.UserRoleMember)
	testutil.CreateUser(t, db, "bob", "Bob", models.UserRoleMember)

	project := testutil.CreateProject(t, db, "Alpha")
	testutil.AddMember(t, db, project.ID, "mgr", models.ProjectRoleManager)
	testutil.AddMember(t, db, project.ID, "alice", models.ProjectRoleMember)
	testutil.AddMember(t, db, project.ID, "bob", models.ProjectRoleMember)
	post := testutil.CreatePost(t, db, project.ID, "alice", "Kickoff")

	tests := []struct {
		name    string
		loginID string
		want    AuthorizationDecision
	}{
		{
			name:    "system admin without membership",
			loginID: "root",
			want:    AuthorizationDecision{IsSystemAdmin: true},
		},
		{
			name:    "project manager",
			loginID: "mgr",
			want:    AuthorizationDecision{IsProjectManager: true},
		},
		{
			name:    "author",
			loginID: "alice",
			want:    AuthorizationDecision{IsAuthor: true},
		},
		{
			name:    "author id differing only in case",
			loginID: "Alice",
			want:    AuthorizationDecision{},
		},
		{
			name:    "plain member",
			loginID: "bob",
			want:    AuthorizationDecision{},
		},
		{
			name:    "unknown user",
			loginID: "ghost",
			want:    AuthorizationDecision{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, err := authz.ResolvePostDecision(tt.loginID, project.ID, post.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, decision)
		})
	}
}

func TestAuthorizationService_FactsAreIndependent(t *testing.T) {
	db := testutil.NewTestDB(t)
	authz := newAuthorizationService(db)

	testutil.CreateUser(t, db, "root", "Root", models.UserRoleSystemAdmin)
	project := testutil.CreateProject(t, db, "Alpha")
	testutil.AddMember(t, db, project.ID, "root", models.ProjectRoleManager)
	post := testutil.CreatePost(t, db, project.ID, "root", "Plan")

	decision, err := authz.ResolvePostDecision("root", project.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, AuthorizationDecision{IsSystemAdmin: true, IsProjectManager: true, IsAuthor: true}, decision)
	assert.True(t, decision.CanModerate())
}

func TestAuthorizationService_PostMustMatchProject(t *testing.T) {
	db := testutil.NewTestDB(t)
	authz := newAuthorizationService(db)

	testutil.CreateUser(t, db, "alice", "Alice", models.UserRoleMember)
	alpha := testutil.CreateProject(t, db, "Alpha")
	beta := testutil.CreateProject(t, db, "Beta")
	post := testutil.CreatePost(t, db, alpha.ID, "alice", "Kickoff")

	_, err := authz.ResolvePostDecision("alice", beta.ID, post.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)

	_, err = authz.ResolvePostDecision("alice", alpha.ID, post.ID+100)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestAuthorizationService_EnsureProjectMember(t *testing.T) {
	db := testutil.NewTestDB(t)
	authz := newAuthorizationService(db)

	testutil.CreateUser(t, db, "root", "Root", models.UserRoleSystemAdmin)
	testutil.CreateUser(t, db, "alice", "Alice", models.UserRoleMember)
	testutil.CreateUser(t, db, "bob", "Bob", models.UserRoleMember)
	project := testutil.CreateProject(t, db, "Alpha")
	testutil.AddMember(t, db, project.ID, "alice", models.ProjectRoleMember)

	assert.NoError(t, authz.EnsureProjectMember("alice", project.ID))
	assert.NoError(t, authz.EnsureProjectMember("root", project.ID))
	assert.ErrorIs(t, authz.EnsureProjectMember("bob", project.ID), ErrNotProjectMember)
}

func TestAuthorizationService_EnsureProjectManager(t *testing.T) {
	db := testutil.NewTestDB(t)
	authz := newAuthorizationService(db)

	testutil.CreateUser(t, db, "root", "Root", models.UserRoleSystemAdmin)
	testutil.CreateUser(t, db, "mgr", "Manager", models.UserRoleMember)
	testutil.CreateUser(t, db, "alice", "Alice", models.UserRoleMember)
	project := testutil.CreateProject(t, db, "Alpha")
	testutil.AddMember(t, db, project.ID, "mgr", models.ProjectRoleManager)
	testutil.AddMember(t, db, project.ID, "alice", models.ProjectRoleMember)

	decision, err := authz.EnsureProjectManager("mgr", project.ID)
	require.NoError(t, err)
	assert.True(t, decision.IsProjectManager)

	decision, err = authz.EnsureProjectManager("root", project.ID)
	require.NoError(t, err)
	assert.True(t, decision.IsSystemAdmin)

	_, err = authz.EnsureProjectManager("alice", project.ID)
	assert.ErrorIs(t, err, ErrNotProjectManager)
}
