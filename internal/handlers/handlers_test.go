package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-board/internal/constants"
	"github.com/yukikurage/project-board/internal/models"
	"github.com/yukikurage/project-board/internal/testutil"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newEngine builds the full router over db. A non-empty loginID is signed in
// on every request.
func newEngine(t *testing.T, db *gorm.DB, loginID string) *gin.Engine {
	t.Helper()

	r := gin.New()
	r.Use(sessions.Sessions(constants.SessionCookieName, cookie.NewStore([]byte("secret"))))
	if loginID != "" {
		r.Use(func(c *gin.Context) {
			session := sessions.Default(c)
			session.Set(constants.ContextKeyUserID, loginID)
			session.Set(constants.ContextKeyUserName, "Display "+loginID)
			c.Next()
		})
	}
	require.NoError(t, SetupRouter(r, db))
	return r
}

func get(r *gin.Engine, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func submitForm(r *gin.Engine, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func id(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// fixture is a project with a manager, two members and an outsider, one
// task with a small chain, and a post by alice.
type fixture struct {
	db      *gorm.DB
	project *models.Project
	task    *models.Task
	design  *models.SubTask
	post    *models.Post
}

func setupFixture(t *testing.T) fixture {
	t.Helper()

	db := testutil.NewTestDB(t)
	testutil.CreateUser(t, db, "root", "Root", models.UserRoleSystemAdmin)
	testutil.CreateUser(t, db, "mgr", "Manager", models.UserRoleMember)
	testutil.CreateUser(t, db, "alice", "Alice", models.UserRoleMember)
	testutil.CreateUser(t, db, "bob", "Bob", models.UserRoleMember)
	testutil.CreateUser(t, db, "eve", "Eve", models.UserRoleMember)

	project := testutil.CreateProject(t, db, "Alpha")
	testutil.AddMember(t, db, project.ID, "mgr", models.ProjectRoleManager)
	testutil.AddMember(t, db, project.ID, "alice", models.ProjectRoleMember)
	testutil.AddMember(t, db, project.ID, "bob", models.ProjectRoleMember)

	task := testutil.CreateTask(t, db, project.ID, "Release")
	design := testutil.CreateSubTask(t, db, task.ID, "Design", 1, nil)
	testutil.CreateSubTask(t, db, task.ID, "Build", 3, &design.ID)

	post := testutil.CreatePost(t, db, project.ID, "alice", "Kickoff")

	return fixture{db: db, project: project, task: task, design: design, post: post}
}

func (f fixture) postExists(t *testing.T) bool {
	t.Helper()

	var count int64
	require.NoError(t, f.db.Model(&models.Post{}).Where("id = ?", f.post.ID).Count(&count).Error)
	return count > 0
}

func httpRecorder(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
