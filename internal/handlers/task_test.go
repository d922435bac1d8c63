package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-board/internal/models"
	"github.com/yukikurage/project-board/internal/paths"
)

func TestTaskHandler_ViewTask(t *testing.T) {
	f := setupFixture(t)
	r := newEngine(t, f.db, "alice")

	w := get(r, paths.Task(f.task.ID))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Release")
	assert.Contains(t, body, "Design")
	assert.Contains(t, body, "after Design")
	assert.NotContains(t, body, "Add sub-task")

	w = get(r, paths.Task(f.task.ID+100))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Task not found.", w.Body.String())

	w = get(r, "/tasks/view")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid access.", w.Body.String())
}

func TestTaskHandler_AdminPages(t *testing.T) {
	f := setupFixture(t)

	w := get(newEngine(t, f.db, "alice"), paths.AdminTask(f.task.ID))
	assert.Equal(t, http.StatusForbidden, w.Code)

	r := newEngine(t, f.db, "mgr")
	w = get(r, paths.AdminTask(f.task.ID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Add sub-task")

	w = get(r, paths.AdminProject(f.project.ID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Release")
}

func TestTaskHandler_CreateSubTask(t *testing.T) {
	f := setupFixture(t)
	r := newEngine(t, f.db, "mgr")

	w := get(r, paths.NewSubTask(f.task.ID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Design")

	w = submitForm(r, paths.NewSubTask(f.task.ID), url.Values{
		"sub_task_name":   {"Review"},
		"min_days":        {"2"},
		"start":           {"2024-11-02"},
		"end":             {"2024-11-04"},
		"pre_sub_task_id": {id(f.design.ID)},
	})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, paths.AdminTask(f.task.ID), w.Header().Get("Location"))

	var created models.SubTask
	require.NoError(t, f.db.Where("sub_task_name = ?", "Review").First(&created).Error)
	require.NotNil(t, created.PreSubTaskID)
	assert.Equal(t, f.design.ID, *created.PreSubTaskID)
	assert.Equal(t, 2, created.MinDays)

	w = submitForm(r, paths.NewSubTask(f.task.ID), url.Values{"sub_task_name": {"Bad"}, "start": {"next week"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Dates must be in YYYY-MM-DD form.")

	w = submitForm(r, paths.NewSubTask(f.task.ID), url.Values{"sub_task_name": {"Bad"}, "pre_sub_task_id": {"9999"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Predecessor sub-task not found in this task.")
}

func TestProjectHandler_ViewProject(t *testing.T) {
	f := setupFixture(t)

	w := get(newEngine(t, f.db, "alice"), paths.Project(f.project.ID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Release")

	w = get(newEngine(t, f.db, "eve"), paths.Project(f.project.ID))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHealth(t *testing.T) {
	f := setupFixture(t)

	w := get(newEngine(t, f.db, ""), "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}
