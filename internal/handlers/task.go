package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-board/internal/dto"
	pageerrors "github.com/yukikurage/project-board/internal/errors"
	"github.com/yukikurage/project-board/internal/paths"
	"github.com/yukikurage/project-board/internal/services"
	"github.com/yukikurage/project-board/internal/utils"
	"github.com/yukikurage/project-board/internal/web"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ViewTask shows a task and its sub-tasks as chains
func (h *TaskHandler) ViewTask(c *gin.Context) {
	h.viewTask(c, false)
}

// AdminViewTask is ViewTask with the sub-task management link
func (h *TaskHandler) AdminViewTask(c *gin.Context) {
	h.viewTask(c, true)
}

func (h *TaskHandler) viewTask(c *gin.Context, admin bool) {
	taskID, ok := utils.QueryID(c, "task_id")
	if !ok {
		pageerrors.MissingParameter(c)
		return
	}

	detail, err := h.taskService.GetTaskDetail(taskID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	render(c, http.StatusOK, web.PageTask, detail.Task.Name, gin.H{
		"Detail": dto.ToTaskDetailDTO(detail),
		"Admin":  admin,
	})
}

// subTaskForm is the sub-task form as submitted
type subTaskForm struct {
	Name         string `form:"sub_task_name"`
	MinDays      int    `form:"min_days"`
	Start        string `form:"start"`
	End          string `form:"end"`
	PreSubTaskID uint64 `form:"pre_sub_task_id"`
}

var errInvalidDate = errors.New("dates must look like 2006-01-02")

func (f subTaskForm) input(taskID uint64) (services.CreateSubTaskInput, error) {
	input := services.CreateSubTaskInput{
		TaskID:  taskID,
		Name:    f.Name,
		MinDays: f.MinDays,
	}
	if f.PreSubTaskID != 0 {
		pre := f.PreSubTaskID
		input.PreSubTaskID = &pre
	}

	var err error
	if f.Start != "" {
		if input.Start, err = time.Parse(dto.DateLayout, f.Start); err != nil {
			return input, errInvalidDate
		}
	}
	if f.End != "" {
		if input.End, err = time.Parse(dto.DateLayout, f.End); err != nil {
			return input, errInvalidDate
		}
	}
	return input, nil
}

// NewSubTaskForm shows the form for adding a sub-task
func (h *TaskHandler) NewSubTaskForm(c *gin.Context) {
	taskID, ok := utils.QueryID(c, "task_id")
	if !ok {
		pageerrors.MissingParameter(c)
		return
	}

	h.renderSubTaskForm(c, http.StatusOK, taskID, subTaskForm{}, "")
}

// CreateSubTask adds a sub-task and returns to the task's management page
func (h *TaskHandler) CreateSubTask(c *gin.Context) {
	taskID, ok := utils.QueryID(c, "task_id")
	if !ok {
		pageerrors.MissingParameter(c)
		return
	}

	var form subTaskForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderSubTaskForm(c, http.StatusBadRequest, taskID, form, "Minimum days and predecessor must be numbers.")
		return
	}

	input, err := form.input(taskID)
	if err != nil {
		h.renderSubTaskForm(c, http.StatusBadRequest, taskID, form, "Dates must be in YYYY-MM-DD form.")
		return
	}

	if _, err := h.taskService.CreateSubTask(input); err != nil {
		switch {
		case errors.Is(err, services.ErrSubTaskNameRequired),
			errors.Is(err, services.ErrNegativeMinDays),
			errors.Is(err, services.ErrInvalidSubTaskPeriod),
			errors.Is(err, services.ErrPredecessorNotFound):
			h.renderSubTaskForm(c, http.StatusBadRequest, taskID, form, capitalize(err.Error())+".")
		default:
			respondServiceError(c, err)
		}
		return
	}

	redirect(c, paths.AdminTask(taskID))
}

func (h *TaskHandler) renderSubTaskForm(c *gin.Context, status int, taskID uint64, form subTaskForm, message string) {
	detail, err := h.taskService.GetTaskDetail(taskID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	subTasks := dto.ToTaskDetailDTO(detail).SubTasks
	render(c, status, web.PageSubTaskNew, "Add sub-task", gin.H{
		"Task":     dto.ToTaskDTO(*detail.Task),
		"SubTasks": subTasks,
		"Form":     form,
		"Error":    message,
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
