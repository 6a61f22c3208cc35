package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dshalev/teamtask/internal/constants"
	"github.com/dshalev/teamtask/internal/forms"
	"github.com/dshalev/teamtask/internal/middleware"
	"github.com/dshalev/teamtask/internal/models"
	"github.com/dshalev/teamtask/internal/policy"
	"github.com/dshalev/teamtask/internal/services"
)

// TaskHandler serves the task area. Every handler authenticates via the
// resolved context user, loads the target task, consults the policy package
// and either renders, mutates, or silently redirects on denial.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

var statusChoices = []models.TaskStatus{
	models.TaskStatusNew,
	models.TaskStatusInProgress,
	models.TaskStatusCompleted,
}

// List renders the team's tasks, soonest due first. An optional ?status=
// filter narrows the listing; the summary counts are computed from the
// filtered set, so with a filter active the other statuses read zero.
// The team guard on the route group ensures the user has a team here.
func (h *TaskHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var status *models.TaskStatus
	statusFilter := c.Query("status")
	if statusFilter != "" {
		s := models.TaskStatus(statusFilter)
		status = &s
	}

	page, err := h.taskService.ListTasks(*user.TeamID, status)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.HTML(http.StatusOK, "task_list.html", gin.H{
		"tasks":                 page.Tasks,
		"team":                  user.Team,
		"user":                  user,
		"current_status_filter": statusFilter,
		"task_summary":          page.Summary,
	})
}

// Detail renders a task's page. Tasks from other teams redirect to the list
// rather than acknowledging the task exists.
func (h *TaskHandler) Detail(c *gin.Context) {
	user, task, ok := h.loadTask(c)
	if !ok {
		return
	}

	if err := policy.CanViewTask(user, *task); err != nil {
		c.Redirect(http.StatusFound, "/tasks")
		return
	}

	c.HTML(http.StatusOK, "task_detail.html", gin.H{
		"task":        task,
		"is_assigned": task.IsAssignedTo(user.ID),
		"is_manager":  user.IsManager(),
	})
}

// ShowCreate renders the task creation form for Managers.
func (h *TaskHandler) ShowCreate(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if err := policy.CanCreateTask(user); err != nil {
		c.Redirect(http.StatusFound, "/tasks")
		return
	}

	c.HTML(http.StatusOK, "task_form.html", gin.H{
		"form":   forms.TaskForm{},
		"errors": forms.Errors{},
		"user":   user,
	})
}

// Create creates a task for the Manager's own team. The team and the New
// status are set server-side; client-supplied values for either are ignored.
func (h *TaskHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if err := policy.CanCreateTask(user); err != nil {
		c.Redirect(http.StatusFound, "/tasks")
		return
	}

	var form forms.TaskForm
	_ = c.ShouldBind(&form)

	dueDate, errs := form.Validate(time.Now())
	if len(errs) > 0 {
		c.HTML(http.StatusOK, "task_form.html", gin.H{
			"form":   form,
			"errors": errs,
			"user":   user,
		})
		return
	}

	task, err := h.taskService.CreateTask(user, services.TaskInput{
		Title:       form.Title,
		Description: form.Description,
		DueDate:     dueDate,
	})
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.Redirect(http.StatusFound, taskDetailURL(task.ID))
}

// ShowEdit renders the edit form for a still-New task.
func (h *TaskHandler) ShowEdit(c *gin.Context) {
	user, task, ok := h.loadTask(c)
	if !ok {
		return
	}

	if err := policy.CanEditTask(user, *task); err != nil {
		redirectDenied(c, task, err)
		return
	}

	c.HTML(http.StatusOK, "task_form.html", gin.H{
		"form":   taskFormFor(task),
		"errors": forms.Errors{},
		"task":   task,
		"user":   user,
	})
}

// Edit updates a task's title, description and due date. Team, status and
// assignee are not editable here.
func (h *TaskHandler) Edit(c *gin.Context) {
	user, task, ok := h.loadTask(c)
	if !ok {
		return
	}

	if err := policy.CanEditTask(user, *task); err != nil {
		redirectDenied(c, task, err)
		return
	}

	var form forms.TaskForm
	_ = c.ShouldBind(&form)

	dueDate, errs := form.Validate(time.Now())
	if len(errs) > 0 {
		c.HTML(http.StatusOK, "task_form.html", gin.H{
			"form":   form,
			"errors": errs,
			"task":   task,
			"user":   user,
		})
		return
	}

	if _, err := h.taskService.UpdateTask(task.ID, services.TaskInput{
		Title:       form.Title,
		Description: form.Description,
		DueDate:     dueDate,
	}); err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.Redirect(http.StatusFound, taskDetailURL(task.ID))
}

// ShowStatus renders the status update form for the task's assignee.
func (h *TaskHandler) ShowStatus(c *gin.Context) {
	user, task, ok := h.loadTask(c)
	if !ok {
		return
	}

	if err := policy.CanUpdateStatus(user, *task); err != nil {
		redirectDenied(c, task, err)
		return
	}

	c.HTML(http.StatusOK, "task_status_form.html", gin.H{
		"task":     task,
		"statuses": statusChoices,
		"errors":   forms.Errors{},
	})
}

// UpdateStatus sets the task's status. Transitions are unrestricted in both
// directions and re-submitting the current status succeeds unchanged.
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	user, task, ok := h.loadTask(c)
	if !ok {
		return
	}

	if err := policy.CanUpdateStatus(user, *task); err != nil {
		redirectDenied(c, task, err)
		return
	}

	var form forms.StatusForm
	_ = c.ShouldBind(&form)

	status, errs := form.Validate()
	if len(errs) > 0 {
		c.HTML(http.StatusOK, "task_status_form.html", gin.H{
			"task":     task,
			"statuses": statusChoices,
			"errors":   errs,
		})
		return
	}

	if err := h.taskService.UpdateStatus(task.ID, status); err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.Redirect(http.StatusFound, taskDetailURL(task.ID))
}

// Associate claims an unassigned team task for the current user. The claim
// is an atomic conditional update; when two users race for the same task,
// the loser is redirected to the detail page exactly like an
// already-assigned denial.
func (h *TaskHandler) Associate(c *gin.Context) {
	user, task, ok := h.loadTask(c)
	if !ok {
		return
	}

	if err := policy.CanAssociate(user, *task); err != nil {
		redirectDenied(c, task, err)
		return
	}

	claimed, err := h.taskService.Claim(task.ID, user.ID)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	// A rival claim can land between the policy check and the update. The
	// loser goes to the detail page, which now shows the rival assignee.
	if !claimed {
		c.Redirect(http.StatusFound, taskDetailURL(task.ID))
		return
	}

	c.Redirect(http.StatusFound, taskDetailURL(task.ID))
}

// ShowDelete renders the delete confirmation page.
func (h *TaskHandler) ShowDelete(c *gin.Context) {
	user, task, ok := h.loadTask(c)
	if !ok {
		return
	}

	if err := policy.CanDeleteTask(user, *task); err != nil {
		redirectDenied(c, task, err)
		return
	}

	c.HTML(http.StatusOK, "task_confirm_delete.html", gin.H{
		"task": task,
	})
}

// Delete removes the task, and with it the only way to clear an assignment.
func (h *TaskHandler) Delete(c *gin.Context) {
	user, task, ok := h.loadTask(c)
	if !ok {
		return
	}

	if err := policy.CanDeleteTask(user, *task); err != nil {
		redirectDenied(c, task, err)
		return
	}

	if err := h.taskService.DeleteTask(task.ID); err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.Redirect(http.StatusFound, "/tasks")
}

// loadTask resolves the current user and the task named in the URL. A bad
// or unknown ID terminates the request with a 404 page.
func (h *TaskHandler) loadTask(c *gin.Context) (models.User, *models.Task, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return models.User{}, nil, false
	}

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		renderNotFound(c)
		return models.User{}, nil, false
	}

	task, err := h.taskService.GetTask(taskID)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			renderNotFound(c)
		} else {
			c.String(http.StatusInternalServerError, "Internal Server Error")
		}
		return models.User{}, nil, false
	}

	return user, task, true
}

// redirectDenied maps a policy denial to its fallback view: team and role
// denials fall back to the task list, task-state denials to the detail page.
func redirectDenied(c *gin.Context, task *models.Task, err error) {
	switch {
	case errors.Is(err, policy.ErrStatusLocked),
		errors.Is(err, policy.ErrNotAssignee),
		errors.Is(err, policy.ErrAlreadyAssigned):
		c.Redirect(http.StatusFound, taskDetailURL(task.ID))
	default:
		c.Redirect(http.StatusFound, "/tasks")
	}
}

func renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.html", gin.H{})
}

func taskDetailURL(id uint64) string {
	return fmt.Sprintf("/tasks/%d", id)
}

func taskFormFor(task *models.Task) forms.TaskForm {
	return forms.TaskForm{
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate.Format(constants.DateLayout),
	}
}
