package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dshalev/teamtask/internal/middleware"
	"github.com/dshalev/teamtask/internal/services"
)

// HomeHandler serves the landing page.
type HomeHandler struct {
	taskService *services.TaskService
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(taskService *services.TaskService) *HomeHandler {
	return &HomeHandler{
		taskService: taskService,
	}
}

// Home renders the dashboard for signed-in users and a stateless landing
// page for everyone else. Users without a team get the dashboard with zero
// counts, same as the original application.
func (h *HomeHandler) Home(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.HTML(http.StatusOK, "home.html", gin.H{})
		return
	}

	overview, err := h.taskService.Overview(user)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"user":           user,
		"team":           user.Team,
		"task_stats":     overview.Summary,
		"recent_tasks":   overview.Recent,
		"assigned_tasks": overview.Assigned,
	})
}
