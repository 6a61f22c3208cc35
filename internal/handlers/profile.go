package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dshalev/teamtask/internal/forms"
	"github.com/dshalev/teamtask/internal/middleware"
	"github.com/dshalev/teamtask/internal/services"
)

// ProfileHandler serves the setup, edit and detail pages for a user's team
// and role. Setup and edit share the same form; they differ only in template
// and in where they land on success.
type ProfileHandler struct {
	profileService *services.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// ShowSetup renders the one-time profile setup form.
func (h *ProfileHandler) ShowSetup(c *gin.Context) {
	h.showForm(c, "profile_setup.html")
}

// Setup applies the chosen team and role, then enters the task area.
func (h *ProfileHandler) Setup(c *gin.Context) {
	h.submitForm(c, "profile_setup.html", "/tasks")
}

// ShowEdit renders the profile edit form.
func (h *ProfileHandler) ShowEdit(c *gin.Context) {
	h.showForm(c, "profile_edit.html")
}

// Edit applies the chosen team and role, then returns to the profile page.
func (h *ProfileHandler) Edit(c *gin.Context) {
	h.submitForm(c, "profile_edit.html", "/profile")
}

// Detail renders the profile page.
func (h *ProfileHandler) Detail(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.HTML(http.StatusOK, "profile_detail.html", gin.H{
		"user": user,
		"team": user.Team,
		"role": user.Role,
	})
}

func (h *ProfileHandler) showForm(c *gin.Context, template string) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	teams, err := h.profileService.Teams()
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	form := forms.ProfileForm{Role: string(user.Role)}
	if user.TeamID != nil {
		form.TeamID = *user.TeamID
	}

	c.HTML(http.StatusOK, template, gin.H{
		"user":   user,
		"teams":  teams,
		"form":   form,
		"errors": forms.Errors{},
	})
}

func (h *ProfileHandler) submitForm(c *gin.Context, template, successURL string) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var form forms.ProfileForm
	_ = c.ShouldBind(&form)

	errs := form.Validate()
	if len(errs) == 0 {
		_, err := h.profileService.AssignTeam(user.ID, form.TeamID)
		switch {
		case err == nil:
			if _, err := h.profileService.AssignRole(user.ID, form.RoleValue()); err != nil {
				c.String(http.StatusInternalServerError, "Internal Server Error")
				return
			}
			c.Redirect(http.StatusFound, successURL)
			return
		case errors.Is(err, services.ErrTeamNotFound):
			errs.Add("team", "Select a valid team.")
		default:
			c.String(http.StatusInternalServerError, "Internal Server Error")
			return
		}
	}

	teams, err := h.profileService.Teams()
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.HTML(http.StatusOK, template, gin.H{
		"user":   user,
		"teams":  teams,
		"form":   form,
		"errors": errs,
	})
}
