package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/dshalev/teamtask/internal/constants"
	"github.com/dshalev/teamtask/internal/forms"
	"github.com/dshalev/teamtask/internal/services"
)

// AuthHandler coordinates registration, login and logout.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// ShowRegister renders the empty registration form.
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{
		"form":   forms.SignupForm{},
		"errors": forms.Errors{},
	})
}

// Register creates the account, logs the new user in, and routes them to
// profile setup; team and role have not been chosen yet.
func (h *AuthHandler) Register(c *gin.Context) {
	var form forms.SignupForm
	_ = c.ShouldBind(&form)

	errs := form.Validate()
	if len(errs) == 0 {
		user, err := h.authService.Register(services.RegisterInput{
			Username: form.Username,
			Email:    form.Email,
			Password: form.Password,
		})
		switch {
		case err == nil:
			if err := startSession(c, user.ID); err != nil {
				c.String(http.StatusInternalServerError, "Internal Server Error")
				return
			}
			c.Redirect(http.StatusFound, "/profile/setup")
			return
		case errors.Is(err, services.ErrUsernameTaken):
			errs.Add("username", "A user with that username already exists.")
		case errors.Is(err, services.ErrInvalidEmail):
			errs.Add("email", "Enter a valid email address.")
		case errors.Is(err, services.ErrPasswordTooShort):
			errs.Add("password1", "Password is too short.")
		default:
			c.String(http.StatusInternalServerError, "Internal Server Error")
			return
		}
	}

	c.HTML(http.StatusOK, "signup.html", gin.H{
		"form":   form,
		"errors": errs,
	})
}

// ShowLogin renders the login form.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"form": forms.LoginForm{},
	})
}

// Login authenticates and routes to profile setup when the team is still
// unset, else to the task list. This is what forces a fresh user to pick a
// team before doing anything.
func (h *AuthHandler) Login(c *gin.Context) {
	var form forms.LoginForm
	_ = c.ShouldBind(&form)

	user, err := h.authService.Login(services.LoginInput{
		Username: form.Username,
		Password: form.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.HTML(http.StatusOK, "login.html", gin.H{
				"form":  form,
				"error": "Please enter a correct username and password.",
			})
			return
		}
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if err := startSession(c, user.ID); err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if !user.HasTeam() {
		c.Redirect(http.StatusFound, "/profile/setup")
		return
	}
	c.Redirect(http.StatusFound, "/tasks")
}

// Logout clears the session and returns to the landing page.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func startSession(c *gin.Context, userID uint64) error {
	session := sessions.Default(c)
	session.Set(constants.SessionKeyUserID, userID)
	return session.Save()
}
