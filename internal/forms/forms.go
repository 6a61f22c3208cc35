// Package forms holds the form binding structs and their validation. Field
// errors are collected per field and re-rendered next to the inputs; no
// validation failure ever escapes a handler as an error.
package forms

import (
	"net/mail"
	"strings"
	"time"

	"github.com/dshalev/teamtask/internal/constants"
	"github.com/dshalev/teamtask/internal/models"
)

// Errors maps a form field name to its validation message.
type Errors map[string]string

func (e Errors) Add(field, message string) {
	if _, dup := e[field]; !dup {
		e[field] = message
	}
}

// SignupForm is the registration form.
type SignupForm struct {
	Username        string `form:"username"`
	Email           string `form:"email"`
	Password        string `form:"password1"`
	PasswordConfirm string `form:"password2"`
}

func (f *SignupForm) Validate() Errors {
	errs := Errors{}

	if strings.TrimSpace(f.Username) == "" {
		errs.Add("username", "This field is required.")
	}
	if _, err := mail.ParseAddress(f.Email); err != nil {
		errs.Add("email", "Enter a valid email address.")
	}
	if len(f.Password) < constants.MinPasswordLength {
		errs.Add("password1", "Password is too short.")
	}
	if f.Password != f.PasswordConfirm {
		errs.Add("password2", "The two password fields didn't match.")
	}

	return errs
}

// LoginForm is the login form.
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// ProfileForm is shared by profile setup and profile edit.
type ProfileForm struct {
	TeamID uint64 `form:"team"`
	Role   string `form:"role"`
}

func (f *ProfileForm) Validate() Errors {
	errs := Errors{}

	if f.TeamID == 0 {
		errs.Add("team", "Select your team.")
	}
	if !models.Role(f.Role).Valid() {
		errs.Add("role", "Select a valid role.")
	}

	return errs
}

// RoleValue returns the submitted role as its model type. Only meaningful
// after Validate passed.
func (f *ProfileForm) RoleValue() models.Role {
	return models.Role(f.Role)
}

// TaskForm is shared by task creation and task editing.
type TaskForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	DueDate     string `form:"due_date"`
}

// Validate checks the fields and parses the due date. The due date must not
// be before today's date; this is checked at input time only and never
// re-checked on later status transitions.
func (f *TaskForm) Validate(now time.Time) (time.Time, Errors) {
	errs := Errors{}

	if strings.TrimSpace(f.Title) == "" {
		errs.Add("title", "This field is required.")
	}
	if strings.TrimSpace(f.Description) == "" {
		errs.Add("description", "This field is required.")
	}

	dueDate, err := time.ParseInLocation(constants.DateLayout, f.DueDate, now.Location())
	if err != nil {
		errs.Add("due_date", "Enter a valid date.")
		return time.Time{}, errs
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dueDate.Before(today) {
		errs.Add("due_date", "Due date cannot be in the past.")
	}

	return dueDate, errs
}

// StatusForm is the status update form.
type StatusForm struct {
	Status string `form:"status"`
}

func (f *StatusForm) Validate() (models.TaskStatus, Errors) {
	errs := Errors{}

	status := models.TaskStatus(f.Status)
	if !status.Valid() {
		errs.Add("status", "Select a valid status.")
	}

	return status, errs
}
