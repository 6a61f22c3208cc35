package forms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dshalev/teamtask/internal/models"
)

func TestSignupFormValidate(t *testing.T) {
	form := SignupForm{
		Username:        "newuser",
		Email:           "newuser@example.com",
		Password:        "supersecret",
		PasswordConfirm: "supersecret",
	}
	require.Empty(t, form.Validate())

	form.Email = "not-an-email"
	form.PasswordConfirm = "different"
	errs := form.Validate()
	require.Contains(t, errs, "email")
	require.Contains(t, errs, "password2")

	empty := SignupForm{}
	errs = empty.Validate()
	require.Contains(t, errs, "username")
	require.Contains(t, errs, "password1")
}

func TestTaskFormValidate(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 4, 5, 0, time.UTC)

	form := TaskForm{Title: "Fix login bug", Description: "Fix the authentication issue", DueDate: "2026-09-01"}
	due, errs := form.Validate(now)
	require.Empty(t, errs)
	require.Equal(t, "2026-09-01", due.Format("2006-01-02"))

	// Today is acceptable even late in the day.
	form.DueDate = "2026-08-29"
	_, errs = form.Validate(now)
	require.Empty(t, errs)

	form.DueDate = "2026-08-28"
	_, errs = form.Validate(now)
	require.Contains(t, errs, "due_date")

	form.DueDate = "yesterday"
	_, errs = form.Validate(now)
	require.Contains(t, errs, "due_date")

	missing := TaskForm{DueDate: "2026-09-01"}
	_, errs = missing.Validate(now)
	require.Contains(t, errs, "title")
	require.Contains(t, errs, "description")
}

func TestProfileFormValidate(t *testing.T) {
	form := ProfileForm{TeamID: 1, Role: "Manager"}
	require.Empty(t, form.Validate())
	require.Equal(t, models.RoleManager, form.RoleValue())

	form = ProfileForm{Role: "CEO"}
	errs := form.Validate()
	require.Contains(t, errs, "team")
	require.Contains(t, errs, "role")
}

func TestStatusFormValidate(t *testing.T) {
	for _, status := range []string{"New", "In Progress", "Completed"} {
		form := StatusForm{Status: status}
		got, errs := form.Validate()
		require.Empty(t, errs)
		require.Equal(t, models.TaskStatus(status), got)
	}

	form := StatusForm{Status: "Done"}
	_, errs := form.Validate()
	require.Contains(t, errs, "status")
}
