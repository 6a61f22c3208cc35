package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/dshalev/teamtask/internal/constants"
	"github.com/dshalev/teamtask/internal/models"
	"github.com/dshalev/teamtask/internal/repository"
)

// resolveSessionUser loads the user referenced by the session, if any.
func resolveSessionUser(c *gin.Context, users repository.UserRepository) (*models.User, bool) {
	session := sessions.Default(c)

	userID, ok := asUserID(session.Get(constants.SessionKeyUserID))
	if !ok {
		return nil, false
	}

	user, err := users.FindByID(userID)
	if err != nil {
		return nil, false
	}

	return user, true
}

// RequireAuth resolves the session into a loaded User and stores it in the
// request context. Unauthenticated requests are redirected to the login
// page; the original destination is not preserved.
func RequireAuth(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := resolveSessionUser(c, users)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUser, *user)
		c.Next()
	}
}

// ResolveUser is RequireAuth without the redirect, for pages that render for
// both visitors and signed-in users.
func ResolveUser(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := resolveSessionUser(c, users); ok {
			c.Set(constants.ContextKeyUser, *user)
		}
		c.Next()
	}
}

// RequireTeam redirects users who have not completed profile setup away from
// the task area.
func RequireTeam() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if !user.HasTeam() {
			c.Redirect(http.StatusFound, "/profile/setup")
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser retrieves the resolved user from the request context.
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return models.User{}, false
	}

	user, ok := value.(models.User)
	return user, ok
}

// asUserID normalizes the session value; session stores may round-trip the
// ID through different integer widths.
func asUserID(value interface{}) (uint64, bool) {
	switch v := value.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int64:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
