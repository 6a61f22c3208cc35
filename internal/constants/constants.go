package constants

const (
	// SessionCookieName is the name of the session cookie.
	SessionCookieName = "teamtask_session"

	// SessionKeyUserID is the session key holding the authenticated user's ID.
	SessionKeyUserID = "user_id"

	// ContextKeyUser is the gin context key holding the resolved current user.
	ContextKeyUser = "current_user"

	// MinPasswordLength is the minimum accepted password length at signup.
	MinPasswordLength = 8

	// DateLayout is the wire format for due dates in HTML date inputs.
	DateLayout = "2006-01-02"

	// HomeRecentTaskLimit caps the "soonest due" list on the home page.
	HomeRecentTaskLimit = 5
)
