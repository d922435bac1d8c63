package constants

const (
	// SessionCookieName is the name of the session cookie
	SessionCookieName = "board_session"

	// ContextKeyUserID is the session and gin context key for the login id
	ContextKeyUserID = "login_id"
	// ContextKeyUserName is the session key for the display name
	ContextKeyUserName = "user_name"
	// ContextKeyRequestID is the gin context key for the request id
	ContextKeyRequestID = "request_id"
	// ContextKeyProject is set by the project role gate
	ContextKeyProject = "project"

	// HeaderRequestID carries the request id on requests and responses
	HeaderRequestID = "X-Request-ID"

	// Pagination
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	MinPasswordLength = 8
)
