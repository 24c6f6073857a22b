package constants

// Session and context keys
const (
	SessionCookieName = "internship_session"
	ContextKeyUserID  = "user_id"
	ContextKeyEmail   = "email"
	ContextKeyRole    = "role"
)

// Password bounds. The minimum counts characters; the maximum is bcrypt's input limit in bytes.
const (
	MinPasswordLength = 8
	MaxPasswordBytes  = 72
)

// Public URL prefixes for uploaded files
const (
	AvatarURLPrefix = "/uploads/profile-images/"
	CVURLPrefix     = "/uploads/cv-files/"
)

// Activity listing limits
const (
	DefaultActivityLimit = 50
	MaxActivityLimit     = 200
)

// MaxAIGeneratedTasks caps the number of task suggestions accepted from the AI service.
const MaxAIGeneratedTasks = 20

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"
