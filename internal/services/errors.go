package services

import "errors"

// Error kinds. Every *Error unwraps to exactly one of these.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation failed")
	ErrAuth        = errors.New("authentication failed")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("service unavailable")
)

// Error is a failure the caller can act on. Code is a stable machine-readable identifier.
type Error struct {
	Kind    error
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// NotFound errors
var (
	ErrUserNotFound      = newError(ErrNotFound, "USER_NOT_FOUND", "user not found")
	ErrProjectNotFound   = newError(ErrNotFound, "PROJECT_NOT_FOUND", "project not found")
	ErrTaskNotFound      = newError(ErrNotFound, "TASK_NOT_FOUND", "task not found")
	ErrEncadreurNotFound = newError(ErrNotFound, "ENCADREUR_NOT_FOUND", "encadreur not found")
	ErrInternNotFound    = newError(ErrNotFound, "INTERN_NOT_FOUND", "intern not found")
)

// Validation errors
var (
	ErrTitleRequired        = newError(ErrValidation, "TITLE_REQUIRED", "title is required")
	ErrEmailRequired        = newError(ErrValidation, "EMAIL_REQUIRED", "email is required")
	ErrPasswordTooShort     = newError(ErrValidation, "PASSWORD_TOO_SHORT", "password must be at least 8 characters")
	ErrPasswordTooLong      = newError(ErrValidation, "PASSWORD_TOO_LONG", "password must be at most 72 bytes")
	ErrInvalidRole          = newError(ErrValidation, "INVALID_ROLE", "unknown role")
	ErrInvalidTaskStatus    = newError(ErrValidation, "INVALID_TASK_STATUS", "unknown task status")
	ErrInvalidPriority      = newError(ErrValidation, "INVALID_PRIORITY", "unknown task priority")
	ErrInvalidProjectStatus = newError(ErrValidation, "INVALID_PROJECT_STATUS", "unknown project status")
	ErrInvalidEntityType    = newError(ErrValidation, "INVALID_ENTITY_TYPE", "unknown entity type")
	ErrInvalidProgress      = newError(ErrValidation, "INVALID_PROGRESS", "progress must be between 0 and 100")
	ErrEmptyFile            = newError(ErrValidation, "EMPTY_FILE", "file is empty")
	ErrNotAnImage           = newError(ErrValidation, "INVALID_FILE_TYPE", "file must be an image")
	ErrNotAPDF              = newError(ErrValidation, "INVALID_FILE_TYPE", "file must be a PDF")
)

// Auth and conflict errors
var (
	ErrWrongPassword      = newError(ErrAuth, "WRONG_PASSWORD", "current password is incorrect")
	ErrInvalidCredentials = newError(ErrAuth, "INVALID_CREDENTIALS", "invalid email or password")
	ErrAccountSuspended   = newError(ErrAuth, "ACCOUNT_SUSPENDED", "account is suspended")
	ErrEmailTaken         = newError(ErrConflict, "EMAIL_TAKEN", "email already exists")
)

// Task suggestion errors
var (
	ErrAIServiceNotConfigured = newError(ErrUnavailable, "AI_NOT_CONFIGURED", "AI service is not configured")
	ErrAINoTasksGenerated     = newError(ErrUnavailable, "AI_NO_TASKS", "AI did not generate any tasks")
	ErrAINoValidTasks         = newError(ErrUnavailable, "AI_NO_VALID_TASKS", "no valid tasks could be created from AI output")
	ErrAITooManyTasks         = newError(ErrUnavailable, "AI_TOO_MANY_TASKS", "AI generated too many tasks")
	ErrAIRequestFailed        = newError(ErrUnavailable, "AI_REQUEST_FAILED", "AI service request failed")
)
