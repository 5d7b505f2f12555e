package core

import "errors"

// User errors
var (
	ErrUserExists         = errors.New("user already exists")          // 409 Conflict
	ErrUserNotFound       = errors.New("user not found")               // 404 Not Found
	ErrInvalidCredentials = errors.New("invalid username or password") // 401 Unauthorized
)

// Token and identity errors
var (
	ErrMissingToken     = errors.New("missing authentication token") // 401
	ErrInvalidToken     = errors.New("invalid or expired token")     // 403
	ErrNotAuthenticated = errors.New("not authenticated")            // 401
)

// Validation errors (client input)
var (
	ErrUsernameRequired = errors.New("username is required")      // 400
	ErrEmailRequired    = errors.New("email is required")         // 400
	ErrPasswordRequired = errors.New("password is required")      // 400
	ErrInvalidEmail     = errors.New("invalid email format")      // 400
	ErrBookIDRequired   = errors.New("book id is required")       // 400
	ErrBookTitleMissing = errors.New("book title is required")    // 400
)

// Config errors (server-side configuration)
var (
	ErrSigningKeyMissing = errors.New("signing secret is not configured") // 500, fatal at startup
	ErrStorageRequired   = errors.New("storage adapter is required")      // 500
)
