package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid or disabled user")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrAdminExists        = errors.New("admin already exists")
	ErrPasswordMismatch   = errors.New("new passwords do not match")
	ErrInvalidRole        = errors.New("invalid role")
	ErrIncompleteAdmin    = errors.New("username and password are required")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")

	ErrUpdateNotFound  = errors.New("update not found")
	ErrContactNotFound = errors.New("enquiry not found")
	ErrInvalidPhone    = errors.New("please enter a valid 10-digit mobile number")
	ErrInvalidStatus   = errors.New("invalid enquiry status")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidService  = errors.New("please select a service")

	ErrForbidden      = errors.New("access forbidden")
	ErrSelfDeactivate = errors.New("you cannot deactivate your own account")
)
