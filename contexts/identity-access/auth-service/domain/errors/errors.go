package errors

import "errors"

// Messages are returned to clients verbatim.
var (
	ErrEmailTaken           = errors.New("User with this email already exist")
	ErrEmailAlreadyUsed     = errors.New("Data / email already used")
	ErrUserNotFound         = errors.New("User does not exist")
	ErrIncorrectCredentials = errors.New("Incorrect credentials")
	ErrInvalidRequest       = errors.New("invalid auth request")
)
