package errors

import "errors"

var (
	ErrUserNotFound     = errors.New("User does not exist")
	ErrEmailAlreadyUsed = errors.New("Data / email already used")
	// ErrInvalidRelation is returned when the user still owns posts.
	ErrInvalidRelation = errors.New("Data relation invalid")
	ErrInvalidUserID   = errors.New("invalid user id")
)
