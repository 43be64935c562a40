package errors

import "errors"

var (
	ErrPostNotFound     = errors.New("Post not found")
	ErrAuthorNotFound   = errors.New("Author / user Id invalid or not found")
	ErrCategoryNotFound = errors.New("Category Id invalid or not found")
	ErrInvalidRelation  = errors.New("Data relation invalid")
)
