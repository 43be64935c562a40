package errors

import "errors"

var (
	ErrCategoryNotFound = errors.New("Category not found")
	// ErrInvalidRelation is returned when posts are still filed under the category.
	ErrInvalidRelation = errors.New("Data relation invalid")
)
