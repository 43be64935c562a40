// Package categories implements category CRUD for quill. Categories are
// returned with the posts filed under them.
package categories
