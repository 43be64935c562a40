// Package users manages the authenticated user's own profile: reading it with
// authored posts, editing it and deleting it.
package users
