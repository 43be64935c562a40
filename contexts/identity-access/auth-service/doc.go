// Package auth implements signup and signin for quill.
//
// Layering:
// - domain: credential entity and auth errors
// - application: sign up / sign in commands over explicit ports
// - adapters: gorm credential store, in-memory store, transport handler
//
// Password hashing and token issuance are consumed through ports and provided
// by internal/platform/credentials at composition time.
package auth
