// Package posts implements post CRUD for quill.
//
// Posts reference an author (users) and a category. Both references are
// enforced by the store; the postgres adapter reports which one was invalid.
package posts
