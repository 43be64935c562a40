package entities

import "time"

type Category struct {
	ID          uint
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Posts       []FiledPost
}

// FiledPost is a post listed under its category.
type FiledPost struct {
	ID        uint
	Title     string
	Content   string
	Author    AuthorRef
	CreatedAt time.Time
}

type AuthorRef struct {
	ID   uint
	Name string
}
