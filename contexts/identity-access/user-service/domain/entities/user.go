package entities

import "time"

type User struct {
	ID        uint
	Email     string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	Posts     []AuthoredPost
}

// AuthoredPost is a post listed under its author.
type AuthoredPost struct {
	ID        uint
	Title     string
	Content   string
	Category  CategoryRef
	CreatedAt time.Time
}

type CategoryRef struct {
	ID   uint
	Name string
}
