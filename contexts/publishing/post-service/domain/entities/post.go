package entities

import "time"

type Post struct {
	ID         uint
	Title      string
	Content    string
	AuthorID   uint
	CategoryID uint
	Author     Ref
	Category   Ref
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Ref is the id and display name of a related row.
type Ref struct {
	ID   uint
	Name string
}
