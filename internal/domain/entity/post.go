package entity

import "time"

// PostRefType is the type tag posts carry in remark references.
const PostRefType = "posts"

// Post is a piece of content users can like or dislike.
type Post struct {
	ID        uint       `json:"id"`
	AuthorID  uint       `json:"author_id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

func (p *Post) RemarkSubject() Ref {
	return NewRef(PostRefType, p.ID)
}

// PostFilter narrows a post listing.
type PostFilter struct {
	SubjectScope
	AuthorID uint
	Page     int
	PageSize int
}
