package model

import (
	"time"

	"gorm.io/gorm"

	"blogr/internal/markdown"
)

// Post represents a blog post authored in Markdown. BodyHTML is derived from
// Body on every save and is never accepted from clients.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Body      string    `json:"body" gorm:"type:text;not null"`
	BodyHTML  string    `json:"body_html" gorm:"type:text"`
	Timestamp time.Time `json:"timestamp" gorm:"index"`
	AuthorID  uint      `json:"author_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Relations
	Author   User      `json:"-" gorm:"foreignKey:AuthorID"`
	Comments []Comment `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// BeforeSave renders the sanitized HTML body.
func (p *Post) BeforeSave(tx *gorm.DB) error {
	p.BodyHTML = markdown.Render(p.Body)
	return nil
}

// BeforeCreate stamps the publication time.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.Timestamp.IsZero() {
		p.Timestamp = time.Now()
	}
	return nil
}
