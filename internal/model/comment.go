package model

import (
	"time"

	"gorm.io/gorm"

	"blogr/internal/markdown"
)

// Comment represents a reply to a post. A comment always belongs to exactly
// one post and one author. Disabled comments are hidden by moderators but
// kept in storage.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Body      string    `json:"body" gorm:"type:text;not null"`
	BodyHTML  string    `json:"body_html" gorm:"type:text"`
	Timestamp time.Time `json:"timestamp" gorm:"index"`
	Disabled  bool      `json:"disabled" gorm:"default:false"`
	AuthorID  uint      `json:"author_id" gorm:"not null;index"`
	PostID    uint      `json:"post_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Relations
	Author User `json:"-" gorm:"foreignKey:AuthorID"`
	Post   Post `json:"-" gorm:"foreignKey:PostID"`
}

// BeforeSave renders the sanitized HTML body.
func (c *Comment) BeforeSave(tx *gorm.DB) error {
	c.BodyHTML = markdown.Render(c.Body)
	return nil
}

// BeforeCreate stamps the publication time.
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.Timestamp.IsZero() {
		c.Timestamp = time.Now()
	}
	return nil
}
