package handler

import (
	"fmt"
	"time"

	"blogr/internal/model"
)

// APIPrefix is the mount point of the versioned JSON API.
const APIPrefix = "/api/v1"

func postURL(id uint) string {
	return fmt.Sprintf("%s/posts/%d", APIPrefix, id)
}

func userURL(id uint) string {
	return fmt.Sprintf("%s/users/%d", APIPrefix, id)
}

func commentURL(id uint) string {
	return fmt.Sprintf("%s/comments/%d", APIPrefix, id)
}

// PostJSON is the wire representation of a post.
type PostJSON struct {
	URL          string    `json:"url"`
	Body         string    `json:"body"`
	BodyHTML     string    `json:"body_html"`
	Timestamp    time.Time `json:"timestamp"`
	AuthorURL    string    `json:"author_url"`
	CommentsURL  string    `json:"comments_url"`
	CommentCount int64     `json:"comment_count"`
}

func serializePost(post *model.Post, commentCount int64) PostJSON {
	return PostJSON{
		URL:          postURL(post.ID),
		Body:         post.Body,
		BodyHTML:     post.BodyHTML,
		Timestamp:    post.Timestamp,
		AuthorURL:    userURL(post.AuthorID),
		CommentsURL:  fmt.Sprintf("%s/posts/%d/comments/", APIPrefix, post.ID),
		CommentCount: commentCount,
	}
}

// UserJSON is the wire representation of a user profile.
type UserJSON struct {
	URL         string    `json:"url"`
	Username    string    `json:"username"`
	Name        string    `json:"name,omitempty"`
	Location    string    `json:"location,omitempty"`
	AboutMe     string    `json:"about_me,omitempty"`
	MemberSince time.Time `json:"member_since"`
	LastSeen    time.Time `json:"last_seen"`
	PostsURL    string    `json:"posts_url"`
	TimelineURL string    `json:"timeline_url"`
}

func serializeUser(user *model.User) UserJSON {
	return UserJSON{
		URL:         userURL(user.ID),
		Username:    user.Username,
		Name:        user.Name,
		Location:    user.Location,
		AboutMe:     user.AboutMe,
		MemberSince: user.MemberSince,
		LastSeen:    user.LastSeen,
		PostsURL:    fmt.Sprintf("%s/users/%d/posts/", APIPrefix, user.ID),
		TimelineURL: fmt.Sprintf("%s/users/%d/timeline/", APIPrefix, user.ID),
	}
}

// CommentJSON is the wire representation of a comment.
type CommentJSON struct {
	URL       string    `json:"url"`
	PostURL   string    `json:"post_url"`
	Body      string    `json:"body"`
	BodyHTML  string    `json:"body_html"`
	Timestamp time.Time `json:"timestamp"`
	Disabled  bool      `json:"disabled"`
	AuthorURL string    `json:"author_url"`
}

func serializeComment(comment *model.Comment) CommentJSON {
	return CommentJSON{
		URL:       commentURL(comment.ID),
		PostURL:   postURL(comment.PostID),
		Body:      comment.Body,
		BodyHTML:  comment.BodyHTML,
		Timestamp: comment.Timestamp,
		Disabled:  comment.Disabled,
		AuthorURL: userURL(comment.AuthorID),
	}
}
