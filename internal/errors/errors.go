package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrPostNotFound is returned when a post is not found.
	ErrPostNotFound = errors.New("post not found")
	// ErrCommentNotFound is returned when a comment is not found.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrEmptyBody is returned when a post or comment has no body.
	ErrEmptyBody = errors.New("body must not be empty")
	// ErrForbidden is returned when the caller lacks permission for the operation.
	ErrForbidden = errors.New("insufficient permissions")
	// ErrUnconfirmed is returned when the account has not confirmed its email.
	ErrUnconfirmed = errors.New("unconfirmed account")
	// ErrAlreadyFollowing is returned on a duplicate follow request.
	ErrAlreadyFollowing = errors.New("already following this user")
	// ErrNotFollowing is returned when unfollowing a user that is not followed.
	ErrNotFollowing = errors.New("not following this user")
	// ErrSelfFollow is returned when a user tries to follow themselves.
	ErrSelfFollow = errors.New("cannot follow yourself")
)

// ErrorResponse is the JSON error envelope returned to API clients.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error:   StatusText(e.StatusCode),
		Message: e.Message,
	}
}

// StatusText returns the lowercase error name used in response envelopes.
func StatusText(statusCode int) string {
	switch statusCode {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not found"
	case http.StatusConflict:
		return "conflict"
	default:
		return "internal server error"
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrUserNotFound, ErrPostNotFound, ErrCommentNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error())
	case ErrEmptyBody, ErrAlreadyFollowing, ErrNotFollowing, ErrSelfFollow:
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case ErrForbidden, ErrUnconfirmed:
		return NewHTTPError(http.StatusForbidden, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
