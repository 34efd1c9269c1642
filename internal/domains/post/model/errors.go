package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodePostNotFound  = "POST001"
	ErrCodeEmptyText     = "POST002"
	ErrCodeNotAuthor     = "POST003"
	ErrCodeInvalidImage  = "POST004"
	ErrCodeGroupNotFound = "POST005"
)

// Errors
var (
	ErrPostNotFound  = errors.New("post not found")
	ErrEmptyText     = errors.New("post text must not be empty")
	ErrNotPostAuthor = errors.New("only the author may modify a post")
)

// PostError carries a stable code alongside the underlying sentinel.
type PostError struct {
	Code    string
	Message string
	Err     error
}

func (e *PostError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *PostError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewPostNotFoundError() *PostError {
	return &PostError{
		Code:    ErrCodePostNotFound,
		Message: "Post not found",
		Err:     ErrPostNotFound,
	}
}

func NewNotAuthorError() *PostError {
	return &PostError{
		Code:    ErrCodeNotAuthor,
		Message: "Only the author may modify this post",
		Err:     ErrNotPostAuthor,
	}
}

func NewInvalidImageError(err error) *PostError {
	return &PostError{
		Code:    ErrCodeInvalidImage,
		Message: "Invalid image upload",
		Err:     err,
	}
}
