package comment

import "errors"

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrEmptyText       = errors.New("comment text cannot be empty")
)
