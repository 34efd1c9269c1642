package group

import "errors"

var (
	ErrGroupNotFound = errors.New("group not found")
	ErrSlugTaken     = errors.New("group slug already taken")
	ErrInvalidSlug   = errors.New("title does not produce a valid slug")
)
