package domain

import "errors"

var (
	// ErrInvalidContent marks a content tree that fails schema validation.
	ErrInvalidContent = errors.New("invalid website content")
)
