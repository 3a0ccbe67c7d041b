package services

import "errors"

var (
	// ErrUnauthenticated means the request carried no Authorization header.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrInvalidToken means the bearer token could not be verified or has no usable subject.
	ErrInvalidToken = errors.New("invalid token")
	// ErrForbidden means the caller may not act on the post.
	ErrForbidden  = errors.New("forbidden")
	ErrNotFound   = errors.New("post not found")
	ErrBadRequest = errors.New("invalid input")
)
