package comments

import "errors"

var (
	// ErrCommentNotFound indicates the requested comment doesn't exist
	ErrCommentNotFound = errors.New("comment not found")

	// ErrContentNotFound indicates the content item being commented on
	// doesn't exist
	ErrContentNotFound = errors.New("content not found")

	// ErrEmptyText indicates a comment with no content after trimming
	ErrEmptyText = errors.New("comment text cannot be empty")

	// ErrNotAuthorized indicates a delete attempt by someone who is neither
	// the comment's author nor a moderator
	ErrNotAuthorized = errors.New("only the comment author or a moderator can delete a comment")

	// ErrUnauthenticated indicates no resolved actor identity
	ErrUnauthenticated = errors.New("authentication required")
)
