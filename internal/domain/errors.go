package domain

import "errors"

// Domain errors.
var (
	ErrEmptyText        = errors.New("task text cannot be empty")
	ErrTaskNotFound     = errors.New("task not found")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	ErrInvalidSortOrder = errors.New("invalid sort order")
)
