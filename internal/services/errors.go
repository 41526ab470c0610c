// Package services defines the business logic for the chat-bot data store,
// the dashboard metrics, and the invoice proxy. This file centralizes
// service-level error values so handlers can map them to HTTP results
// consistently.
//
// Every specific error wraps one of the class sentinels below, so callers
// can test either errors.Is(err, ErrUserNotFound) or errors.Is(err,
// ErrNotFound). Error() returns the public message.
package services

import "errors"

// Error classes.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidInput  = errors.New("invalid input")
)

type classError struct {
	class error
	msg   string
}

func (e *classError) Error() string        { return e.msg }
func (e *classError) Is(target error) bool { return target == e.class }

func classed(class error, msg string) error { return &classError{class: class, msg: msg} }

// Not found.
var (
	ErrUserNotFound        = classed(ErrNotFound, "User not found")
	ErrCompanyNotFound     = classed(ErrNotFound, "Company not found")
	ErrTransactionNotFound = classed(ErrNotFound, "Transaction not found")
	ErrFeedbackNotFound    = classed(ErrNotFound, "Feedback not found")
	ErrChatNotFound        = classed(ErrNotFound, "Chat not found")
)

// Already exists.
var (
	ErrUserExists    = classed(ErrAlreadyExists, "User already exists")
	ErrCompanyExists = classed(ErrAlreadyExists, "Company already exists")
)

// Invalid input.
var (
	ErrMissingFields          = classed(ErrInvalidInput, "Missing required fields")
	ErrInvalidTransactionType = classed(ErrInvalidInput, "Invalid transaction type")
	ErrInvalidAmount          = classed(ErrInvalidInput, "Invalid amount")
	ErrEmptyContent           = classed(ErrInvalidInput, "content is required")
)
