package parser

import "errors"

var (
	// ErrEmptySheet indicates a sheet with no rows where data was expected.
	ErrEmptySheet = errors.New("sheet is empty")
	// ErrUnknownPerson indicates a result row naming nobody from the Registration sheet.
	ErrUnknownPerson = errors.New("unknown person")
	// ErrInvalidAttempt indicates a cell that does not read as an attempt result.
	ErrInvalidAttempt = errors.New("invalid attempt result")
)
