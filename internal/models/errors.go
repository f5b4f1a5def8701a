package models

import "errors"

// Custom errors
var (
	ErrInvalidOverrides = errors.New("invalid pick config overrides")
	ErrMatchDecode      = errors.New("unable to decode match input")
	ErrEmptyBatch       = errors.New("batch contains no matches")
	ErrInvalidMatch     = errors.New("invalid match input")
)
