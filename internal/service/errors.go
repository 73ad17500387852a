package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")

	// ErrIncompleteRange is returned when only one bound of a range is given.
	ErrIncompleteRange = errors.New("both range bounds are required")

	ErrInvalidMonth = errors.New("month must be in YYYY-MM form")
)
