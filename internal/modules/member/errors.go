package member

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("member profile not found")
	ErrAlreadyOnboarded = errors.New("member profile already exists")
)
