package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrResetRequestFailed  = errors.New("no account registered for this email")
	ErrInvalidResetToken   = errors.New("invalid reset token")
)
