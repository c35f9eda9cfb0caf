package domain

import "errors"

var (
	ErrInvalidProfile = errors.New("invalid profile")
	ErrUnknownNavItem = errors.New("unknown navigation item")
)
