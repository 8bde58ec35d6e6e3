package domain

import "errors"

var (
	ErrPointNotFound  = errors.New("delivery point not found")
	ErrDuplicatePoint = errors.New("delivery point already registered")
)
