package storage

import "errors"

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrRepairNotFound = errors.New("repair order not found")
	ErrUserNotFound   = errors.New("user not found")
)
