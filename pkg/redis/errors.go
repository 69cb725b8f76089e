package redis

import "errors"

var (
	ErrHostRequired = errors.New("redis: host is required")
	ErrInvalidPort  = errors.New("redis: port must be between 1 and 65535")
	// ErrNil is returned by Get when the key does not exist.
	ErrNil = errors.New("redis: key does not exist")
)
