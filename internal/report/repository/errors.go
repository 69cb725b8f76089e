package repository

import "errors"

var (
	ErrChannelNotFound  = errors.New("channel not found")
	ErrQueryFailed      = errors.New("data store query failed")
	ErrInvalidDimension = errors.New("invalid grouping dimension")
)
