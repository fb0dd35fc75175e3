package errors

import "errors"

var (
	ErrColumnNotExist = errors.New("column not exist")
	ErrInvalidPath    = errors.New("invalid path")
	ErrNoEndpoint     = errors.New("no endpoint in uri")
)
