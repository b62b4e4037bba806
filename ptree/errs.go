package ptree

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidPath     = errors.New("invalid path")
	ErrMissingKey      = errors.New("no such key")
)
