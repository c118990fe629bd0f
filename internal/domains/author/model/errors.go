package model

import "errors"

var (
	// ErrAuthorNotFound được map sang 404 bởi error page middleware
	ErrAuthorNotFound = errors.New("author not found")
)
