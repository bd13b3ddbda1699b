package domain

import "errors"

var (
	ErrResourceNotFound  = errors.New("resource not found")
	ErrQueryFailed       = errors.New("negotiator query failed")
	ErrMalformedValue    = errors.New("malformed negotiator value")
	ErrReconfigureFailed = errors.New("negotiator reconfigure failed")
)
