package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	ErrEmptyID          = errors.New("empty metadata id")
	ErrEmptyAddress     = errors.New("empty address")
	ErrUnreachable      = errors.New("catalog unreachable")
	ErrMalformedPayload = errors.New("malformed catalog payload")
)
