package adapter

import "errors"

var (
	ErrEmptyAddress        = errors.New("empty server address")
	ErrInvalidAddress      = errors.New("address must include host and scheme")
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrGatewayTimeout      = errors.New("server timed out")
)
