package user

import (
	"errors"
)

var (
	ErrBadRequest         = errors.New("bad request")
	ErrNotFound           = errors.New("user not found")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

func IsErrBadRequest(err error) bool {
	return errors.Is(err, ErrBadRequest)
}

func IsErrNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsErrDuplicateUsername(err error) bool {
	return errors.Is(err, ErrDuplicateUsername)
}

func IsErrInvalidCredentials(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}
