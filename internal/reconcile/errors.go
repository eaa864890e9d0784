package reconcile

import "errors"

var (
	ErrDuplicateID         = errors.New("duplicate record id in result set")
	ErrUnresolvedReference = errors.New("unresolved reference to a local id")
	ErrUnknownCategory     = errors.New("unknown category")
	ErrUnknownRole         = errors.New("unknown access role")
	ErrReadingPermissions  = errors.New("error reading permissions file")
)
