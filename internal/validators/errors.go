package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptySyncRequest     = errors.New("sync request is empty")
	ErrUnknownSyncType      = errors.New("sync type must be one of FULL, REQUEST or REPLY")
	ErrUnknownScopeCategory = errors.New("unknown category in sync scope")

	ErrReadOnlyCategory = errors.New("category cannot be created through sync")
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidField     = errors.New("field has an invalid value")
)
