package store

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/sphere-sync/models"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when a lookup or update targets a record
	// that does not exist.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrRecordConflict is returned when a create hits a unique constraint.
	// The concrete error is a [*RecordConflictError] carrying the stored record.
	ErrRecordConflict = errors.New("record already exists")

	// ErrUserNotFound is returned when the user record of a caller is missing.
	ErrUserNotFound = errors.New("user was not found")

	// ErrStoneUIDExhausted is returned when every uid in 1..255 is taken in a sphere.
	ErrStoneUIDExhausted = errors.New("no free stone uid left in sphere")

	// ErrUnsupportedDSN is returned when the DSN matches neither Postgres nor SQLite.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingData is returned when a record body cannot be encoded to or
	// decoded from its JSON column.
	ErrEncodingData = errors.New("failed to encode record data")
)

// RecordConflictError reports a unique-constraint hit on create together with
// the record that already holds the unique values.
type RecordConflictError struct {
	Table    string
	Existing models.Record
}

func (e *RecordConflictError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrRecordConflict, e.Table, e.Existing.ID)
}

// Is makes errors.Is(err, ErrRecordConflict) hold for conflict errors.
func (e *RecordConflictError) Is(target error) bool {
	return target == ErrRecordConflict
}
