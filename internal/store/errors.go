package store

import "errors"

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	ErrExecutingQuery = errors.New("error executing sql query")

	ErrBeginningTransaction = errors.New("failed to begin transaction")

	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	ErrScanningRow = errors.New("failed to scan metadata row")

	// ErrDecodingPayload is returned when a cached payload is not valid
	// metadata JSON.
	ErrDecodingPayload = errors.New("failed to decode cached metadata")
)
