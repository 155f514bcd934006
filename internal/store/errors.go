package store

import "errors"

// Sentinel errors returned by the object-store engine and repositories.
// Callers should use [errors.Is] to match against these values.
var (
	// ErrStorage wraps every failure of the underlying database engine.
	ErrStorage = errors.New("storage error")

	// ErrNotFound is returned when a key does not exist in an object store.
	ErrNotFound = errors.New("record not found")

	// ErrKeyExists is returned by Add when the key is already present.
	ErrKeyExists = errors.New("key already exists")

	// ErrVersionConflict is returned when an optimistic-locking check fails:
	// the record was modified after the caller read it.
	ErrVersionConflict = errors.New("record version conflict occurred")

	// ErrUnknownObjectStore is returned for store names that are not part of
	// the schema or were not declared when the transaction was opened.
	ErrUnknownObjectStore = errors.New("unknown object store")

	// ErrTransactionReadOnly is returned when a write is attempted inside a
	// read-only transaction.
	ErrTransactionReadOnly = errors.New("transaction is read-only")
)

// Low-level database operation errors. These are wrapped together with
// [ErrStorage] when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open
	// transaction fails.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrEncodingValue is returned when a value cannot be (de)serialized.
	ErrEncodingValue = errors.New("failed to encode value")
)
