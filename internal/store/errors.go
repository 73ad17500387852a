package store

import "errors"

// Sentinel errors returned by the stores. Callers match them with
// [errors.Is].
var (
	// ErrUnauthenticated is returned by the remote backend when the context
	// carries no user id.
	ErrUnauthenticated = errors.New("user is not authenticated")

	// ErrCorruptedStorage is returned when the local entries blob cannot be
	// decoded and a save would overwrite it.
	ErrCorruptedStorage = errors.New("local entry storage is corrupted")

	// ErrDecodingEntry is returned by the remote backend when a stored
	// payload does not decode into an entry.
	ErrDecodingEntry = errors.New("error decoding stored entry")

	// ErrLoginAlreadyExists is returned when registering a login that is
	// already taken.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when no account matches a login.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrUnsupportedDriver is returned for database drivers other than pgx
	// and sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These wrap driver errors so the
// service layer can tell storage failures from validation failures.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan entry row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan entry rows")

	// ErrEncodingEntry is returned when an entry cannot be serialized.
	ErrEncodingEntry = errors.New("error encoding entry")
)
