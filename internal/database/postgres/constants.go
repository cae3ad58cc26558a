package postgres

// PostgreSQL error codes
const (
	// codeUniqueViolation is SQLSTATE 23505, raised when an insert hits a
	// uniqueness constraint. For historical periods this is the expected
	// duplicate-archive signal, not a failure.
	codeUniqueViolation = "23505"
)
