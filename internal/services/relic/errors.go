package relic

import (
	"errors"
	"fmt"
)

var (
	// ErrConnection is returned when no database connection could be acquired.
	ErrConnection = errors.New("database connection failed")
	// ErrEmptyQuery is returned when the search term is blank after trimming.
	ErrEmptyQuery = errors.New("no search query provided")
)

// QueryError wraps a failure raised while a statement was running on an acquired connection.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("database query failed: %v", e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }
