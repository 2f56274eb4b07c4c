// Package db provides error types for store operations.
package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/surrealdb/surrealdb.go"
)

// Sentinel errors for store operations. Check with errors.Is.
var (
	// ErrNotFound indicates the RFP or a referenced person does not exist.
	// A conversion retried after success lands here: the winning commit
	// deleted the RFP.
	ErrNotFound = errors.New("not found")

	// ErrTransactionConflict indicates concurrent transactions touched the
	// same records. Callers re-check state before surfacing it.
	ErrTransactionConflict = errors.New("transaction conflict")
)

// wrapQueryError inspects a SurrealDB error and wraps it with the matching
// sentinel. The "not found" messages come from THROW statements inside our
// conversion transaction. Returns the original error when it matches no
// known pattern.
func wrapQueryError(err error) error {
	if err == nil {
		return nil
	}

	var queryErr *surrealdb.QueryError
	if errors.As(err, &queryErr) {
		msg := queryErr.Message
		if strings.Contains(msg, "rfp not found") || strings.Contains(msg, "person not found") {
			return fmt.Errorf("%w: %s", ErrNotFound, msg)
		}
		if strings.Contains(msg, "Transaction conflict") {
			return fmt.Errorf("%w: %s", ErrTransactionConflict, msg)
		}
	}

	return err
}
