package entity

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound means the referenced user has no profile. Callers surface
	// it as "please register first", never as a process fault.
	ErrNotFound = errors.New("profile not found")

	// ErrAlreadyExists is returned by explicit create paths; registration
	// itself upserts and never returns it.
	ErrAlreadyExists = errors.New("profile already exists")

	// ErrStorageUnavailable wraps driver-level failures at the repository
	// boundary. The core never retries; that is the storage layer's job.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrCorruptMatchData means the match edge table holds an odd degree
	// sum, which cannot happen when both directions are written atomically.
	ErrCorruptMatchData = errors.New("match edges out of balance")

	// ErrNoSession means a quiz answer arrived with no round in progress.
	ErrNoSession = errors.New("no active quiz session")

	// ErrNotMatched rejects chat between profiles without a mutual match.
	ErrNotMatched = errors.New("users are not matched")
)

// ValidationError carries per-field problems collected before any store
// mutation. It is expected control flow, reported verbatim to the caller.
type ValidationError struct {
	Problems map[string][]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Problems))
	for field := range e.Problems {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}
