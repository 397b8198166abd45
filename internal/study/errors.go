package study

import (
	"errors"
	"fmt"

	"github.com/conorfennell/memora/internal/storage"
)

// Kind classifies an Error for callers that need to react to it, such as
// the HTTP API choosing a status code.
type Kind int

const (
	KindUnauthenticated Kind = iota + 1
	KindNotFound
	KindInvalid
	KindConflict
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "unauthenticated"
	case KindNotFound:
		return "not_found"
	case KindInvalid:
		return "invalid"
	case KindConflict:
		return "conflict"
	case KindStorage:
		return "storage"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

var (
	ErrNotAuthenticated = errors.New("user not authenticated")
	ErrCardNotFound     = errors.New("card not found")
	ErrDeckNotFound     = errors.New("deck not found")
	ErrDuplicateDeck    = errors.New("a deck with this name already exists")
	ErrInvalidDeckName  = errors.New("invalid deck name")
	ErrInvalidCard      = errors.New("invalid card")
	ErrVersionConflict  = errors.New("card was changed by another review")
)

// Error is returned by every Service operation.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of the first Error in err's chain. Errors that
// did not come from the service are KindStorage; nil has no kind.
func KindOf(err error) Kind {
	if err == nil {
		return 0
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorage
}

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func unauthenticated(op string) *Error {
	return newError(KindUnauthenticated, op, ErrNotAuthenticated)
}

func invalid(op string, err error) *Error {
	return newError(KindInvalid, op, err)
}

func invalidf(op, format string, args ...any) *Error {
	return invalid(op, fmt.Errorf(format, args...))
}

// storeError classifies a store failure. notFound is the sentinel reported
// when the store has no such row.
func storeError(op string, err error, notFound error) *Error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return newError(KindNotFound, op, fmt.Errorf("%w: %w", notFound, err))
	case errors.Is(err, storage.ErrConflict):
		return newError(KindConflict, op, fmt.Errorf("%w: %w", ErrVersionConflict, err))
	case errors.Is(err, storage.ErrDuplicate):
		return newError(KindConflict, op, fmt.Errorf("%w: %w", ErrDuplicateDeck, err))
	default:
		return newError(KindStorage, op, err)
	}
}
