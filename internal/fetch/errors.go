package fetch

import (
	"errors"
	"fmt"
)

// Kind classifies why a fetch failed.
type Kind int

const (
	// KindTransport covers network, DNS and timeout failures, plus an
	// open circuit breaker.
	KindTransport Kind = iota

	// KindUpstream covers non-2xx responses and malformed payloads.
	KindUpstream

	// KindNoMatch means the upstream answered but had nothing for the
	// requested place (zero geocoding results, zero stations).
	KindNoMatch
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindUpstream:
		return "upstream"
	case KindNoMatch:
		return "no match"
	default:
		return "unknown"
	}
}

// Error is the failure arm of a fetch. A nil error from a fetcher is the
// success arm; a non-nil *Error carries the reason the layer is skipped
// for the current cycle.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s failure: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrKind returns the failure kind of err, or ok=false if err is not a
// fetch failure.
func ErrKind(err error) (Kind, bool) {
	var fe *Error
	if !errors.As(err, &fe) {
		return 0, false
	}
	return fe.Kind, true
}
