package domain

import "errors"

// Error kinds shared across the domain, katago, symmetry and orchestrator
// packages (spec.md §7). Go has no exception hierarchy, so these are
// sentinel errors checked with errors.Is, wrapped with fmt.Errorf for
// context -- the idiomatic substitute for the original's bare Exception
// raises (spec.md §9, "Exceptions for control flow").
var (
	// ErrConfigInvalid: a required path is missing, or a numeric bound was
	// violated. Raised by the (out-of-scope) config-loading collaborator;
	// exported so callers can errors.Is-switch on it uniformly.
	ErrConfigInvalid = errors.New("config invalid")

	// ErrSGFParse: the upstream SGF parser produced no main variation, or
	// required headers are missing. Raised by the (out-of-scope) SGF
	// collaborator; exported for the same reason as ErrConfigInvalid.
	ErrSGFParse = errors.New("sgf parse")

	// ErrIllegalMove: a replay asked to play on a non-empty, or
	// currently-unplayable, intersection.
	ErrIllegalMove = errors.New("illegal move")

	// ErrEngineLaunch: the child process could not start, or the
	// readiness sentinel was never observed.
	ErrEngineLaunch = errors.New("engine launch")

	// ErrEngineProtocol: a response failed to decode against the schema,
	// or an unrecognized move label was encountered.
	ErrEngineProtocol = errors.New("engine protocol")

	// ErrNotReady: a write was attempted before readiness, or after kill.
	ErrNotReady = errors.New("not ready")

	// ErrOutOfRange: a Coordinate was built from off-board values.
	ErrOutOfRange = errors.New("out of range")
)
