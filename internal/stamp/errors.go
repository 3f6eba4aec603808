package stamp

import "errors"

// Engine errors.
//
// Design decision: We use package-level sentinel errors rather than creating
// new error instances at each failure site. This allows callers to use
// errors.Is() for programmatic handling while call sites add context with
// fmt.Errorf("%w").
var (
	// ErrGenerationExhausted is returned when the bounded retry loop could not
	// find an identifier that is free in the registry. With the default UUID
	// generator this is practically unreachable; it guards against
	// misconfigured deterministic generators that emit a small value space.
	ErrGenerationExhausted = errors.New("identifier generation exhausted: retry ceiling reached without finding a free id")

	// ErrNilGenerator is returned when an Assigner is constructed without a
	// generation strategy. A nil generator would panic inside the retry loop,
	// so we fail fast at construction time instead.
	ErrNilGenerator = errors.New("nil generator: an identifier generation strategy is required")
)
