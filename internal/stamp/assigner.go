package stamp

import (
	"fmt"

	"golang.org/x/net/html"
)

// idAttr is the attribute the engine reads and writes.
const idAttr = "id"

// DefaultMaxRetries bounds the generation-collision loop. The registry check
// is what guarantees uniqueness; the ceiling only turns a pathological
// generator (tiny value space, stuck counter) into an error instead of an
// infinite loop.
const DefaultMaxRetries = 1000

// Assigner produces a unique identifier for one element and attaches it.
// It holds the generation strategy and the configured prefix/suffix; the
// registry is passed per call so one Assigner can serve multiple scopes.
//
// The Assigner does not check eligibility. Policy (which tags qualify) lives
// in Filter; mechanism (minting and attaching a value) lives here. Callers
// are expected to consult Filter.Eligible first.
type Assigner struct {
	gen        Generator
	prefix     string
	suffix     string
	maxRetries int
}

// AssignerOption configures an Assigner.
type AssignerOption func(*Assigner)

// WithAffix sets the prefix and suffix composed around every generated value.
func WithAffix(prefix, suffix string) AssignerOption {
	return func(a *Assigner) {
		a.prefix = prefix
		a.suffix = suffix
	}
}

// WithMaxRetries overrides the generation retry ceiling.
// Values below 1 are ignored.
func WithMaxRetries(n int) AssignerOption {
	return func(a *Assigner) {
		if n >= 1 {
			a.maxRetries = n
		}
	}
}

// NewAssigner creates an Assigner using the given generation strategy.
// It returns ErrNilGenerator if gen is nil.
func NewAssigner(gen Generator, opts ...AssignerOption) (*Assigner, error) {
	if gen == nil {
		return nil, ErrNilGenerator
	}

	a := &Assigner{
		gen:        gen,
		maxRetries: DefaultMaxRetries,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Result describes the outcome of assigning an identifier to one element.
type Result struct {
	// ID is the element's final identifier value.
	ID string

	// Generated is true when the value was minted by this call, false when
	// the element already carried an id that was preserved.
	Generated bool
}

// Assign ensures the element carries a unique id attribute.
//
// If the element already has a non-empty id, that value is registered as
// claimed and returned with Generated=false; hand-authored identifiers are
// never overwritten. Otherwise Assign composes prefix + generated + suffix
// candidates until one is free in the registry, attaches it to the element,
// and returns it with Generated=true.
//
// Assign mutates the element and the registry. It returns
// ErrGenerationExhausted (wrapped) if the retry ceiling is reached.
func (a *Assigner) Assign(n *html.Node, reg *Registry) (Result, error) {
	if existing := getAttr(n, idAttr); existing != "" {
		reg.Add(existing)
		return Result{ID: existing, Generated: false}, nil
	}

	for i := 0; i < a.maxRetries; i++ {
		candidate := a.prefix + a.gen.Generate() + a.suffix
		if !reg.Claim(candidate) {
			continue
		}
		setAttr(n, idAttr, candidate)
		return Result{ID: candidate, Generated: true}, nil
	}

	return Result{}, fmt.Errorf("element <%s> after %d attempts: %w", n.Data, a.maxRetries, ErrGenerationExhausted)
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// setAttr sets an attribute on an HTML node, replacing an existing value.
func setAttr(n *html.Node, key, val string) {
	for i, attr := range n.Attr {
		if attr.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
