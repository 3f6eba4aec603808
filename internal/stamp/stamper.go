package stamp

import (
	"fmt"

	"golang.org/x/net/html"
)

// Stamper applies the engine to a whole document tree: it walks elements in
// document order, consults the Filter, and lets the Assigner mutate each
// eligible element.
type Stamper struct {
	filter   *Filter
	assigner *Assigner
}

// NewStamper creates a Stamper from a filter and an assigner.
func NewStamper(filter *Filter, assigner *Assigner) *Stamper {
	return &Stamper{filter: filter, assigner: assigner}
}

// Stats summarizes what one Stamp call did to a document.
type Stats struct {
	// Elements is the number of element nodes visited.
	Elements int

	// Eligible is the number of elements that passed the filter.
	Eligible int

	// Assigned is the number of elements that received a freshly generated id.
	Assigned int

	// Preserved is the number of eligible elements that already carried an id.
	Preserved int

	// Missing is the number of eligible elements lacking an id. Populated by
	// Audit; always zero after a successful Stamp.
	Missing int
}

// Stamp assigns identifiers to every eligible element in the tree rooted at
// root, registering uniqueness in reg.
//
// The work happens in two passes. The first pass seeds the registry with
// every pre-existing non-empty id value in the document, eligible or not, so
// that generated values can never collide with hand-authored ones later in
// the same document. The second pass walks in document order and assigns to
// each eligible element.
//
// Stamp mutates the tree and the registry. On ErrGenerationExhausted it
// aborts the document and returns the error; the tree may be partially
// stamped at that point and should not be written back.
func (s *Stamper) Stamp(root *html.Node, reg *Registry) (Stats, error) {
	walkElements(root, func(n *html.Node) {
		if id := getAttr(n, idAttr); id != "" {
			reg.Add(id)
		}
	})

	var stats Stats
	var assignErr error
	walkElements(root, func(n *html.Node) {
		if assignErr != nil {
			return
		}
		stats.Elements++
		if !s.filter.Eligible(n.Data) {
			return
		}
		stats.Eligible++

		res, err := s.assigner.Assign(n, reg)
		if err != nil {
			assignErr = err
			return
		}
		if res.Generated {
			stats.Assigned++
		} else {
			stats.Preserved++
		}
	})
	if assignErr != nil {
		return stats, fmt.Errorf("stamping aborted: %w", assignErr)
	}
	return stats, nil
}

// Audit reports what Stamp would do without mutating anything: how many
// eligible elements already carry an id and how many lack one. It still
// seeds reg with pre-existing ids so that a run-scoped registry stays
// accurate across audited files.
func (s *Stamper) Audit(root *html.Node, reg *Registry) Stats {
	var stats Stats
	walkElements(root, func(n *html.Node) {
		stats.Elements++
		id := getAttr(n, idAttr)
		if id != "" {
			reg.Add(id)
		}
		if !s.filter.Eligible(n.Data) {
			return
		}
		stats.Eligible++
		if id != "" {
			stats.Preserved++
		} else {
			stats.Missing++
		}
	})
	return stats
}

// walkElements visits every element node under root in document order.
// Document order matters: given a deterministic generator, assignment output
// is then deterministic too.
func walkElements(root *html.Node, fn func(*html.Node)) {
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			fn(n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
}
