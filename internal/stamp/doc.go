// Package stamp implements the tag-selection and identifier-assignment engine.
//
// The engine decides which elements of a parsed HTML tree qualify for an id
// attribute (Filter), produces unique values for them (Generator + Registry),
// and mutates the tree in place (Assigner, Stamper). It consumes and produces
// only in-memory structures; parsing, encoding, and file I/O live in the
// document, walker, and pipeline packages.
package stamp
