// Package document wraps HTML parsing and serialization with configurable
// character encodings. It is the bridge between raw file bytes and the
// element tree the stamp engine mutates.
package document
