package document

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// ErrUnknownEncoding is returned when the configured encoding name is not a
// recognized HTML charset (per the WHATWG encoding index).
var ErrUnknownEncoding = errors.New("unknown encoding")

// resolveEncoding maps an encoding name ("utf-8", "iso-8859-1", "shift_jis",
// ...) to its implementation.
//
// Design decision: We use the htmlindex charset table rather than ianaindex
// because the inputs are HTML files, and htmlindex resolves the label
// aliases HTML authors actually write (e.g. "latin1").
func resolveEncoding(name string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return enc, nil
}

// Parse reads an HTML document from r, decoding it from the named encoding,
// and returns the root of the parsed tree.
//
// Parsing follows x/net/html semantics: malformed markup is repaired rather
// than rejected, and fragments are normalized into a full document with
// html, head, and body elements. Parser and decoder errors are propagated
// unmodified; this package does not attempt recovery.
func Parse(r io.Reader, encodingName string) (*html.Node, error) {
	enc, err := resolveEncoding(encodingName)
	if err != nil {
		return nil, err
	}

	root, err := html.Parse(enc.NewDecoder().Reader(r))
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return root, nil
}

// Render serializes the tree rooted at root to w, encoding the output in the
// named encoding. All attributes are preserved, including injected ones.
func Render(w io.Writer, root *html.Node, encodingName string) error {
	enc, err := resolveEncoding(encodingName)
	if err != nil {
		return err
	}

	ew := enc.NewEncoder().Writer(w)
	if err := html.Render(ew, root); err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	return nil
}
