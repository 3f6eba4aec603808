// Package main provides the entry point for the idstamp CLI.
//
// idstamp assigns unique id attributes to HTML elements across a directory
// of files, so that automated UI tests can address elements that originally
// lacked stable identifiers.
//
// Usage:
//
//	idstamp stamp [path]
//	idstamp check [path]
//
// See --help for all available options.
package main

// main is the entry point for idstamp.
func main() {
	Execute()
}
