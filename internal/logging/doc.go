// Package logging provides a unified logging interface for the resource
// sampler. It abstracts the underlying logging implementation, allowing
// consistent diagnostics across components while supporting multiple backends.
//
// Diagnostics always go to a side channel (stderr by default), never to the
// primary sample output stream.
package logging
