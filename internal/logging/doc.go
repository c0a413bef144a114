// Package logging provides a unified logging interface for the bignum
// kernel. It abstracts the underlying logging implementation so the
// dispatcher, NTT engine, and façade can log consistently across whichever
// backend a caller wires in (zerolog, the standard library, or none).
package logging
