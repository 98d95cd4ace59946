// Package engine owns the launcher session. It aggregates candidates
// from the registered providers, ranks them into a single ordered
// list, remembers that list, and executes entries by position.
//
// The engine is the only stateful seam between a frontend and the
// providers: Execute resolves indexes strictly against the list the
// last Search produced.
package engine
