// Package types defines the shared data model for the Lumen query engine.
//
// The core exchanges structured values only: Candidate (a normalized,
// rankable result from a provider) and Outcome (the typed result of
// executing one). Serialization to JSON happens exclusively at the
// adapter edge.
package types
