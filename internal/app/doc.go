// Package app wires the application together and dispatches a single
// invocation to exactly one of the encode, decode or interactive flows.
// It owns the invocation configuration, the logger setup and the narrow
// adapter interfaces the flows call through.
package app
