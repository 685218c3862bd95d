// Package types defines shared Go types used by both the tracker CLI and the
// server. These are the canonical in-memory representations of a workout
// summary, separate from any JSON or exposition wire format.
package types
