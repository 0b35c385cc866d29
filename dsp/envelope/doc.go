// Package envelope provides a one-pole attack/release amplitude follower.
//
// A [Follower] rectifies its input and tracks the level with separate
// attack and release time constants, producing a [0, 1] control signal
// suitable for modulating filter parameters. The exponential coefficients
// are precomputed whenever a time constant or the sample rate changes, so
// the per-sample path contains no transcendental calls.
package envelope
