// Package bowling owns ten-pin scoring state.
//
// Ownership boundary:
// - per-ball pinfall validation
//
// - strike/spare detection
//
// - deferred frame score resolution
//
// Lifecycle order:
// - competitor -> frame (lazy, on first ball) -> resolved score
//
// - a frame score stays pending until the balls its bonus depends on are bowled.
//
// - resolved scores never change.
//
// The package never logs and never retries. Callers classify failures with
// errors.Is against the sentinel errors and decide whether to re-prompt.
package bowling
