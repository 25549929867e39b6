// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction and comparison.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles finite-only validation in New and Set.
	// Off by default: NaN/Inf are stored and propagate per IEEE-754.
	DefaultValidateNaNInf = false

	// DefaultAbsTol is the absolute tolerance used by EqualApprox.
	DefaultAbsTol = 1e-9

	// DefaultRelTol is the relative tolerance used by EqualApprox.
	DefaultRelTol = 1e-9
)

const panicToleranceInvalid = "matrix: WithTolerance: abs and rel must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly.
//
// Every entry point accepts any Option and reads only the fields it needs;
// the rest are ignored without error:
//   - New, NewZeros, NewIdentity, FromGonum read the NaN/Inf policy
//     (WithValidateNaNInf / WithNoValidateNaNInf).
//   - EqualApprox reads the tolerances (WithTolerance).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	validateNaNInf bool    // DefaultValidateNaNInf
	absTol         float64 // >= 0; DefaultAbsTol
	relTol         float64 // >= 0; DefaultRelTol
}

// WithValidateNaNInf makes New and Set reject NaN and ±Inf with ErrNaNInf.
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf restores the default permissive policy.
// Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithTolerance sets the absolute and relative tolerances used by EqualApprox.
// Implementation:
//   - Stage 1: validate abs and rel are finite and ≥ 0.
//   - Stage 2: return a setter writing both into Options.
//
// Errors:
//   - Panics with a stable message when either value is invalid.
//
// Notes:
//   - Two entries x, y compare equal when |x-y| ≤ abs, or when
//     |x-y| / max(|x|,|y|) ≤ rel.
func WithTolerance(abs, rel float64) Option {
	if !validTol(abs) || !validTol(rel) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) {
		o.absTol = abs
		o.relTol = rel
	}
}

// validTol reports whether t is a usable tolerance.
func validTol(t float64) bool {
	return !math.IsNaN(t) && !math.IsInf(t, 0) && t >= 0
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
		absTol:         DefaultAbsTol,
		relTol:         DefaultRelTol,
	}
}

// gatherOptions applies user options over defaults in call order (last wins).
// Nil options are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
