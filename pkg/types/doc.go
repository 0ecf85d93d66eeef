// Package types defines the data model and typed errors shared by the ROFL
// replay container decoders and the public rofl package.
//
// Design goals:
//   - A ReplayHeader is a plain value: built once per parse, never mutated.
//   - Paranoid bounds checking; never panic on malformed input.
//   - Typed errors with stable categories (io/format/unsupported) that keep
//     the failing step and region for diagnostics.
//
// This package has no dependencies beyond the standard library.
package types
