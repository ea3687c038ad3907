// Package core defines the shared language of the LeapQuery system.
//
// This package contains:
//   - The expression node model (SelectExpression, JoinExpression, etc.)
//   - Method kinds and their arity rules
//   - Structural validation and tree walking
//   - Translation error types (UnsupportedOperationError, MalformedTreeError)
//   - Pure-data dialect configuration (DialectConfig)
//   - Adapter configuration types
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
