// Package ansi provides the base ANSI SQL dialect.
//
// This dialect serves as the foundation for all other SQL dialects. Dialects
// like PostgreSQL or Access extend ANSI and override the pieces that differ.
package ansi

import (
	"github.com/leapstack-labs/leapquery/pkg/dialect"
)

func init() {
	dialect.Register(ANSI)
}

// ANSI is the base ANSI SQL dialect: double-quoted identifiers, "?"
// placeholders and OFFSET ... FETCH pagination that requires ORDER BY.
var ANSI = dialect.New(Config).Build()
