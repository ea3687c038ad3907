// Package all registers every built-in dialect.
//
// Import it for side effects:
//
//	import _ "github.com/leapstack-labs/leapquery/pkg/dialects/all"
package all

import (
	// Each package registers its dialect in init.
	_ "github.com/leapstack-labs/leapquery/pkg/dialects/access"
	_ "github.com/leapstack-labs/leapquery/pkg/dialects/ansi"
	_ "github.com/leapstack-labs/leapquery/pkg/dialects/databricks"
	_ "github.com/leapstack-labs/leapquery/pkg/dialects/duckdb"
	_ "github.com/leapstack-labs/leapquery/pkg/dialects/mssql"
	_ "github.com/leapstack-labs/leapquery/pkg/dialects/mysql"
	_ "github.com/leapstack-labs/leapquery/pkg/dialects/postgres"
	_ "github.com/leapstack-labs/leapquery/pkg/dialects/snowflake"
	_ "github.com/leapstack-labs/leapquery/pkg/dialects/sqlite"
)
