package core

// DialectConfig holds the static configuration for a SQL dialect.
// This is pure data.
//
// The runtime behavior (override handlers) lives in pkg/dialect.Dialect,
// which embeds this config.
type DialectConfig struct {
	// Name is the dialect identifier (e.g., "access", "postgres")
	Name string

	// Identifiers defines quoting rules
	Identifiers IdentifierConfig

	// Placeholder defines how query parameters are formatted
	Placeholder PlaceholderStyle

	// Pagination defines how skip/take render and which shapes are allowed
	Pagination PaginationConfig

	// EmptyProjection is the placeholder column rendered for an empty
	// projection ("1" for the base dialect, "0" for Access).
	EmptyProjection string

	// ConcatOperator joins strings ("||", "+", "&"). Empty means the
	// dialect uses the CONCAT() function instead.
	ConcatOperator string

	// LikeEscape controls how operands of StartsWith, EndsWith and Contains
	// are escaped inside the LIKE pattern.
	LikeEscape LikeEscape

	// Operators overrides the default spelling of binary operators.
	Operators map[BinaryOp]string

	// Functions maps each supported method kind to its rendering.
	// A kind missing from the table is unsupported by the dialect.
	Functions map[MethodKind]FunctionDef

	// CrossJoinKeyword renders cross joins as "CROSS JOIN" instead of ", ".
	CrossJoinKeyword bool

	// NativeBooleans means a value can be used directly as a condition.
	// Without it, a value in predicate context renders "<value> <> 0".
	NativeBooleans bool

	// DistinctAggregates allows COUNT(DISTINCT x) and friends.
	DistinctAggregates bool

	// TrueLiteral and FalseLiteral render inline boolean constants.
	TrueLiteral  string
	FalseLiteral string

	// Keywords are reserved words that must be quoted when used as identifiers
	Keywords []string
}

// PlaceholderStyle defines how query parameters are formatted.
type PlaceholderStyle int

const (
	// PlaceholderQuestion uses ? for all parameters (DuckDB, MySQL, SQLite, Access).
	PlaceholderQuestion PlaceholderStyle = iota
	// PlaceholderDollar uses $1, $2, etc. for parameters (PostgreSQL).
	PlaceholderDollar
	// PlaceholderAtP uses @p1, @p2, etc. for parameters (SQL Server).
	PlaceholderAtP
)

// String returns the string representation of PlaceholderStyle.
func (s PlaceholderStyle) String() string {
	switch s {
	case PlaceholderQuestion:
		return "?"
	case PlaceholderDollar:
		return "$n"
	case PlaceholderAtP:
		return "@pn"
	default:
		return "unknown"
	}
}

// IdentifierConfig defines how identifiers are quoted.
type IdentifierConfig struct {
	Quote    string // Quote character: ", `, [
	QuoteEnd string // End quote character (usually same as Quote, ] for [)
	Escape   string // Escape sequence for QuoteEnd inside an identifier: "", ``, ]]
}

// PaginationStyle selects the syntax used for skip and take.
type PaginationStyle int

const (
	// PaginationOffsetFetch renders OFFSET n ROWS FETCH NEXT m ROWS ONLY.
	PaginationOffsetFetch PaginationStyle = iota
	// PaginationLimitOffset renders LIMIT m OFFSET n.
	PaginationLimitOffset
	// PaginationLimitComma renders LIMIT n, m (MySQL).
	PaginationLimitComma
	// PaginationTop renders SELECT TOP m and cannot skip.
	PaginationTop
	// PaginationTopOffsetFetch renders TOP (m) for take alone and
	// OFFSET/FETCH once a skip is present (SQL Server).
	PaginationTopOffsetFetch
)

// String returns the string representation of PaginationStyle.
func (s PaginationStyle) String() string {
	switch s {
	case PaginationOffsetFetch:
		return "offset-fetch"
	case PaginationLimitOffset:
		return "limit-offset"
	case PaginationLimitComma:
		return "limit-comma"
	case PaginationTop:
		return "top"
	case PaginationTopOffsetFetch:
		return "top-offset-fetch"
	default:
		return "unknown"
	}
}

// PaginationConfig describes a dialect's pagination capabilities.
type PaginationConfig struct {
	Style PaginationStyle

	// SupportsOffset is false when the dialect cannot skip rows at all.
	SupportsOffset bool

	// UnorderedSkip allows skip without an ORDER BY.
	UnorderedSkip bool

	// OpenEndedSkip allows skip without take.
	OpenEndedSkip bool

	// PagedSubqueryOrdering means a subquery may only carry ORDER BY when
	// it also takes or skips. Other subqueries are rendered unordered.
	PagedSubqueryOrdering bool

	// LimitAll is the LIMIT operand used for an open-ended skip in the
	// LIMIT styles ("-1", "ALL", "NULL"). Empty omits the LIMIT keyword.
	LimitAll string
}

// FunctionDef describes how a method call renders.
//
// Template is literal SQL with operand references: {n} renders operand n
// and {*} renders every operand separated by ", ". A [a|b] section emits a
// when every operand it references exists, and b (which may be empty)
// otherwise. For example, "SUBSTRING({0}, {1} + 1[, {2}])" or
// "ROUND({0}, [{1}|0])".
type FunctionDef struct {
	Template string

	// MaxOperands caps the operand count; 0 means no cap.
	MaxOperands int

	// Compound marks templates that are not a single function call, so
	// the translator parenthesizes them when used as an operand.
	Compound bool
}

// Fn returns a FunctionDef for a simple template.
func Fn(template string) FunctionDef { return FunctionDef{Template: template} }
