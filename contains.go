package paginator

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"gorm.io/gorm/clause"
)

type (
	// tContains is a single case-insensitive substring predicate of the form
	// Contains(Column, Value).
	tContains struct {
		Column string
		Value  string
	}

	// tConjunction is a list of substring predicates joined by AND. Listing
	// filters are purely conjunctive: every active filter must match.
	tConjunction []tContains
)

// toGORMExpression converts the predicate into an SQL condition
// "LOWER(Column) LIKE ?" represented as a clause.Expression.
//
// Example:
//
//	tContains = { Column: "title", Value: "Go" }
//
// Result:
//
//	"LOWER(title) LIKE '%go%'"
func (c tContains) toGORMExpression() clause.Expression {
	sqlClause, arg := c.toSQLClause()

	return clause.Expr{
		SQL:  sqlClause,
		Vars: []any{arg},
	}
}

// toSQLClause converts the predicate to an SQL condition of the form
// "LOWER(Column) LIKE ?" with a corresponding pattern value. The value is
// lowercased and wrapped in '%' wildcards, giving substring semantics (not
// prefix/suffix).
func (c tContains) toSQLClause() (string, driver.Value) {
	return fmt.Sprintf("LOWER(%s) LIKE ?", c.Column), "%" + strings.ToLower(c.Value) + "%"
}

// toGORMExpression converts a conjunction (K1, K2, K3) into a gorm expression
// "K1 AND K2 AND K3". Returns nil for an empty conjunction: no filters means
// no WHERE condition at all.
func (c tConjunction) toGORMExpression() clause.Expression {
	andExpressions := make([]clause.Expression, 0, len(c))
	for _, cond := range c {
		andExpressions = append(andExpressions, cond.toGORMExpression())
	}

	if len(andExpressions) == 1 {
		return andExpressions[0]
	} else if len(andExpressions) > 1 {
		return clause.And(andExpressions...)
	}

	return nil
}

// toSQLClause converts a conjunction (K1, K2, K3) into an SQL condition
// "(K1 AND K2 AND K3)" with corresponding values. Returns the SQL string and
// the list of values for placeholders.
//
// Example:
//
//	tConjunction = {
//		{Column: "title", Value: "go"},
//		{Column: "author", Value: "doe"},
//	}
//
// Result:
//
//	("(LOWER(title) LIKE ? AND LOWER(author) LIKE ?)", ["%go%", "%doe%"])
func (c tConjunction) toSQLClause() (string, []driver.Value) {
	andClauses := make([]string, 0, len(c))
	andValues := make([]driver.Value, 0, len(c))

	for _, cond := range c {
		andClause, andValue := cond.toSQLClause()
		andClauses = append(andClauses, andClause)
		andValues = append(andValues, andValue)
	}

	if len(andClauses) >= 1 {
		return fmt.Sprintf("(%s)", strings.Join(andClauses, " AND ")), andValues
	}

	return "TRUE", nil
}
