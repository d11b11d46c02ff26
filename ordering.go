package paginator

import (
	"fmt"
	"math"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Direction defines the sort direction for the requested dataset.
type Direction string

const (
	DirectionASC  Direction = "ASC"
	DirectionDESC Direction = "DESC"
)

func (o Direction) Valid() bool {
	return o == DirectionASC || o == DirectionDESC
}

// Toggled returns the opposite direction.
func (o Direction) Toggled() Direction {
	switch o {
	case DirectionASC:
		return DirectionDESC
	case DirectionDESC:
		return DirectionASC
	default:
		panic(fmt.Errorf("cannot toggle direction '%s'", o))
	}
}

type (
	// OrderBy is the active sort pair of a listing: one column, one direction.
	OrderBy struct {
		Column    string
		Direction Direction
	}

	ColumnAlias = string

	// ColumnMapping maps external field aliases to fully qualified column
	// names. It is the closed binding at the query boundary: a field that is
	// not a key of the mapping never reaches SQL.
	ColumnMapping = map[ColumnAlias]string
)

var _availableColumnNameSymbols = append([]rune("_.'`\""), lo.AlphanumericCharset...)

// validateColumnName guards against SQL injection by restricting allowed
// characters in column names.
func validateColumnName(column string) error {
	if !lo.Every(_availableColumnNameSymbols, []rune(column)) {
		return fmt.Errorf("column name contains forbidden symbols '%s'", column)
	}

	return nil
}

func (o OrderBy) validate() error {
	if !o.Direction.Valid() {
		return fmt.Errorf("invalid ordering direction '%s'", o.Direction)
	}

	return validateColumnName(o.Column)
}

// ToSQL converts the pair to the form "<order_column> <order_direction>"
// suitable for embedding into an SQL query.
//
// Usage:
//
//	query := fmt.Sprintf("SELECT * FROM table ORDER BY %s", orderBy.ToSQL())
func (o OrderBy) ToSQL() string {
	return fmt.Sprintf("%s %s", o.Column, o.Direction)
}

// Apply applies the ordering to a gorm query.
func (o OrderBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Order(o.ToSQL())
}

// ToggleOrder implements the 3-way sort toggle of listing headers:
//
//   - current is (ASC, F) and field = F  -> (DESC, F)
//   - current is (DESC, F) and field = F -> (ASC, F)
//   - any other field, or no current order -> (ASC, field)
func ToggleOrder(current *OrderBy, field string) OrderBy {
	if current != nil && current.Column == field {
		return OrderBy{
			Column:    field,
			Direction: current.Direction.Toggled(),
		}
	}

	return OrderBy{
		Column:    field,
		Direction: DirectionASC,
	}
}

// resolveColumn maps a field alias to its column name. A nil mapping passes
// the alias through unchanged; a non-nil mapping is closed, unknown aliases
// fail with ErrUnknownField and the closest known alias as a hint.
func resolveColumn(alias ColumnAlias, columnMapping ColumnMapping) (string, error) {
	if columnMapping == nil {
		return alias, nil
	}

	columnName := columnMapping[alias]
	if columnName == "" {
		return "", fmt.Errorf("%w: '%s'. closest: '%s'", ErrUnknownField, alias, closestAlias(alias, lo.Keys(columnMapping)))
	}

	return columnName, nil
}

func closestAlias(input ColumnAlias, dataSet []ColumnAlias) ColumnAlias {
	minDist := math.MaxInt
	closest := ""

	for _, dataSetAlias := range dataSet {
		dist := levenshtein([]rune(dataSetAlias), []rune(input))
		if dist < minDist {
			minDist = dist
			closest = dataSetAlias
		}
	}

	return closest
}
