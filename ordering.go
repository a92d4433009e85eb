package hotelpager

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Direction of a sort key.
type Direction string

const (
	DirectionASC  Direction = "ASC"
	DirectionDESC Direction = "DESC"
)

func (d Direction) Valid() bool {
	return d == DirectionASC || d == DirectionDESC
}

// OrderBy is one sort key of a list query.
type OrderBy struct {
	Column    string
	Direction Direction
}

// String renders the key as an ORDER BY term, e.g. "rooms.floor DESC".
func (o OrderBy) String() string {
	return o.Column + " " + string(o.Direction)
}

func (o OrderBy) check() error {
	switch {
	case !o.Direction.Valid():
		return fmt.Errorf("unknown sort direction '%s'", o.Direction)
	case o.Column == "":
		return fmt.Errorf("sort column is empty")
	case !lo.EveryBy([]rune(o.Column), isColumnRune):
		// The column is written into the query verbatim.
		return fmt.Errorf("sort column '%s' has characters outside [A-Za-z0-9_.\"'`]", o.Column)
	}

	return nil
}

func isColumnRune(r rune) bool {
	return r == '_' || r == '.' || r == '"' || r == '\'' || r == '`' ||
		('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}

// Orderings is an ORDER BY clause; earlier keys take precedence.
type Orderings []OrderBy

// ColumnMapping maps the sort aliases a client may send to SQL columns.
// Qualify the columns ("rooms.floor") when the list query joins tables.
type ColumnMapping = map[string]string

// ToSQLSlice renders every key, e.g. ["check_in DESC", "id ASC"].
func (o Orderings) ToSQLSlice() []string {
	return lo.Map(o, func(key OrderBy, _ int) string { return key.String() })
}

// ToSQL renders the clause body, e.g. "check_in DESC, id ASC".
func (o Orderings) ToSQL() string {
	return strings.Join(o.ToSQLSlice(), ", ")
}

// Apply adds the clause to a gorm query. Empty Orderings leave it untouched.
func (o Orderings) Apply(db *gorm.DB) *gorm.DB {
	if len(o) == 0 {
		return db
	}

	return db.Order(o.ToSQL())
}

func (o Orderings) validate() error {
	if len(o) == 0 {
		return fmt.Errorf("no sort keys")
	}

	for i, key := range o {
		if err := key.check(); err != nil {
			return fmt.Errorf("sort key #%d: %w", i+1, err)
		}
	}

	return nil
}

// UnknownSortAliasError is returned by ParseSort for an alias missing from
// the ColumnMapping. Suggestion holds the nearest known alias, if any is close.
type UnknownSortAliasError struct {
	Alias      string
	Suggestion string
}

func (e *UnknownSortAliasError) Error() string {
	if e.Suggestion == "" {
		return fmt.Sprintf("unknown sort alias '%s'", e.Alias)
	}

	return fmt.Sprintf("unknown sort alias '%s', did you mean '%s'?", e.Alias, e.Suggestion)
}

// ParseSort resolves client sort keys through mapping. A key is one of
//
//	"alias"         ascending
//	"-alias"        descending
//	"alias asc"     direction spelled out, case-insensitive
//	"alias desc"
func ParseSort(keys []string, mapping ColumnMapping) (Orderings, error) {
	ret := make(Orderings, 0, len(keys))
	for _, key := range keys {
		parsed, err := parseSortKey(key, mapping)
		if err != nil {
			return nil, err
		}

		ret = append(ret, parsed)
	}

	return ret, nil
}

func parseSortKey(key string, mapping ColumnMapping) (OrderBy, error) {
	var (
		alias     string
		direction = DirectionASC
	)

	switch fields := strings.Fields(key); len(fields) {
	case 1:
		var desc bool
		alias, desc = strings.CutPrefix(fields[0], "-")
		if desc {
			direction = DirectionDESC
		}
	case 2:
		alias, direction = fields[0], Direction(strings.ToUpper(fields[1]))
		if !direction.Valid() {
			return OrderBy{}, fmt.Errorf("sort key '%s': direction must be asc or desc", key)
		}
	default:
		return OrderBy{}, fmt.Errorf("malformed sort key '%s'", key)
	}

	column, ok := mapping[alias]
	if !ok || column == "" {
		return OrderBy{}, &UnknownSortAliasError{Alias: alias, Suggestion: suggestAlias(alias, lo.Keys(mapping))}
	}

	return OrderBy{Column: column, Direction: direction}, nil
}

// suggestAlias returns the known alias nearest to input by edit distance, or
// "" when none is within half of input's length plus one. Ties go to the
// alphabetically first alias.
func suggestAlias(input string, known []string) string {
	slices.Sort(known)

	best, bestDist := "", len([]rune(input))/2+2
	for _, alias := range known {
		if dist := levenshtein([]rune(input), []rune(alias)); dist < bestDist {
			best, bestDist = alias, dist
		}
	}

	return best
}
