// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Analysis is the predicate function for analysis builders.
type Analysis func(*sql.Selector)

// Contract is the predicate function for contract builders.
type Contract func(*sql.Selector)

// ExtractedField is the predicate function for extractedfield builders.
type ExtractedField func(*sql.Selector)
