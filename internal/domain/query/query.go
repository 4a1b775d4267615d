// Package query defines the structured predicate set the catalog is queried
// with. Use cases compose Query values; the persistence layer translates
// them into SQL. Keeping the predicate vocabulary here decouples the
// recommendation core from any particular store's query language.
package query

import "github.com/google/uuid"

// Field identifies a queryable attribute of a catalog item.
type Field string

// Queryable fields.
const (
	FieldBrand           Field = "brand"
	FieldCategory        Field = "category"
	FieldPrice           Field = "price"
	FieldRAM             Field = "ram"
	FieldStorage         Field = "storage"
	FieldProcessor       Field = "processor"
	FieldDisplaySize     Field = "display_size"
	FieldRating          Field = "rating"
	FieldWeight          Field = "weight"
	FieldBatteryLife     Field = "battery_life"
	FieldTouchscreen     Field = "touchscreen"
	FieldIPS             Field = "ips"
	FieldBacklitKeyboard Field = "backlit_keyboard"
	FieldFingerprint     Field = "fingerprint_scanner"
)

// Op is the comparison a predicate applies to its field.
type Op int

// Predicate operations.
const (
	// OpEquals matches rows whose field equals Value exactly.
	OpEquals Op = iota
	// OpIn matches rows whose field equals any of Values (set membership).
	OpIn
	// OpRange matches rows whose field lies within [Min, Max]; a nil bound
	// leaves that side unbounded.
	OpRange
	// OpContainsAny matches rows whose field contains any of Tokens as a
	// case-insensitive substring.
	OpContainsAny
	// OpText matches rows where the free-text query appears in any of the
	// searchable text columns.
	OpText
)

// Predicate is a single filter clause against one field.
type Predicate struct {
	Field  Field
	Op     Op
	Value  any      // OpEquals
	Values []any    // OpIn
	Min    *float64 // OpRange
	Max    *float64 // OpRange
	Tokens []string // OpContainsAny
	Text   string   // OpText
}

// Direction is a sort direction.
type Direction int

// Sort directions.
const (
	Ascending Direction = iota
	Descending
)

// Sort orders results by one field. Earlier entries sort primary.
type Sort struct {
	Field     Field
	Direction Direction
}

// Query is the full predicate set handed to the catalog store.
// Must clauses are ANDed together. Any holds alternative clause groups:
// each group is ANDed internally and the groups are ORed with each other
// (used by the similarity matcher). ExcludeIDs removes specific items
// regardless of the other clauses.
type Query struct {
	Must       []Predicate
	Any        [][]Predicate
	Sorts      []Sort
	Limit      int
	Offset     int
	ExcludeIDs []uuid.UUID
}

// Equals builds an equality predicate.
func Equals(field Field, value any) Predicate {
	return Predicate{Field: field, Op: OpEquals, Value: value}
}

// In builds a set-membership predicate.
func In(field Field, values []any) Predicate {
	return Predicate{Field: field, Op: OpIn, Values: values}
}

// Range builds an inclusive range predicate; nil bounds are open.
func Range(field Field, min, max *float64) Predicate {
	return Predicate{Field: field, Op: OpRange, Min: min, Max: max}
}

// ContainsAny builds a case-insensitive substring-membership predicate.
func ContainsAny(field Field, tokens []string) Predicate {
	return Predicate{Field: field, Op: OpContainsAny, Tokens: tokens}
}

// Text builds a free-text search predicate.
func Text(text string) Predicate {
	return Predicate{Op: OpText, Text: text}
}

// Float returns a pointer to v, for building range bounds inline.
func Float(v float64) *float64 {
	return &v
}
