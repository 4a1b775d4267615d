package postgres

import (
	"testing"

	"lapmatch/internal/domain/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredicateCondition_Equals(t *testing.T) {
	cond, args := predicateCondition(query.Equals(query.FieldTouchscreen, true))

	assert.Equal(t, "touchscreen = ?", cond)
	assert.Equal(t, []any{true}, args)
}

func TestPredicateCondition_InWrapsValuesForExpansion(t *testing.T) {
	values := []any{"dell", "asus"}
	cond, args := predicateCondition(query.In(query.FieldBrand, values))

	assert.Equal(t, "brand IN ?", cond)
	// The value slice is passed as a single argument so the driver expands it.
	require.Len(t, args, 1)
	assert.Equal(t, values, args[0])
}

func TestPredicateCondition_EmptyInMatchesNothing(t *testing.T) {
	cond, args := predicateCondition(query.In(query.FieldBrand, nil))

	assert.Equal(t, "1 = 0", cond)
	assert.Nil(t, args)
}

func TestPredicateCondition_Range(t *testing.T) {
	tests := []struct {
		name     string
		min, max *float64
		wantCond string
		wantArgs []any
	}{
		{"both bounds", query.Float(500), query.Float(1500), "price_current >= ? AND price_current <= ?", []any{500.0, 1500.0}},
		{"min only", query.Float(500), nil, "price_current >= ?", []any{500.0}},
		{"max only", nil, query.Float(1500), "price_current <= ?", []any{1500.0}},
		{"open", nil, nil, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, args := predicateCondition(query.Range(query.FieldPrice, tt.min, tt.max))
			assert.Equal(t, tt.wantCond, cond)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestPredicateCondition_ContainsAny(t *testing.T) {
	cond, args := predicateCondition(query.ContainsAny(query.FieldStorage, []string{"512", "1t"}))

	assert.Equal(t, "(storage ILIKE ? OR storage ILIKE ?)", cond)
	assert.Equal(t, []any{"%512%", "%1t%"}, args)

	cond, args = predicateCondition(query.ContainsAny(query.FieldStorage, []string{"512"}))
	assert.Equal(t, "storage ILIKE ?", cond)
	assert.Equal(t, []any{"%512%"}, args)
}

func TestPredicateCondition_TextSearchesAllColumns(t *testing.T) {
	cond, args := predicateCondition(query.Text("macbook"))

	require.Len(t, args, len(searchableColumns))
	for _, arg := range args {
		assert.Equal(t, "%macbook%", arg)
	}
	assert.Equal(t, "(name ILIKE ? OR brand ILIKE ? OR model ILIKE ? OR category ILIKE ? OR processor ILIKE ? OR gpu ILIKE ?)", cond)

	cond, _ = predicateCondition(query.Text("   "))
	assert.Empty(t, cond)
}

func TestColumnFor_MapsDomainFields(t *testing.T) {
	assert.Equal(t, "price_current", columnFor(query.FieldPrice))
	assert.Equal(t, "rating_average", columnFor(query.FieldRating))
	assert.Equal(t, "backlit_keyboard", columnFor(query.FieldBacklitKeyboard))
}

func TestAnyCondition_ORsGroups(t *testing.T) {
	groups := [][]query.Predicate{
		{
			query.Equals(query.FieldRAM, 16),
			query.Range(query.FieldPrice, query.Float(700), query.Float(1300)),
		},
		{
			query.Equals(query.FieldCategory, "gaming"),
			query.Equals(query.FieldBrand, "asus"),
		},
	}

	cond, args := anyCondition(groups)

	assert.Equal(t, "((ram = ? AND price_current >= ? AND price_current <= ?) OR (category = ? AND brand = ?))", cond)
	assert.Equal(t, []any{16, 700.0, 1300.0, "gaming", "asus"}, args)
}

func TestAnyCondition_SingleGroupStaysUnwrapped(t *testing.T) {
	cond, _ := anyCondition([][]query.Predicate{{query.Equals(query.FieldBrand, "dell")}})

	assert.Equal(t, "(brand = ?)", cond)
}

func TestAnyCondition_EmptyGroupsSkipped(t *testing.T) {
	cond, args := anyCondition([][]query.Predicate{{}, nil})

	assert.Empty(t, cond)
	assert.Nil(t, args)
}

func TestOrderClause(t *testing.T) {
	assert.Equal(t, "price_current ASC", orderClause(query.Sort{Field: query.FieldPrice}))
	assert.Equal(t, "rating_average DESC", orderClause(query.Sort{Field: query.FieldRating, Direction: query.Descending}))
}
