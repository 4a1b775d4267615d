package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_EmptySelectionYieldsOnlyDefaultLimit(t *testing.T) {
	q := Build(FilterSelection{})

	assert.Empty(t, q.Must)
	assert.Empty(t, q.Any)
	assert.Equal(t, defaultFilterLimit, q.Limit)
}

func TestBuild_LowercasesBrandsWithoutValidating(t *testing.T) {
	q := Build(FilterSelection{Brands: []string{"Dell", " ASUS ", "Framework"}})

	require.Len(t, q.Must, 1)
	pred := q.Must[0]
	assert.Equal(t, FieldBrand, pred.Field)
	assert.Equal(t, OpIn, pred.Op)
	// Unknown brands stay in the clause; they simply match no rows.
	assert.Equal(t, []any{"dell", "asus", "framework"}, pred.Values)
}

func TestBuild_PriceRange(t *testing.T) {
	q := Build(FilterSelection{PriceRange: &PriceRange{Min: Float(500), Max: Float(1500)}})

	require.Len(t, q.Must, 1)
	pred := q.Must[0]
	assert.Equal(t, FieldPrice, pred.Field)
	assert.Equal(t, OpRange, pred.Op)
	require.NotNil(t, pred.Min)
	require.NotNil(t, pred.Max)
	assert.Equal(t, 500.0, *pred.Min)
	assert.Equal(t, 1500.0, *pred.Max)

	// A price range with both bounds open produces no clause.
	q = Build(FilterSelection{PriceRange: &PriceRange{}})
	assert.Empty(t, q.Must)
}

func TestBuild_FeatureFlagsOnlyWhenTrue(t *testing.T) {
	q := Build(FilterSelection{Features: FeatureSelection{Touchscreen: true, BacklitKeyboard: true}})

	require.Len(t, q.Must, 2)
	assert.Equal(t, Equals(FieldTouchscreen, true), q.Must[0])
	assert.Equal(t, Equals(FieldBacklitKeyboard, true), q.Must[1])
}

func TestBuild_CombinesClausesAcrossMembers(t *testing.T) {
	q := Build(FilterSelection{
		Brands:     []string{"apple"},
		Categories: []string{"Ultrabook"},
		RAM:        []int{16, 32},
		MinRating:  Float(4.0),
		Search:     "  macbook  ",
		Limit:      10,
	})

	require.Len(t, q.Must, 5)
	assert.Equal(t, FieldBrand, q.Must[0].Field)
	assert.Equal(t, []any{"ultrabook"}, q.Must[1].Values)
	assert.Equal(t, []any{16, 32}, q.Must[2].Values)
	assert.Equal(t, FieldRating, q.Must[3].Field)
	assert.Nil(t, q.Must[3].Max)
	assert.Equal(t, OpText, q.Must[4].Op)
	assert.Equal(t, "macbook", q.Must[4].Text)
	assert.Equal(t, 10, q.Limit)
}

func TestNormalizeSpecToken(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"512 GB SSD", "512ssd"},
		{"512GB", "512"},
		{"1TB", "1"},
		{"Intel Core i7", "intelcorei7"},
		{"  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSpecToken(tt.label))
		})
	}
}

func TestBuild_StorageTokensDropEmpties(t *testing.T) {
	q := Build(FilterSelection{Storage: []string{"512GB SSD", "   ", "1 TB"}})

	require.Len(t, q.Must, 1)
	pred := q.Must[0]
	assert.Equal(t, OpContainsAny, pred.Op)
	assert.Equal(t, []string{"512ssd", "1"}, pred.Tokens)
}
