package query

import (
	"strings"
	"unicode"
)

const defaultFilterLimit = 50

// PriceRange is an inclusive price band; nil bounds are open.
type PriceRange struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// FeatureSelection holds the feature flags a user can filter on. Only flags
// set to true produce a clause; false means "don't care", not "must lack".
type FeatureSelection struct {
	Touchscreen        bool `json:"touchscreen"`
	IPS                bool `json:"ips"`
	BacklitKeyboard    bool `json:"backlit_keyboard"`
	FingerprintScanner bool `json:"fingerprint_scanner"`
}

// FilterSelection is the raw set of catalog filters a user picked. Each
// non-empty member becomes one clause; values within a member are ORed and
// clauses across members are ANDed.
type FilterSelection struct {
	Brands       []string         `json:"brands"`
	Categories   []string         `json:"categories"`
	PriceRange   *PriceRange      `json:"price_range"`
	RAM          []int            `json:"ram"`
	Storage      []string         `json:"storage"`
	Processors   []string         `json:"processors"`
	DisplaySizes []float64        `json:"display_sizes"`
	MinRating    *float64         `json:"min_rating"`
	Features     FeatureSelection `json:"features"`
	Search       string           `json:"search"`
	Limit        int              `json:"limit"`
}

// Build translates the filter selection into a structured Query.
//
// Brand/category values are lowercased but never validated against the
// closed enumerations: an unknown value stays in the membership clause and
// matches nothing, so a bogus filter narrows results instead of failing
// the whole request.
func Build(sel FilterSelection) Query {
	q := Query{Limit: sel.Limit}
	if q.Limit <= 0 {
		q.Limit = defaultFilterLimit
	}

	if len(sel.Brands) > 0 {
		q.Must = append(q.Must, In(FieldBrand, lowered(sel.Brands)))
	}

	if len(sel.Categories) > 0 {
		q.Must = append(q.Must, In(FieldCategory, lowered(sel.Categories)))
	}

	if sel.PriceRange != nil && (sel.PriceRange.Min != nil || sel.PriceRange.Max != nil) {
		q.Must = append(q.Must, Range(FieldPrice, sel.PriceRange.Min, sel.PriceRange.Max))
	}

	if len(sel.RAM) > 0 {
		values := make([]any, 0, len(sel.RAM))
		for _, ram := range sel.RAM {
			values = append(values, ram)
		}
		q.Must = append(q.Must, In(FieldRAM, values))
	}

	if tokens := NormalizeSpecTokens(sel.Storage); len(tokens) > 0 {
		q.Must = append(q.Must, ContainsAny(FieldStorage, tokens))
	}

	if tokens := NormalizeSpecTokens(sel.Processors); len(tokens) > 0 {
		q.Must = append(q.Must, ContainsAny(FieldProcessor, tokens))
	}

	if len(sel.DisplaySizes) > 0 {
		values := make([]any, 0, len(sel.DisplaySizes))
		for _, size := range sel.DisplaySizes {
			values = append(values, size)
		}
		q.Must = append(q.Must, In(FieldDisplaySize, values))
	}

	if sel.MinRating != nil {
		q.Must = append(q.Must, Range(FieldRating, sel.MinRating, nil))
	}

	q.Must = append(q.Must, featurePredicates(sel.Features)...)

	if search := strings.TrimSpace(sel.Search); search != "" {
		q.Must = append(q.Must, Text(search))
	}

	return q
}

func featurePredicates(features FeatureSelection) []Predicate {
	var preds []Predicate
	if features.Touchscreen {
		preds = append(preds, Equals(FieldTouchscreen, true))
	}
	if features.IPS {
		preds = append(preds, Equals(FieldIPS, true))
	}
	if features.BacklitKeyboard {
		preds = append(preds, Equals(FieldBacklitKeyboard, true))
	}
	if features.FingerprintScanner {
		preds = append(preds, Equals(FieldFingerprint, true))
	}

	return preds
}

// NormalizeSpecTokens lowercases spec filter labels, strips GB/TB unit
// suffixes and every non-alphanumeric character. Stored specification text
// and user-chosen filter labels rarely agree on formatting ("512 GB SSD"
// vs "512GB"); matching on the normalized token avoids false negatives.
func NormalizeSpecTokens(raw []string) []string {
	tokens := make([]string, 0, len(raw))
	for _, label := range raw {
		token := NormalizeSpecToken(label)
		if token != "" {
			tokens = append(tokens, token)
		}
	}

	return tokens
}

// NormalizeSpecToken normalizes a single spec label; see NormalizeSpecTokens.
func NormalizeSpecToken(label string) string {
	lower := strings.ToLower(strings.TrimSpace(label))
	lower = strings.ReplaceAll(lower, "gb", "")
	lower = strings.ReplaceAll(lower, "tb", "")

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

func lowered(values []string) []any {
	result := make([]any, 0, len(values))
	for _, v := range values {
		result = append(result, strings.ToLower(strings.TrimSpace(v)))
	}

	return result
}
