package postgres

import (
	"strings"

	"lapmatch/internal/domain/query"

	"gorm.io/gorm"
)

// searchableColumns are the columns a free-text predicate matches against.
var searchableColumns = []string{"name", "brand", "model", "category", "processor", "gpu"}

// columnFor maps a query field to its laptops column.
func columnFor(field query.Field) string {
	switch field {
	case query.FieldBrand:
		return "brand"
	case query.FieldCategory:
		return "category"
	case query.FieldPrice:
		return "price_current"
	case query.FieldRAM:
		return "ram"
	case query.FieldStorage:
		return "storage"
	case query.FieldProcessor:
		return "processor"
	case query.FieldDisplaySize:
		return "display_size"
	case query.FieldRating:
		return "rating_average"
	case query.FieldWeight:
		return "weight"
	case query.FieldBatteryLife:
		return "battery_life"
	case query.FieldTouchscreen:
		return "touchscreen"
	case query.FieldIPS:
		return "ips"
	case query.FieldBacklitKeyboard:
		return "backlit_keyboard"
	case query.FieldFingerprint:
		return "fingerprint_scanner"
	default:
		return string(field)
	}
}

// predicateCondition renders one predicate as a SQL fragment plus its args.
// An empty fragment means the predicate constrains nothing and is skipped.
func predicateCondition(pred query.Predicate) (string, []any) {
	switch pred.Op {
	case query.OpEquals:
		return columnFor(pred.Field) + " = ?", []any{pred.Value}

	case query.OpIn:
		if len(pred.Values) == 0 {
			// An empty set matches nothing.
			return "1 = 0", nil
		}

		return columnFor(pred.Field) + " IN ?", []any{pred.Values}

	case query.OpRange:
		column := columnFor(pred.Field)
		var parts []string
		var args []any
		if pred.Min != nil {
			parts = append(parts, column+" >= ?")
			args = append(args, *pred.Min)
		}
		if pred.Max != nil {
			parts = append(parts, column+" <= ?")
			args = append(args, *pred.Max)
		}
		if len(parts) == 0 {
			return "", nil
		}

		return strings.Join(parts, " AND "), args

	case query.OpContainsAny:
		if len(pred.Tokens) == 0 {
			return "", nil
		}
		column := columnFor(pred.Field)
		parts := make([]string, 0, len(pred.Tokens))
		args := make([]any, 0, len(pred.Tokens))
		for _, token := range pred.Tokens {
			parts = append(parts, column+" ILIKE ?")
			args = append(args, "%"+token+"%")
		}
		if len(parts) == 1 {
			return parts[0], args
		}

		return "(" + strings.Join(parts, " OR ") + ")", args

	case query.OpText:
		if strings.TrimSpace(pred.Text) == "" {
			return "", nil
		}
		parts := make([]string, 0, len(searchableColumns))
		args := make([]any, 0, len(searchableColumns))
		for _, column := range searchableColumns {
			parts = append(parts, column+" ILIKE ?")
			args = append(args, "%"+pred.Text+"%")
		}

		return "(" + strings.Join(parts, " OR ") + ")", args

	default:
		return "", nil
	}
}

// groupCondition ANDs a predicate group into a single fragment.
func groupCondition(preds []query.Predicate) (string, []any) {
	var parts []string
	var args []any
	for _, pred := range preds {
		cond, condArgs := predicateCondition(pred)
		if cond == "" {
			continue
		}
		parts = append(parts, cond)
		args = append(args, condArgs...)
	}
	if len(parts) == 0 {
		return "", nil
	}

	return strings.Join(parts, " AND "), args
}

// anyCondition ORs alternative predicate groups together.
func anyCondition(groups [][]query.Predicate) (string, []any) {
	var parts []string
	var args []any
	for _, group := range groups {
		cond, condArgs := groupCondition(group)
		if cond == "" {
			continue
		}
		parts = append(parts, "("+cond+")")
		args = append(args, condArgs...)
	}
	if len(parts) == 0 {
		return "", nil
	}
	if len(parts) == 1 {
		return parts[0], args
	}

	return "(" + strings.Join(parts, " OR ") + ")", args
}

// orderClause renders one sort as an ORDER BY fragment.
func orderClause(sort query.Sort) string {
	direction := "ASC"
	if sort.Direction == query.Descending {
		direction = "DESC"
	}

	return columnFor(sort.Field) + " " + direction
}

// applyQuery attaches all clauses of a catalog query to a GORM statement.
// Sorts, limit and offset are left out of count queries by the caller.
func applyQuery(db *gorm.DB, catalogQuery query.Query, withPagination bool) *gorm.DB {
	for _, pred := range catalogQuery.Must {
		cond, args := predicateCondition(pred)
		if cond == "" {
			continue
		}
		db = db.Where(cond, args...)
	}

	if cond, args := anyCondition(catalogQuery.Any); cond != "" {
		db = db.Where(cond, args...)
	}

	if len(catalogQuery.ExcludeIDs) > 0 {
		db = db.Where("id NOT IN ?", catalogQuery.ExcludeIDs)
	}

	if withPagination {
		for _, sort := range catalogQuery.Sorts {
			db = db.Order(orderClause(sort))
		}
		if catalogQuery.Limit > 0 {
			db = db.Limit(catalogQuery.Limit)
		}
		if catalogQuery.Offset > 0 {
			db = db.Offset(catalogQuery.Offset)
		}
	}

	return db
}
