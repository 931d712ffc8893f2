package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"

	"github.com/lib/pq"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterOperatorContains  = "contains"
	FilterOperatorOverlap   = "overlap"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

// comparisons maps scalar operators to SQL.
var comparisons = map[string]string{
	FilterOperatorEq:        "=",
	FilterOperatorNotEq:     "!=",
	FilterOperatorLessEq:    "<=",
	FilterOperatorGreaterEq: ">=",
}

// arrayComparisons maps Postgres array operators to SQL. Their values are bound with pq.Array.
var arrayComparisons = map[string]string{
	FilterOperatorContains: "@>",
	FilterOperatorOverlap:  "&&",
}

// Filter is one named-parameter predicate. ArgName defaults to Field and must be unique within a FilterGroup.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq like in not_eq less_eq greater_eq contains overlap"`
	Table    string
}

func (f *Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

func (f *Filter) argName() string {
	if f.ArgName == "" {
		return f.Field
	}

	return f.ArgName
}

// GetWhereClause renders the predicate and its named arguments. An unknown operator renders nothing.
func (f *Filter) GetWhereClause() (string, map[string]any) {
	column, arg := f.column(), f.argName()
	args := map[string]any{}

	if op, ok := comparisons[f.Operator]; ok {
		args[arg] = f.Value

		return fmt.Sprintf("%s %s :%s", column, op, arg), args
	}

	if op, ok := arrayComparisons[f.Operator]; ok {
		args[arg] = pq.Array(f.Value)

		return fmt.Sprintf("%s %s :%s", column, op, arg), args
	}

	switch f.Operator {
	case FilterOperatorLike:
		args[arg] = fmt.Sprintf("%%%v%%", f.Value)

		return fmt.Sprintf("LOWER(%s) LIKE LOWER(:%s)", column, arg), args
	case FilterOperatorIn:
		return f.inClause(column, arg, args)
	default:
		return "", args
	}
}

// inClause expands a slice into one named argument per element, sqlx cannot bind slices directly.
func (f *Filter) inClause(column, arg string, args map[string]any) (string, map[string]any) {
	val := reflect.ValueOf(f.Value)
	if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
		args[arg] = f.Value

		return fmt.Sprintf("%s IN (:%s)", column, arg), args
	}

	named := make([]string, val.Len())

	for idx := range val.Len() {
		name := fmt.Sprintf("%s_%d", arg, idx)
		args[name] = val.Index(idx).Interface()
		named[idx] = ":" + name
	}

	return fmt.Sprintf("%s IN (%s)", column, strings.Join(named, ", ")), args
}

// FilterGroup joins Filters and nested FilterGroups with Operator, AND when empty.
type FilterGroup struct {
	Filters  []any
	Operator string
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	clauses := make([]string, 0, len(f.Filters))

	for _, filter := range f.Filters {
		var (
			where string
			arg   map[string]any
		)

		switch fill := filter.(type) {
		case Filter:
			where, arg = fill.GetWhereClause()
		case FilterGroup:
			where, arg = fill.GetWhereClause()
		default:
			continue
		}

		if where == "" {
			continue
		}

		clauses = append(clauses, where)
		maps.Copy(args, arg)
	}

	if len(clauses) == 0 {
		return "", args
	}

	operator := f.Operator
	if operator == "" {
		operator = FilterGroupOperatorAnd
	}

	return fmt.Sprintf("(%s)", strings.Join(clauses, " "+operator+" ")), args
}
