// Package query compiles typed ledger predicates into parameterized SQL.
//
// Column identifiers come from code constants and are checked against a strict
// pattern; every value travels as a bound parameter.
package query

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Column is a qualified column reference such as "p.payment_date".
type Column string

var columnPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*(\.[a-z_][a-z0-9_]*)?$`)

func (c Column) valid() bool {
	return columnPattern.MatchString(string(c))
}

// Table is a table reference with its alias.
type Table struct {
	Name  string
	Alias string
}

func (t Table) valid() bool {
	return Column(t.Name).valid() && Column(t.Alias).valid()
}

// ErrInvalidIdentifier is returned when a predicate references a malformed column or table.
var ErrInvalidIdentifier = errors.New("invalid_identifier")

// Predicate is a single typed condition.
type Predicate interface {
	compile() (string, []any, error)
}

// Filter is an immutable conjunction of predicates.
type Filter struct {
	preds []Predicate
}

func New(preds ...Predicate) Filter {
	return Filter{}.With(preds...)
}

// With returns a new filter extended by preds; f is left untouched.
func (f Filter) With(preds ...Predicate) Filter {
	out := make([]Predicate, 0, len(f.preds)+len(preds))
	out = append(out, f.preds...)
	for _, p := range preds {
		if p != nil {
			out = append(out, p)
		}
	}
	return Filter{preds: out}
}

func (f Filter) Len() int {
	return len(f.preds)
}

// Compile joins all predicates with AND.
func (f Filter) Compile() (string, []any, error) {
	if len(f.preds) == 0 {
		return "", nil, nil
	}
	parts := make([]string, 0, len(f.preds))
	var args []any
	for _, p := range f.preds {
		sql, vars, err := p.compile()
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, sql)
		args = append(args, vars...)
	}
	return strings.Join(parts, " AND "), args, nil
}

// Apply adds the compiled filter as a WHERE clause.
func (f Filter) Apply(tx *gorm.DB) *gorm.DB {
	sql, args, err := f.Compile()
	if err != nil {
		_ = tx.AddError(err)
		return tx
	}
	if sql == "" {
		return tx
	}
	return tx.Where(sql, args...)
}

// String renders the filter without its values, for logs.
func (f Filter) String() string {
	sql, _, err := f.Compile()
	if err != nil {
		return "<invalid filter>"
	}
	return sql
}

type between struct {
	col        Column
	start, end time.Time
}

// Between matches start <= col <= end.
func Between(col Column, start, end time.Time) Predicate {
	return between{col: col, start: start, end: end}
}

func (p between) compile() (string, []any, error) {
	if !p.col.valid() {
		return "", nil, fmt.Errorf("%w: %q", ErrInvalidIdentifier, p.col)
	}
	return fmt.Sprintf("%s >= ? AND %s <= ?", p.col, p.col), []any{p.start, p.end}, nil
}

type comparison struct {
	col   Column
	op    string
	value any
	upper bool
}

// Eq matches col = value.
func Eq(col Column, value any) Predicate {
	return comparison{col: col, op: "=", value: value}
}

// Before matches col < value.
func Before(col Column, value time.Time) Predicate {
	return comparison{col: col, op: "<", value: value}
}

// StatusIs matches UPPER(col) = UPPER(value).
func StatusIs(col Column, value string) Predicate {
	return comparison{col: col, op: "=", value: strings.ToUpper(value), upper: true}
}

// StatusIsNot matches UPPER(col) <> UPPER(value).
func StatusIsNot(col Column, value string) Predicate {
	return comparison{col: col, op: "<>", value: strings.ToUpper(value), upper: true}
}

func (p comparison) compile() (string, []any, error) {
	if !p.col.valid() {
		return "", nil, fmt.Errorf("%w: %q", ErrInvalidIdentifier, p.col)
	}
	ref := string(p.col)
	if p.upper {
		ref = "UPPER(" + ref + ")"
	}
	return fmt.Sprintf("%s %s ?", ref, p.op), []any{p.value}, nil
}

type membership struct {
	col    Column
	values []string
	upper  bool
}

// In matches col IN (values...). An empty list matches nothing.
func In(col Column, values ...string) Predicate {
	return membership{col: col, values: append([]string(nil), values...)}
}

// StatusIn matches UPPER(col) IN (UPPER(values)...).
func StatusIn(col Column, values ...string) Predicate {
	upper := make([]string, len(values))
	for i, v := range values {
		upper[i] = strings.ToUpper(v)
	}
	return membership{col: col, values: upper, upper: true}
}

func (p membership) compile() (string, []any, error) {
	if !p.col.valid() {
		return "", nil, fmt.Errorf("%w: %q", ErrInvalidIdentifier, p.col)
	}
	if len(p.values) == 0 {
		return "1 = 0", nil, nil
	}
	ref := string(p.col)
	if p.upper {
		ref = "UPPER(" + ref + ")"
	}
	return ref + " IN ?", []any{p.values}, nil
}

type nullCheck struct {
	col    Column
	isNull bool
}

func IsNull(col Column) Predicate {
	return nullCheck{col: col, isNull: true}
}

func NotNull(col Column) Predicate {
	return nullCheck{col: col}
}

func (p nullCheck) compile() (string, []any, error) {
	if !p.col.valid() {
		return "", nil, fmt.Errorf("%w: %q", ErrInvalidIdentifier, p.col)
	}
	if p.isNull {
		return string(p.col) + " IS NULL", nil, nil
	}
	return string(p.col) + " IS NOT NULL", nil, nil
}

type notReferenced struct {
	table Table
	ref   Column
	outer Column
}

// NotReferenced matches rows whose outer column is not referenced by any row of table.ref.
func NotReferenced(table Table, ref, outer Column) Predicate {
	return notReferenced{table: table, ref: ref, outer: outer}
}

func (p notReferenced) compile() (string, []any, error) {
	if !p.table.valid() || !p.ref.valid() || !p.outer.valid() {
		return "", nil, fmt.Errorf("%w: %s/%s/%s", ErrInvalidIdentifier, p.table.Name, p.ref, p.outer)
	}
	return fmt.Sprintf("NOT EXISTS (SELECT 1 FROM %s %s WHERE %s = %s)", p.table.Name, p.table.Alias, p.ref, p.outer), nil, nil
}

type inSelect struct {
	col    Column
	table  Table
	picked Column
	sub    Filter
}

// InSelect matches col IN (SELECT picked FROM table WHERE sub). The subquery carries sub's
// bound parameters.
func InSelect(col Column, table Table, picked Column, sub Filter) Predicate {
	return inSelect{col: col, table: table, picked: picked, sub: sub}
}

func (p inSelect) compile() (string, []any, error) {
	if !p.col.valid() || !p.table.valid() || !p.picked.valid() {
		return "", nil, fmt.Errorf("%w: %s/%s/%s", ErrInvalidIdentifier, p.col, p.table.Name, p.picked)
	}
	where, args, err := p.sub.Compile()
	if err != nil {
		return "", nil, err
	}
	sql := fmt.Sprintf("%s IN (SELECT %s FROM %s %s", p.col, p.picked, p.table.Name, p.table.Alias)
	if where != "" {
		sql += " WHERE " + where
	}
	return sql + ")", args, nil
}
