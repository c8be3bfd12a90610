package grid

import (
	"strconv"
	"strings"
)

// Kind selects how a column's search term is compared.
type Kind int

const (
	// Unfiltered columns are only sortable.
	Unfiltered Kind = iota
	// Text is a case-insensitive substring match.
	Text
	// Cast matches a substring of the value's text form (numbers, dates).
	Cast
	// Flag compares a boolean parsed with ParseFlag.
	Flag
	// Range is an inclusive date range taken from Query.Ranges.
	Range
)

// Column declares one filterable and/or sortable grid column. Text and Cast
// columns with several Exprs match when any of them matches.
type Column struct {
	Key   string
	Kind  Kind
	Exprs []string
	Sort  string
}

// Table is the whitelist of columns of one entity listing.
type Table struct {
	columns map[string]Column

	// Positional maps order[i][column] indexes to column keys. When set it takes
	// precedence over the column keys sent with the request.
	Positional []string
	// DefaultSort is used when no valid order was requested.
	DefaultSort string
	// Tiebreak is always appended to make paging stable.
	Tiebreak string
}

// NewTable builds a table from column declarations.
func NewTable(defaultSort, tiebreak string, cols ...Column) *Table {
	t := &Table{
		columns:     make(map[string]Column, len(cols)),
		DefaultSort: defaultSort,
		Tiebreak:    tiebreak,
	}
	for _, c := range cols {
		t.columns[c.Key] = c
	}
	return t
}

// Has reports whether key is a declared column.
func (t *Table) Has(key string) bool {
	_, ok := t.columns[key]
	return ok
}

// Args accumulates positional query arguments.
type Args struct {
	values []any
}

// Add appends v and returns its placeholder.
func (a *Args) Add(v any) string {
	a.values = append(a.values, v)
	return "$" + strconv.Itoa(len(a.values))
}

// Values returns the arguments in placeholder order.
func (a *Args) Values() []any {
	return a.values
}

// Where composes the predicate for q's terms and ranges: every active column
// is AND-ed. Unknown columns, empty terms and unrecognised flag tokens are
// skipped. The result has no WHERE keyword and is empty when nothing applies.
func (t *Table) Where(q Query, args *Args) string {
	var clauses []string
	for _, term := range q.Terms {
		col, ok := t.columns[term.Field]
		if !ok {
			continue
		}
		v := strings.TrimSpace(term.Value)
		if v == "" {
			continue
		}
		if c := col.match(v, args); c != "" {
			clauses = append(clauses, c)
		}
	}
	for _, r := range q.Ranges {
		col, ok := t.columns[r.Field]
		if !ok || col.Kind != Range || len(col.Exprs) == 0 {
			continue
		}
		if r.From != nil {
			clauses = append(clauses, col.Exprs[0]+" >= "+args.Add(*r.From))
		}
		if r.To != nil {
			clauses = append(clauses, col.Exprs[0]+" <= "+args.Add(*r.To))
		}
	}
	return strings.Join(clauses, " AND ")
}

func (c Column) match(v string, args *Args) string {
	if len(c.Exprs) == 0 {
		return ""
	}
	switch c.Kind {
	case Text, Cast:
		p := args.Add("%" + escapeLike(v) + "%")
		parts := make([]string, len(c.Exprs))
		for i, e := range c.Exprs {
			if c.Kind == Cast {
				e = "CAST(" + e + " AS TEXT)"
			}
			parts[i] = e + " ILIKE " + p
		}
		if len(parts) == 1 {
			return parts[0]
		}
		return "(" + strings.Join(parts, " OR ") + ")"
	case Flag:
		b, ok := ParseFlag(v)
		if !ok {
			return ""
		}
		return c.Exprs[0] + " = " + args.Add(b)
	default:
		return ""
	}
}

// OrderBy resolves q's sort instructions against the whitelist.
func (t *Table) OrderBy(q Query) string {
	var parts []string
	for _, o := range q.Order {
		key := o.Field
		if t.Positional != nil {
			key = ""
			if o.Column < len(t.Positional) {
				key = t.Positional[o.Column]
			}
		}
		col, ok := t.columns[key]
		if !ok || col.Sort == "" {
			continue
		}
		dir := " ASC"
		if o.Desc {
			dir = " DESC"
		}
		parts = append(parts, col.Sort+dir)
	}
	if len(parts) == 0 && t.DefaultSort != "" {
		parts = append(parts, t.DefaultSort)
	}
	if t.Tiebreak != "" && !sortsOn(parts, t.Tiebreak) {
		parts = append(parts, t.Tiebreak)
	}
	return strings.Join(parts, ", ")
}

// sortsOn reports whether parts already sort on the expression of term.
func sortsOn(parts []string, term string) bool {
	expr, _, _ := strings.Cut(term, " ")
	for _, p := range parts {
		if e, _, _ := strings.Cut(p, " "); e == expr {
			return true
		}
	}
	return false
}

// WhereClause joins non-empty conditions into a WHERE clause.
func WhereClause(conds ...string) string {
	var parts []string
	for _, c := range conds {
		if c != "" {
			parts = append(parts, c)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(parts, " AND ")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
