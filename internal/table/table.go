// Package table loads spreadsheet files into an immutable, column-typed Table.
package table

import (
	"fmt"
	"math"
)

// Kind is the resolved semantic type of a column.
type Kind int

const (
	Numeric Kind = iota + 1
	Categorical
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Dtype labels reported for columns.
const (
	DtypeInt64    = "int64"
	DtypeFloat64  = "float64"
	DtypeObject   = "object"
	DtypeDatetime = "datetime64[ns]"
	DtypeBool     = "bool"
)

// Column is implemented by *NumericColumn and *CategoricalColumn only.
// Callers switch on the concrete type.
type Column interface {
	Name() string
	Dtype() string
	Kind() Kind
	Len() int
	MissingCount() int
	sealed()
}

// NumericColumn holds float values; NaN marks a missing cell.
type NumericColumn struct {
	name   string
	dtype  string
	values []float64
}

// NewNumericColumn builds a numeric column. An empty dtype is derived from the values.
func NewNumericColumn(name, dtype string, values []float64) *NumericColumn {
	if dtype == "" {
		dtype = numericDtype(values)
	}
	return &NumericColumn{name: name, dtype: dtype, values: values}
}

func (c *NumericColumn) Name() string  { return c.name }
func (c *NumericColumn) Dtype() string { return c.dtype }
func (c *NumericColumn) Kind() Kind    { return Numeric }
func (c *NumericColumn) Len() int      { return len(c.values) }
func (c *NumericColumn) sealed()       {}

// Values returns the backing slice, NaN for missing. Do not modify.
func (c *NumericColumn) Values() []float64 { return c.values }

func (c *NumericColumn) MissingCount() int {
	n := 0
	for _, v := range c.values {
		if math.IsNaN(v) {
			n++
		}
	}
	return n
}

// NonMissing returns a fresh slice of the present values in row order.
func (c *NumericColumn) NonMissing() []float64 {
	out := make([]float64, 0, len(c.values))
	for _, v := range c.values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// CategoricalColumn holds display strings with a parallel missing mask.
type CategoricalColumn struct {
	name    string
	dtype   string
	values  []string
	missing []bool
}

// NewCategoricalColumn builds a categorical column. A nil missing mask marks
// empty strings as missing.
func NewCategoricalColumn(name, dtype string, values []string, missing []bool) *CategoricalColumn {
	if dtype == "" {
		dtype = DtypeObject
	}
	if missing == nil {
		missing = make([]bool, len(values))
		for i, v := range values {
			missing[i] = v == ""
		}
	}
	return &CategoricalColumn{name: name, dtype: dtype, values: values, missing: missing}
}

func (c *CategoricalColumn) Name() string  { return c.name }
func (c *CategoricalColumn) Dtype() string { return c.dtype }
func (c *CategoricalColumn) Kind() Kind    { return Categorical }
func (c *CategoricalColumn) Len() int      { return len(c.values) }
func (c *CategoricalColumn) sealed()       {}

// Values returns the backing slice. Do not modify.
func (c *CategoricalColumn) Values() []string { return c.values }

// IsMissing reports whether row i is missing.
func (c *CategoricalColumn) IsMissing(i int) bool { return c.missing[i] }

func (c *CategoricalColumn) MissingCount() int {
	n := 0
	for i := range c.values {
		if c.IsMissing(i) {
			n++
		}
	}
	return n
}

// NonMissing returns the present values in row order.
func (c *CategoricalColumn) NonMissing() []string {
	out := make([]string, 0, len(c.values))
	for i, v := range c.values {
		if !c.IsMissing(i) {
			out = append(out, v)
		}
	}
	return out
}

// Table is an ordered set of equally long columns. It is not modified after construction.
type Table struct {
	Name    string
	columns []Column
	rows    int
}

// New validates that all columns share one length and returns the table.
func New(name string, cols ...Column) (*Table, error) {
	t := &Table{Name: name, columns: cols}
	for i, c := range cols {
		if i == 0 {
			t.rows = c.Len()
			continue
		}
		if c.Len() != t.rows {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", c.Name(), c.Len(), t.rows)
		}
	}
	return t, nil
}

// Rows returns the number of data rows.
func (t *Table) Rows() int { return t.rows }

// Width returns the number of columns.
func (t *Table) Width() int { return len(t.columns) }

// Columns returns the columns in file order.
func (t *Table) Columns() []Column { return t.columns }

// Column looks up a column by exact name.
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.columns {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// NumericColumns returns the numeric columns in file order.
func (t *Table) NumericColumns() []*NumericColumn {
	var out []*NumericColumn
	for _, c := range t.columns {
		if nc, ok := c.(*NumericColumn); ok {
			out = append(out, nc)
		}
	}
	return out
}

func numericDtype(values []float64) string {
	for _, v := range values {
		if math.IsNaN(v) || v != math.Trunc(v) || math.IsInf(v, 0) {
			return DtypeFloat64
		}
	}
	return DtypeInt64
}
