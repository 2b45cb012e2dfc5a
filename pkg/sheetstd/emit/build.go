// Package emit assembles the schema-ordered result table, partitions it into
// output groups and writes one spreadsheet per group.
package emit

import (
	"github.com/ukaji3/sheetstd/pkg/sheetstd/match"
	"github.com/ukaji3/sheetstd/pkg/sheetstd/models"
)

// AllGroup names the single group of an unsplit run.
const AllGroup = "all"

// Build reorders result columns to the schema order. Schema fields missing
// from the result become columns of absent cells; result columns that are
// not schema fields are dropped.
func Build(result *models.Table, schema []string) *models.Table {
	out := &models.Table{
		Columns: append([]string{}, schema...),
		Rows:    make([][]models.Cell, result.Len()),
	}

	sources := make([]int, len(schema))
	for i, field := range schema {
		sources[i] = result.ColumnIndex(field)
	}
	for r, row := range result.Rows {
		cells := make([]models.Cell, len(schema))
		for i, src := range sources {
			if src >= 0 && src < len(row) {
				cells[i] = row[src]
			}
		}
		out.Rows[r] = cells
	}
	return out
}

// Group is one partition of the canonical table.
type Group struct {
	// Name is the split value, or AllGroup.
	Name string
	// Rows holds canonical rows.
	Rows [][]models.Cell
	// Placeholder is set when no row matched and a blank row stands in.
	Placeholder bool
}

// DistinctValues returns the text of each distinct non-absent key in
// first-seen order.
func DistinctValues(keys []models.Cell) []string {
	var values []string
	seen := make(map[string]bool)
	for _, k := range keys {
		if k.IsAbsent() {
			continue
		}
		v := k.String()
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	return values
}

// Partition splits table rows by keys, which are aligned with the rows.
// Nil keys yield the single AllGroup.
func Partition(table *models.Table, keys []models.Cell) []Group {
	if keys == nil {
		return []Group{{Name: AllGroup, Rows: table.Rows}}
	}
	return PartitionValues(table, keys, DistinctValues(keys))
}

// PartitionValues builds one group per value, in order. Rows are matched
// exactly first and case-insensitively when that finds nothing. A group that
// still matches nothing gets a single blank placeholder row.
func PartitionValues(table *models.Table, keys []models.Cell, values []string) []Group {
	groups := make([]Group, 0, len(values))
	for _, v := range values {
		g := Group{Name: v}
		for i, k := range keys {
			if i < len(table.Rows) && !k.IsAbsent() && k.String() == v {
				g.Rows = append(g.Rows, table.Rows[i])
			}
		}
		if len(g.Rows) == 0 {
			want := match.Normalize(v)
			for i, k := range keys {
				if i < len(table.Rows) && !k.IsAbsent() && match.Normalize(k.String()) == want {
					g.Rows = append(g.Rows, table.Rows[i])
				}
			}
		}
		if len(g.Rows) == 0 {
			g.Rows = [][]models.Cell{make([]models.Cell, len(table.Columns))}
			g.Placeholder = true
		}
		groups = append(groups, g)
	}
	return groups
}
