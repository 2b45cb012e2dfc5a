package sheetstd

import (
	"github.com/ukaji3/sheetstd/pkg/sheetstd/match"
	"github.com/ukaji3/sheetstd/pkg/sheetstd/models"
)

// AutoMap proposes a mapping by matching every schema field, used as its own
// requested name, against the source columns. Unmatched fields are left out.
func (e *Engine) AutoMap(columns []string) (models.MappingConfig, error) {
	schema, err := e.SchemaFields()
	if err != nil {
		return nil, err
	}

	mapping := make(models.MappingConfig, len(schema))
	for _, field := range schema {
		if m := match.MatchColumn(field, columns, field); m.Matched() {
			mapping[field] = m.Column
		}
	}
	return mapping, nil
}
