package query

// Schema is a static descriptor of one entity's filterable fields.
//
// Field resolution happens against this descriptor, never by reflection; a
// filter naming an undeclared field is rejected before any SQL is built.
type Schema struct {
	entity  string
	columns map[string]string
}

// NewSchema creates a schema for entity mapping field names to column names.
func NewSchema(entity string, fields map[string]string) Schema {
	columns := make(map[string]string, len(fields))
	for field, column := range fields {
		columns[field] = column
	}
	return Schema{entity: entity, columns: columns}
}

// Entity returns the entity (table) name.
func (s Schema) Entity() string {
	return s.entity
}

// Column resolves a field name to its column name.
func (s Schema) Column(field string) (string, bool) {
	column, ok := s.columns[field]
	return column, ok
}
