package llm

// SchemaType names a JSON value kind in a response schema.
type SchemaType string

const (
	TypeObject SchemaType = "OBJECT"
	TypeArray  SchemaType = "ARRAY"
	TypeString SchemaType = "STRING"
)

// Schema describes the JSON shape the model must return. It is
// provider-neutral and converted by each client.
type Schema struct {
	Type        SchemaType
	Description string
	Properties  map[string]*Schema
	Items       *Schema
	Required    []string
	MinItems    *int64 // arrays only; nil means unconstrained
}

// Object builds an object schema with the given properties and required keys.
func Object(props map[string]*Schema, required ...string) *Schema {
	return &Schema{Type: TypeObject, Properties: props, Required: required}
}

// Array builds an array schema of items.
func Array(items *Schema) *Schema {
	return &Schema{Type: TypeArray, Items: items}
}

// String builds a string schema.
func String() *Schema {
	return &Schema{Type: TypeString}
}

// Describe returns a copy of s carrying the description.
func (s *Schema) Describe(desc string) *Schema {
	c := *s
	c.Description = desc
	return &c
}

// WithMinItems returns a copy of the array schema s requiring at least n items.
func (s *Schema) WithMinItems(n int64) *Schema {
	c := *s
	c.MinItems = &n
	return &c
}
