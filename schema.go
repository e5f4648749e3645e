package recipeimport

// Recipe field names as they appear on the wire.
const (
	FieldTitle       = "title"
	FieldBannerURL   = "banner_url"
	FieldPrepTime    = "prep_time"
	FieldTotalTime   = "total_time"
	FieldMethods     = "methods"
	FieldIngredients = "ingredients"
)

// SchemaName is the name under which every schema variant is sent to a provider.
const SchemaName = "recipe"

// SchemaVariant identifies one of the strict output contracts a model is
// asked to fill in.
type SchemaVariant string

// SchemaVariant constants.
const (
	SchemaFull        SchemaVariant = "full"
	SchemaMetadata    SchemaVariant = "metadata"
	SchemaIngredients SchemaVariant = "ingredients"
	SchemaMethods     SchemaVariant = "methods"
)

// SchemaVariants lists every variant, full schema first.
func SchemaVariants() []SchemaVariant {
	return []SchemaVariant{SchemaFull, SchemaMetadata, SchemaIngredients, SchemaMethods}
}

// SplitSchemaVariants lists the disjoint variants whose union is SchemaFull.
func SplitSchemaVariants() []SchemaVariant {
	return []SchemaVariant{SchemaMetadata, SchemaIngredients, SchemaMethods}
}

// ParseSchemaVariant converts a variant name into a SchemaVariant.
func ParseSchemaVariant(name string) (SchemaVariant, error) {
	for _, v := range SchemaVariants() {
		if string(v) == name {
			return v, nil
		}
	}
	return "", Errorf(EINVALID, "unknown schema variant %q", name)
}

// String returns the variant name.
func (v SchemaVariant) String() string {
	return string(v)
}

// Property describes one field of the recipe contract. The description is
// sent to the provider and guides extraction.
type Property struct {
	Name        string
	Type        string
	Description string
}

// properties is the single source of truth for every variant.
var properties = []Property{
	{Name: FieldTitle, Type: "string", Description: "The title of the recipe."},
	{Name: FieldBannerURL, Type: "string", Description: "URL of the banner image for the recipe."},
	{Name: FieldPrepTime, Type: "number", Description: "Preparation time in seconds."},
	{Name: FieldTotalTime, Type: "number", Description: "Total time to prepare and cook the recipe in seconds."},
	{Name: FieldMethods, Type: "array", Description: "A list of methods for preparing the recipe."},
	{Name: FieldIngredients, Type: "array", Description: "A list of ingredients required, including their quantities."},
}

var variantFields = map[SchemaVariant][]string{
	SchemaFull:        {FieldTitle, FieldBannerURL, FieldPrepTime, FieldTotalTime, FieldMethods, FieldIngredients},
	SchemaMetadata:    {FieldTitle, FieldBannerURL, FieldPrepTime, FieldTotalTime},
	SchemaIngredients: {FieldIngredients},
	SchemaMethods:     {FieldMethods},
}

// Fields returns the names of the fields the variant declares, in
// declaration order. Unknown variants declare no fields.
func (v SchemaVariant) Fields() []string {
	fields := variantFields[v]
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

// Owns reports whether the variant declares the named field.
func (v SchemaVariant) Owns(field string) bool {
	for _, f := range variantFields[v] {
		if f == field {
			return true
		}
	}
	return false
}

// Properties returns the property definitions of the variant's fields.
func (v SchemaVariant) Properties() []Property {
	var out []Property
	for _, p := range properties {
		if v.Owns(p.Name) {
			out = append(out, p)
		}
	}
	return out
}

// JSONSchema returns the variant as a strict JSON Schema object: every
// declared property is required and additional properties are forbidden.
func (v SchemaVariant) JSONSchema() map[string]any {
	props := make(map[string]any)
	required := make([]string, 0, len(variantFields[v]))
	for _, p := range v.Properties() {
		prop := map[string]any{
			"type":        p.Type,
			"description": p.Description,
		}
		if p.Type == "array" {
			prop["items"] = map[string]any{"type": "string"}
		}
		props[p.Name] = prop
		required = append(required, p.Name)
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}
