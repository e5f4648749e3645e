package recipeimport

// Recipe is a structured recipe extracted from a web page.
// Times are in seconds. Order of Methods and Ingredients is significant.
type Recipe struct {
	Title       string   `json:"title"`
	BannerURL   string   `json:"banner_url"`
	PrepTime    float64  `json:"prep_time"`
	TotalTime   float64  `json:"total_time"`
	Methods     []string `json:"methods"`
	Ingredients []string `json:"ingredients"`
}

// Partial is the result of a single extraction call. Only the fields
// owned by Variant are meaningful.
type Partial struct {
	Variant SchemaVariant
	Recipe  Recipe
}

// Merge returns the union of the fields each partial owns. Fields a
// partial's variant does not declare are ignored. The split variants
// declare disjoint field sets, so the result does not depend on the order
// of parts.
func Merge(parts ...Partial) Recipe {
	var r Recipe
	for _, p := range parts {
		p.applyTo(&r)
	}
	return r
}

func (p Partial) applyTo(r *Recipe) {
	v := p.Variant
	if v.Owns(FieldTitle) {
		r.Title = p.Recipe.Title
	}
	if v.Owns(FieldBannerURL) {
		r.BannerURL = p.Recipe.BannerURL
	}
	if v.Owns(FieldPrepTime) {
		r.PrepTime = p.Recipe.PrepTime
	}
	if v.Owns(FieldTotalTime) {
		r.TotalTime = p.Recipe.TotalTime
	}
	if v.Owns(FieldMethods) {
		r.Methods = p.Recipe.Methods
	}
	if v.Owns(FieldIngredients) {
		r.Ingredients = p.Recipe.Ingredients
	}
}
