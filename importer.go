package recipeimport

import "context"

// Strategy selects how a recipe is extracted.
type Strategy string

// Strategy constants.
const (
	// StrategySingle extracts every field in one call.
	StrategySingle Strategy = "single"
	// StrategyParallel extracts metadata, ingredients and methods in
	// three concurrent calls and merges the results.
	StrategyParallel Strategy = "parallel"
)

// ParseStrategy converts a strategy name into a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(name) {
	case StrategySingle, StrategyParallel:
		return Strategy(name), nil
	}
	return "", Errorf(EINVALID, "unknown strategy %q", name)
}

// Importer extracts a recipe from raw page HTML.
type Importer interface {
	// Import returns the extracted recipe, or ok == false when nothing
	// could be extracted. A partial recipe is never returned.
	Import(ctx context.Context, html, credential string) (recipe Recipe, ok bool, err error)
}
