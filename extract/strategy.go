package extract

import (
	"context"

	"github.com/fwojciec/recipeimport"
	"golang.org/x/sync/errgroup"
)

// Ensure strategies implement recipeimport.Importer at compile time.
var (
	_ recipeimport.Importer = (*Single)(nil)
	_ recipeimport.Importer = (*Parallel)(nil)
)

// Single extracts every recipe field with one full-schema call.
type Single struct {
	Normalizer recipeimport.Normalizer
	Client     *Client
}

// Import normalizes html and extracts the full recipe.
func (s *Single) Import(ctx context.Context, html, credential string) (recipeimport.Recipe, bool, error) {
	markdown := s.Normalizer.Normalize(html)

	part, ok, err := s.Client.Extract(ctx, markdown, recipeimport.SchemaFull, credential)
	if err != nil || !ok {
		return recipeimport.Recipe{}, false, err
	}
	return recipeimport.Merge(part), true, nil
}

// Parallel extracts metadata, ingredients and methods with three
// concurrent calls against the same markdown and merges the results.
//
// All three calls always run to completion; there is no cancellation when
// one of them fails. The recipe is returned only if every call produced
// content.
type Parallel struct {
	Normalizer recipeimport.Normalizer
	Client     *Client
}

// Import normalizes html once and fans out one call per split schema.
func (p *Parallel) Import(ctx context.Context, html, credential string) (recipeimport.Recipe, bool, error) {
	markdown := p.Normalizer.Normalize(html)

	variants := recipeimport.SplitSchemaVariants()
	parts := make([]recipeimport.Partial, len(variants))
	found := make([]bool, len(variants))

	var g errgroup.Group
	for i, variant := range variants {
		g.Go(func() error {
			part, ok, err := p.Client.Extract(ctx, markdown, variant, credential)
			if err != nil {
				return err
			}
			parts[i], found[i] = part, ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return recipeimport.Recipe{}, false, err
	}

	for _, ok := range found {
		if !ok {
			return recipeimport.Recipe{}, false, nil
		}
	}
	return recipeimport.Merge(parts...), true, nil
}

// NewImporter returns the Importer for the given strategy.
func NewImporter(strategy recipeimport.Strategy, normalizer recipeimport.Normalizer, client *Client) (recipeimport.Importer, error) {
	switch strategy {
	case recipeimport.StrategySingle:
		return &Single{Normalizer: normalizer, Client: client}, nil
	case recipeimport.StrategyParallel:
		return &Parallel{Normalizer: normalizer, Client: client}, nil
	}
	return nil, recipeimport.Errorf(recipeimport.EINVALID, "unknown strategy %q", strategy)
}
