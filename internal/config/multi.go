package config

import (
	"context"
	"fmt"
)

// MultiLoader runs several loaders over the same paths and merges their
// models in loader order.
type MultiLoader []Loader

// Load implements Loader.
func (ml MultiLoader) Load(ctx context.Context, paths ...string) (*Model, error) {
	model := &Model{}
	for i, l := range ml {
		m, err := l.Load(ctx, paths...)
		if err != nil {
			return nil, fmt.Errorf("loader %d: %w", i, err)
		}
		model.Merge(m)
	}
	return model, nil
}
