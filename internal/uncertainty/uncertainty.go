// Package uncertainty validates the percent-uncertainty bounds that entries
// carry in their metadata. An entry's Meta[k] may describe the uncertainty of
// that entry with respect to entry k; see Parse for the accepted shapes.
package uncertainty

import (
	"context"
	"fmt"

	"github.com/vk/pvcircus/internal/ctxlog"
	"github.com/vk/pvcircus/internal/registry"
)

// Check walks the finalized registry in evaluation order and returns the
// first uncertainty whose units are not percent.
func Check(ctx context.Context, fin *registry.Finalized) error {
	logger := ctxlog.FromContext(ctx)

	checked := 0
	for _, key := range fin.Order() {
		entry, err := fin.Get(key)
		if err != nil {
			return err
		}
		for _, ref := range entry.MetaKeys() {
			bounds, ok, err := Parse(entry.Meta[ref])
			if !ok {
				continue
			}
			if err != nil {
				return fmt.Errorf("uncertainty of %q with respect to %q: %w", key, ref, err)
			}
			if err := bounds.Validate(key); err != nil {
				return err
			}
			checked++
		}
	}

	logger.Debug("Uncertainty bounds validated.", "count", checked)
	return nil
}
