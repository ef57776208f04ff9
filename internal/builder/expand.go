package builder

import (
	"context"
	"fmt"
	"math"

	"github.com/specialistvlad/pantrygraph/internal/ctxlog"
	"github.com/specialistvlad/pantrygraph/internal/lexicon"
)

type expandFrame struct {
	id        lexicon.ConceptID
	remaining int
}

// Expand adds the hyponym closure of seeds to the graph, each seed becoming a
// child of the root (or the root itself, for the first seed named like it), then cross-links every concept node to its hypernyms
// already in the graph. maxDepth bounds the descent: 0 adds the seeds only
// and a negative value is unbounded. Calling Expand again with further seeds
// extends the same graph.
func (b *Builder) Expand(ctx context.Context, seeds []lexicon.ConceptID, maxDepth int) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Expansion started.", "seeds", len(seeds), "max_depth", maxDepth)

	if maxDepth < 0 {
		maxDepth = math.MaxInt
	}

	// First pass: depth-first descent. expanded holds the largest remaining
	// depth each concept has been expanded with.
	expanded := make(map[lexicon.ConceptID]int)
	stack := make([]expandFrame, 0, len(seeds))
	for i := len(seeds) - 1; i >= 0; i-- {
		stack = append(stack, expandFrame{id: seeds[i], remaining: maxDepth})
	}
	for _, id := range seeds {
		n, err := b.seed(ctx, id)
		if err != nil {
			return err
		}
		if n == b.root {
			continue
		}
		if err := b.root.AddChild(n); err != nil {
			return fmt.Errorf("%w: seed %s: %w", ErrBuildFailed, id, err)
		}
	}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if prev, seen := expanded[f.id]; seen && prev >= f.remaining {
			continue
		}
		expanded[f.id] = f.remaining
		if f.remaining == 0 {
			continue
		}

		parent, err := b.concept(ctx, f.id)
		if err != nil {
			return err
		}
		hyponyms, err := b.source.Hyponyms(f.id)
		if err != nil {
			return fmt.Errorf("%w: hyponyms of %s: %w", ErrBuildFailed, f.id, err)
		}
		for _, h := range hyponyms {
			child, err := b.concept(ctx, h)
			if err != nil {
				return err
			}
			if err := parent.AddChild(child); err != nil {
				return fmt.Errorf("%w: %s -> %s: %w", ErrBuildFailed, f.id, h, err)
			}
		}
		// Push in reverse so the first hyponym is descended into first.
		for i := len(hyponyms) - 1; i >= 0; i-- {
			stack = append(stack, expandFrame{id: hyponyms[i], remaining: f.remaining - 1})
		}
	}
	logger.Debug("Expansion: descent complete.", "concepts", len(b.order))

	// Second pass: cross-link join points invisible from the descent.
	links := 0
	for _, id := range b.order {
		n := b.concepts[id]
		hypernyms, err := b.source.Hypernyms(id)
		if err != nil {
			return fmt.Errorf("%w: hypernyms of %s: %w", ErrBuildFailed, id, err)
		}
		for _, h := range hypernyms {
			parent, ok := b.concepts[h]
			if !ok || n.HasParent(parent) {
				continue
			}
			if err := parent.AddChild(n); err != nil {
				return fmt.Errorf("%w: cross-link %s -> %s: %w", ErrBuildFailed, h, id, err)
			}
			links++
		}
	}
	logger.Debug("Expansion: cross-linking complete.", "links_added", links)

	logger.Info("Expansion complete.", "graph_id", b.graph.ID(), "nodes", b.index.Len())
	return nil
}
