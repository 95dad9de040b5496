// Package rowtree reconstructs nested object trees out of flat,
// denormalized join result sets. A query joining N one-to-many tables
// yields one row per innermost record, with the outer columns repeated;
// the builder folds such a row stream back into a forest of depth-N
// trees in a single linear pass.
package rowtree

// Level describes one nesting level of the reconstructed tree, from
// outermost to innermost.
type Level[R any] struct {
	// Key extracts the grouping key of this level from a row.
	Key func(row R) string

	// Start constructs a new node when the key changes. Nodes should be
	// pointers so later rows can keep appending into them.
	Start func(row R) any

	// Attach links a freshly started node into its parent's child slot.
	// parent is nil for the outermost level.
	Attach func(parent, node any)
}

// Builder folds an ordered row stream into a forest.
//
// The input must be pre-sorted by the same composite key order as the
// levels. With DedupeByKey unset the builder keeps a single cursor per
// level, exactly like the adapters it replaces: a key that reappears
// non-contiguously starts a second node for the same key. Set
// DedupeByKey to index nodes by their key path instead, so a
// reappearing key continues filling the node created first.
type Builder[R any] struct {
	Levels []Level[R]

	// Leaf applies a row's leaf-level side effects to the innermost
	// current node, e.g. appending an image reference. Optional.
	Leaf func(node any, row R)

	DedupeByKey bool
}

// frame is the cursor state of one level.
type frame struct {
	key  string
	node any
	set  bool
}

// Build runs the fold. It returns the outermost nodes in first-seen
// order. Empty input yields an empty forest.
func (b *Builder[R]) Build(rows []R) []any {
	var roots []any
	frames := make([]frame, len(b.Levels))

	var index map[string]any
	if b.DedupeByKey {
		index = make(map[string]any)
	}

	for _, row := range rows {
		pathKey := ""
		for i, level := range b.Levels {
			key := level.Key(row)
			pathKey += "\x00" + key

			if frames[i].set && frames[i].key == key {
				continue
			}

			// Key changed at this level: deeper cursors are stale.
			for j := i; j < len(frames); j++ {
				frames[j] = frame{}
			}

			if b.DedupeByKey {
				if node, ok := index[pathKey]; ok {
					frames[i] = frame{key: key, node: node, set: true}
					continue
				}
			}

			node := level.Start(row)
			if i == 0 {
				roots = append(roots, node)
				if level.Attach != nil {
					level.Attach(nil, node)
				}
			} else {
				level.Attach(frames[i-1].node, node)
			}
			if b.DedupeByKey {
				index[pathKey] = node
			}
			frames[i] = frame{key: key, node: node, set: true}
		}

		if b.Leaf != nil && len(frames) > 0 {
			b.Leaf(frames[len(frames)-1].node, row)
		}
	}

	return roots
}
