package tree

import "strings"

// Tree-drawing glyphs in the conventional pstree style. Each ancestor level
// contributes either a continuation bar (that ancestor has following
// siblings) or a blank, and the node itself contributes a tee or, when it is
// its parent's last child, a corner.
const (
	glyphBar    = "│   "
	glyphBlank  = "    "
	glyphTee    = "├── "
	glyphCorner = "└── "
)

// Row is one line of the flattened forest: the prefix conveying depth and
// sibling position, and the node it stands for. Rows are a projection for
// rendering and cursor resolution only; they are recomputed after every sort
// or filter and never stored as the source of truth for selection.
type Row[T Item[T, ID], ID comparable] struct {
	Prefix string
	Node   *Node[T, ID]
}

// FlattenWithPrefixes walks the forest depth-first in pre-order and emits one
// tree-decorated row per node, honoring the current root and sibling order.
func (f *Forest[T, ID]) FlattenWithPrefixes() []Row[T, ID] {
	var rows []Row[T, ID]
	var walk func(nodes []*Node[T, ID], ancestry string)
	walk = func(nodes []*Node[T, ID], ancestry string) {
		for i, n := range nodes {
			branch, continuation := glyphTee, glyphBar
			if i == len(nodes)-1 {
				branch, continuation = glyphCorner, glyphBlank
			}
			rows = append(rows, Row[T, ID]{Prefix: ancestry + branch, Node: n})
			walk(n.children, ancestry+continuation)
		}
	}
	walk(f.roots, "")
	return rows
}

// Depth returns the nesting level encoded in the row's prefix, with roots at
// depth zero.
func (r Row[T, ID]) Depth() int {
	return strings.Count(r.Prefix, glyphBar) + strings.Count(r.Prefix, glyphBlank)
}
