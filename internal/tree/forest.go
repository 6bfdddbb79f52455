// Package tree builds a parent-linked forest from a flat record collection
// and provides the structure-preserving operations the process view needs:
// sibling sorting, context-preserving filtering, and flattening into
// tree-decorated display rows.
//
// The package is generic over the record type so the forest machinery can be
// tested without dragging in OS process data. Records identify themselves and
// name their parent through the Item constraint; parents that are absent from
// the record set are tolerated (the record becomes a root), and parent chains
// that revisit an identity are broken deterministically by treating the
// offending record as a root.
package tree

import (
	"iter"
	"sort"
)

// Item is the contract a record must satisfy to participate in a forest. The
// T type parameter is the implementing type itself, which lets
// AccumulateFrom merge duplicate-identity records without reflection.
type Item[T any, ID comparable] interface {
	// ID returns the record's identity within one snapshot.
	ID() ID
	// ParentID returns the identity of the record's parent, if it has one.
	// The returned identity may not exist in the snapshot.
	ParentID() (ID, bool)
	// AccumulateFrom folds another record with the same identity into this
	// one, summing its resource metrics.
	AccumulateFrom(other T)
}

// Node wraps a record together with its owned children. Tree shape is fixed
// at build time; only sibling order changes afterwards, via SortBy.
type Node[T Item[T, ID], ID comparable] struct {
	Value    T
	children []*Node[T, ID]
}

// Children returns the node's children in their current order.
func (n *Node[T, ID]) Children() []*Node[T, ID] { return n.children }

// Forest is an ordered collection of root nodes. It is rebuilt from scratch
// on every refresh; identities must not be trusted across snapshots.
type Forest[T Item[T, ID], ID comparable] struct {
	roots []*Node[T, ID]
}

// New returns an empty forest.
func New[T Item[T, ID], ID comparable]() *Forest[T, ID] {
	return &Forest[T, ID]{}
}

// Roots returns the root nodes in their current order.
func (f *Forest[T, ID]) Roots() []*Node[T, ID] { return f.roots }

// Build constructs a forest from a flat record collection. Records whose
// parent is present in the collection become children of that parent; all
// others become roots. Roots and children keep input order, so construction
// is deterministic for a fixed input order. A record sharing an identity with
// an earlier record is folded into the existing node via AccumulateFrom.
func Build[T Item[T, ID], ID comparable](records []T) *Forest[T, ID] {
	nodes := make(map[ID]*Node[T, ID], len(records))
	order := make([]*Node[T, ID], 0, len(records))
	parents := make(map[ID]ID, len(records))

	for _, rec := range records {
		id := rec.ID()
		if existing, ok := nodes[id]; ok {
			existing.Value.AccumulateFrom(rec)
			continue
		}
		n := &Node[T, ID]{Value: rec}
		nodes[id] = n
		order = append(order, n)
		if pid, ok := rec.ParentID(); ok {
			parents[id] = pid
		}
	}

	f := &Forest[T, ID]{roots: make([]*Node[T, ID], 0, len(order))}
	for _, n := range order {
		id := n.Value.ID()
		pid, ok := parents[id]
		if !ok || nodes[pid] == nil || pid == id || revisits(id, parents) {
			f.roots = append(f.roots, n)
			continue
		}
		parent := nodes[pid]
		parent.children = append(parent.children, n)
	}
	return f
}

// revisits reports whether the raw ancestor chain starting at id visits some
// identity twice. The chain ends at the first identity with no recorded
// parent, which covers parents missing from the snapshot.
func revisits[ID comparable](id ID, parents map[ID]ID) bool {
	seen := map[ID]struct{}{id: {}}
	cur := id
	for {
		p, ok := parents[cur]
		if !ok {
			return false
		}
		if _, dup := seen[p]; dup {
			return true
		}
		seen[p] = struct{}{}
		cur = p
	}
}

// SortBy recursively reorders the root list and every node's children using
// cmp. Tree shape is unchanged; the sort is stable, so equal elements keep
// their relative order.
func (f *Forest[T, ID]) SortBy(cmp func(a, b T) int) {
	sortNodes(f.roots, cmp)
}

func sortNodes[T Item[T, ID], ID comparable](nodes []*Node[T, ID], cmp func(a, b T) int) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return cmp(nodes[i].Value, nodes[j].Value) < 0
	})
	for _, n := range nodes {
		sortNodes(n.children, cmp)
	}
}

// Filter returns a new forest retaining every node that satisfies pred,
// every ancestor of such a node, and every descendant of such a node, so a
// match is always shown with its full process lineage. The receiver is left
// untouched.
func (f *Forest[T, ID]) Filter(pred func(T) bool) *Forest[T, ID] {
	return &Forest[T, ID]{roots: filterNodes(f.roots, pred, false)}
}

func filterNodes[T Item[T, ID], ID comparable](nodes []*Node[T, ID], pred func(T) bool, ancestorMatched bool) []*Node[T, ID] {
	var kept []*Node[T, ID]
	for _, n := range nodes {
		self := pred(n.Value)
		children := filterNodes(n.children, pred, ancestorMatched || self)
		// Keep the node when it matches, sits below a match, or has a
		// matching node somewhere in its subtree.
		if self || ancestorMatched || len(children) > 0 {
			kept = append(kept, &Node[T, ID]{Value: n.Value, children: children})
		}
	}
	return kept
}

// All returns a restartable depth-first pre-order iterator over every node.
func (f *Forest[T, ID]) All() iter.Seq[*Node[T, ID]] {
	return func(yield func(*Node[T, ID]) bool) {
		walkNodes(f.roots, yield)
	}
}

func walkNodes[T Item[T, ID], ID comparable](nodes []*Node[T, ID], yield func(*Node[T, ID]) bool) bool {
	for _, n := range nodes {
		if !yield(n) {
			return false
		}
		if !walkNodes(n.children, yield) {
			return false
		}
	}
	return true
}
