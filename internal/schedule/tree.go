package schedule

import (
	"sort"

	"github.com/Emilyfan-learn/Project-manage/internal/domain"
)

// TreeNode wraps a tracking item for hierarchical presentation. Metrics are
// filled in by the caller when the tree is built from a metrics-annotated
// listing. Orphaned marks items whose parent reference did not resolve within
// the input set; such items are kept as roots rather than dropped, and the
// flag lets callers surface the data gap instead of hiding it.
type TreeNode struct {
	Item     *domain.TrackingItem
	Metrics  Metrics
	Level    int
	Orphaned bool
	Children []*TreeNode
}

// BuildTree assembles a forest from a flat item list. Parent references
// resolve by item ID within the input set only; an item whose parent is
// missing becomes an orphaned root. Siblings at every level, and the root
// list itself, are ordered by natural WBS order.
//
// Cyclic parent chains are an external-data error: assembly still terminates
// (there is no traversal during linking), but the resulting forest may nest a
// node under its own descendant.
func BuildTree(items []*domain.TrackingItem) []*TreeNode {
	nodes := make(map[string]*TreeNode, len(items))
	for _, item := range items {
		nodes[item.ItemID] = &TreeNode{Item: item, Level: item.Level()}
	}

	var roots []*TreeNode
	for _, item := range items {
		node := nodes[item.ItemID]
		if item.ParentID != nil && *item.ParentID != "" {
			if parent, ok := nodes[*item.ParentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
			node.Orphaned = true
		}
		roots = append(roots, node)
	}

	sortForest(roots)
	return roots
}

func sortForest(nodes []*TreeNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return CompareWBSIDs(nodes[i].Item.WBSID, nodes[j].Item.WBSID) < 0
	})
	for _, n := range nodes {
		if len(n.Children) > 0 {
			sortForest(n.Children)
		}
	}
}

// Flatten walks the forest depth-first, parents before children, preserving
// the sibling order established by BuildTree.
func Flatten(roots []*TreeNode) []*TreeNode {
	var out []*TreeNode
	var walk func([]*TreeNode)
	walk = func(nodes []*TreeNode) {
		for _, n := range nodes {
			out = append(out, n)
			walk(n.Children)
		}
	}
	walk(roots)
	return out
}
