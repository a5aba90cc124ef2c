package core

// Relabel recomputes Size, Depth and DistanceToTerm for every node of the
// tree rooted at root, bottom-up in one pass.
//
// Metadata is never patched incrementally anywhere in evotree: after any
// structural edit (synthesis assembly, mutation splice, crossover splice)
// the whole tree is relabeled, which keeps the derived values correct
// under arbitrary subtree replacement. Relabeling an unchanged tree is
// idempotent. A nil root is a no-op.
//
// Complexity: O(n) over the node count.
func Relabel(root *Node) {
	if root == nil {
		return
	}
	relabel(root, 1)
}

// relabel assigns depth to n and returns (size, height) of its subtree.
func relabel(n *Node, depth int) (size, height int) {
	n.depth = depth

	children := n.Children()
	if len(children) == 0 {
		n.size = 1
		n.distToTerm = 1

		return 1, 1
	}

	total, maxHeight := 0, 0
	for _, c := range children {
		s, h := relabel(c, depth+1)
		total += s
		if h > maxHeight {
			maxHeight = h
		}
	}
	n.size = 1 + total
	n.distToTerm = 1 + maxHeight

	return n.size, n.distToTerm
}
