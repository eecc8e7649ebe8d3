package network

import (
	"roadnet/internal/domain"
	"roadnet/internal/logger"
)

// BuildSpanningTree performs a depth-first traversal from junction 1 over
// each junction's exits in stored order, building the DFS spanning tree
// in n.tree. For each exit, the far endpoint of its link is computed (the
// link's destination if its origin is the current junction, else its
// origin); if either the link or that endpoint is missing, the branch is
// skipped. A junction is added to the tree the first time it is
// discovered; junctions already in the tree terminate that branch without
// adding a node.
func (n *Network) BuildSpanningTree() {
	n.tree = nil

	root, ok := n.GetJunction(1)
	if !ok {
		n.logger.Warn("BuildSpanningTree: no junction 1, spanning tree is empty")
		return
	}

	visited := map[uint32]bool{1: true}
	rootIdx := n.addTreeNode(1, -1)
	n.walkSpanningTree(rootIdx, root, visited)

	n.logger.Debug("spanning tree built", logger.F("nodes", len(n.tree)))
}

func (n *Network) addTreeNode(junctionID uint32, parent int) int {
	idx := len(n.tree)
	n.tree = append(n.tree, spanningNode{junctionID: junctionID, parent: parent})
	if parent >= 0 {
		n.tree[parent].children = append(n.tree[parent].children, idx)
	}
	return idx
}

func (n *Network) walkSpanningTree(nodeIdx int, j domain.Junction, visited map[uint32]bool) {
	for _, exit := range j.Exits {
		link, ok := n.links[exit.LinkID]
		if !ok {
			continue
		}
		other, ok := link.OtherEndpoint(j.ID)
		if !ok || visited[other] {
			continue
		}
		visited[other] = true
		childIdx := n.addTreeNode(other, nodeIdx)
		if childJunction, ok := n.GetJunction(other); ok {
			n.walkSpanningTree(childIdx, childJunction, visited)
		}
	}
}
