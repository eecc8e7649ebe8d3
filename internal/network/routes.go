package network

import "roadnet/internal/logger"

// BuildRoutes traverses the spanning tree depth-first and, for every leaf
// node, synthesises Hops from each prefix pair (i, i+1..k-1) of the
// root-to-leaf path (see spec §4.5). Exits with heading 270 are excluded
// from the routing table; this is a preserved quirk of the source system,
// not a bug — see DESIGN.md.
func (n *Network) BuildRoutes() {
	n.routing = make(Routing)
	if len(n.tree) == 0 {
		return
	}
	var path []int
	n.walkRoutePaths(0, &path)
	n.logger.Debug("routing table built", logger.F("hops", len(n.routing)))
}

func (n *Network) walkRoutePaths(idx int, path *[]int) {
	*path = append(*path, idx)
	defer func() { *path = (*path)[:len(*path)-1] }()

	node := n.tree[idx]
	if len(node.children) == 0 {
		n.emitHopsForPath(*path)
		return
	}
	for _, c := range node.children {
		n.walkRoutePaths(c, path)
	}
}

func (n *Network) emitHopsForPath(path []int) {
	for i := 0; i < len(path)-1; i++ {
		src := n.tree[path[i]].junctionID
		nxt := n.tree[path[i+1]].junctionID

		exitHeading, found := n.exitHeadingTo(src, nxt)
		if !found || exitHeading == 270 {
			continue
		}

		for j := i + 1; j < len(path); j++ {
			dst := n.tree[path[j]].junctionID
			n.routing[Hop{Junction: src, DestJunction: dst, ExitHeading: exitHeading}] = struct{}{}
		}
	}
}

// exitHeadingTo finds the heading of the exit of junction src that leads,
// via a shared link, to junction nxt.
func (n *Network) exitHeadingTo(src, nxt uint32) (uint32, bool) {
	srcJunction, ok := n.GetJunction(src)
	if !ok {
		return 0, false
	}
	for _, e := range srcJunction.Exits {
		link, ok := n.links[e.LinkID]
		if !ok {
			continue
		}
		if other, ok := link.OtherEndpoint(src); ok && other == nxt {
			return e.ExitHeading, true
		}
	}
	return 0, false
}

// Route performs a linear scan of the routing table: it returns a Hop h
// with h.Junction == junctionID such that either toDest and
// h.DestJunction == dest, or !toDest and h.DestJunction == source. The
// table is a map, so when several hops match, which one is returned is
// not defined.
func (n *Network) Route(junctionID, source, dest uint32, toDest bool) (Hop, bool) {
	for h := range n.routing {
		if h.Junction != junctionID {
			continue
		}
		if toDest && h.DestJunction == dest {
			return h, true
		}
		if !toDest && h.DestJunction == source {
			return h, true
		}
	}
	return Hop{}, false
}
