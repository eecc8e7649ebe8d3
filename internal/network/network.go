// Package network assembles a routable Network from externally supplied
// record streams, builds its DFS spanning tree, and synthesises its
// junction-to-junction routing table.
package network

import (
	"sort"

	"roadnet/internal/domain"
	"roadnet/internal/gateway"
	"roadnet/internal/logger"
)

// Hop is a routing-table record: "at Junction, to reach DestJunction,
// leave by the exit with heading ExitHeading".
type Hop struct {
	Junction     uint32
	DestJunction uint32
	ExitHeading  uint32
}

// Routing is an unordered, deduplicated set of Hops.
type Routing map[Hop]struct{}

// spanningNode is one node of the DFS spanning tree, stored in an arena
// (Network.tree) and referenced by index rather than by pointer: parent
// and children are indices into the same slice, so the tree never forms
// an ownership cycle.
type spanningNode struct {
	junctionID uint32
	parent     int // -1 for the root
	children   []int
}

// Network is a loaded road graph: junctions, links (with their tiles and
// segments), a DFS spanning tree rooted at junction 1, and the routing
// table synthesised from it. It is built once by Load and is read-only
// for the lifetime of all queries.
type Network struct {
	logger logger.Logger

	junctions []domain.Junction // indexed by id-1; zero value if id unused
	hasJunc   []bool
	links     map[uint16]domain.Link

	tree    []spanningNode
	routing Routing
}

// Option customises a Network at construction time.
type Option func(*Network)

// WithLogger sets the logger used during loading and tree/table
// construction.
func WithLogger(l logger.Logger) Option {
	return func(n *Network) { n.logger = l }
}

// Load assembles a Network from the five record streams supplied by gw,
// then builds its spanning tree and routing table. Any storage failure
// yields an empty collection for that record kind — the network is still
// constructible — and is logged at Warn.
func Load(gw gateway.Gateways, opts ...Option) *Network {
	n := &Network{
		logger: &logger.NopLogger{},
		links:  make(map[uint16]domain.Link),
	}
	for _, opt := range opts {
		opt(n)
	}

	linkRecords, err := gw.Links()
	if err != nil {
		n.logger.Warn("Links: storage failure, continuing with empty collection", logger.F("err", err))
		linkRecords = nil
	}
	junctionRecords, err := gw.Junctions()
	if err != nil {
		n.logger.Warn("Junctions: storage failure, continuing with empty collection", logger.F("err", err))
		junctionRecords = nil
	}
	junctionLinkRecords, err := gw.JunctionLinks()
	if err != nil {
		n.logger.Warn("JunctionLinks: storage failure, continuing with empty collection", logger.F("err", err))
		junctionLinkRecords = nil
	}
	tileRecords, err := gw.Tiles()
	if err != nil {
		n.logger.Warn("Tiles: storage failure, continuing with empty collection", logger.F("err", err))
		tileRecords = nil
	}
	segmentRecords, err := gw.Segments()
	if err != nil {
		n.logger.Warn("Segments: storage failure, continuing with empty collection", logger.F("err", err))
		segmentRecords = nil
	}

	n.loadLinks(linkRecords, tileRecords, segmentRecords)
	n.loadJunctions(junctionRecords, junctionLinkRecords)

	n.logger.Debug("network loaded",
		logger.F("links", len(n.links)),
		logger.F("junctions", countTrue(n.hasJunc)),
	)

	n.BuildSpanningTree()
	n.BuildRoutes()
	return n
}

func countTrue(bs []bool) int {
	c := 0
	for _, b := range bs {
		if b {
			c++
		}
	}
	return c
}

// loadLinks populates n.links from linkRecords, attaching each link's
// tiles (grouped by link_id, in tile-record order) and each tile's
// segments (grouped by tile_id, in segment-record order).
func (n *Network) loadLinks(linkRecords []gateway.LinkRecord, tileRecords []gateway.TileRecord, segmentRecords []gateway.SegmentRecord) {
	segmentsByTile := make(map[uint16][]domain.Segment)
	for _, sr := range segmentRecords {
		segType := domain.StraightSegment
		if sr.Type != 0 {
			segType = domain.UnknownSegment
		}
		segmentsByTile[sr.TileID] = append(segmentsByTile[sr.TileID], domain.Segment{
			TileID: sr.TileID,
			X:      sr.X, Y: sr.Y, Z: sr.Z,
			H: sr.H, P: sr.P, R: sr.R,
			Type: segType,
		})
	}

	tilesByLink := make(map[uint16][]domain.Tile)
	for _, tr := range tileRecords {
		tilesByLink[tr.LinkID] = append(tilesByLink[tr.LinkID], domain.Tile{
			ID:       tr.TileID,
			LinkID:   tr.LinkID,
			Segments: segmentsByTile[tr.TileID],
		})
	}

	for _, lr := range linkRecords {
		n.links[lr.ID] = domain.Link{
			ID:          lr.ID,
			Origin:      lr.Origin,
			Destination: lr.Destination,
			Tiles:       tilesByLink[lr.ID],
		}
	}
}

// loadJunctions populates n.junctions from junctionRecords, attaching
// each junction's exits (grouped by junction_id, sorted by exit_heading
// ascending per the load-time ordering invariant).
func (n *Network) loadJunctions(junctionRecords []gateway.JunctionRecord, junctionLinkRecords []gateway.JunctionLinkRecord) {
	exitsByJunction := make(map[uint32][]domain.Exit)
	for _, jlr := range junctionLinkRecords {
		exitsByJunction[jlr.JunctionID] = append(exitsByJunction[jlr.JunctionID], domain.Exit{
			LinkID:      jlr.LinkID,
			ExitHeading: jlr.ExitHeading,
		})
	}
	for id, exits := range exitsByJunction {
		sort.Slice(exits, func(i, j int) bool { return exits[i].ExitHeading < exits[j].ExitHeading })
		exitsByJunction[id] = exits
	}

	maxID := uint32(0)
	for _, jr := range junctionRecords {
		if jr.ID > maxID {
			maxID = jr.ID
		}
	}
	n.junctions = make([]domain.Junction, maxID)
	n.hasJunc = make([]bool, maxID)
	for _, jr := range junctionRecords {
		idx := jr.ID - 1
		n.junctions[idx] = domain.Junction{ID: jr.ID, Exits: exitsByJunction[jr.ID]}
		n.hasJunc[idx] = true
	}
}

// GetJunction returns the junction with the given id (1-based) and
// whether it exists.
func (n *Network) GetJunction(id uint32) (domain.Junction, bool) {
	if id == 0 || id > uint32(len(n.junctions)) {
		return domain.Junction{}, false
	}
	idx := id - 1
	if !n.hasJunc[idx] {
		return domain.Junction{}, false
	}
	j := n.junctions[idx]
	n.logger.WithJunction(j).Debug("junction resolved")
	return j, true
}

// GetLink returns the link with the given id and whether it exists.
func (n *Network) GetLink(id uint16) (domain.Link, bool) {
	l, ok := n.links[id]
	return l, ok
}

// Routing returns the synthesised routing table. The returned map must
// not be mutated by callers.
func (n *Network) Routing() Routing {
	return n.routing
}
