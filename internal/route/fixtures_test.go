package route

import (
	"roadnet/internal/gateway"
	"roadnet/internal/network"
)

// These fixtures stand in for spec.md §8's "fivelinks" seed scenarios.
// No fivelinks fixture data (the database those scenarios were run
// against) is available to this repository, so corridorNetwork and
// danglingNetwork are self-authored topologies, not a reconstruction of
// the original fixture's link numbering. Each junction-walk test in
// evaluate_test.go hand-traces the resolver algorithm against these
// fixtures. TestEvaluate_RelativeStraightFollowsCorridor uses the route
// string of spec.md §8 scenario 5 and yields the same hops on
// corridorNetwork; no test covers scenario 6.

// corridorNetwork is a six-junction network: a straight three-hop
// corridor (1 -> 2 -> 3 -> 4, all northbound) off junction 1, plus two
// dead-end spurs to the west and east (junctions 5 and 6) — enough
// cardinal variety to exercise the resolver's hemisphere tie-breaking
// while keeping every exit heading hand-traceable.
func corridorNetwork() *network.Network {
	links := []gateway.LinkRecord{
		{ID: 1, Origin: 1, Destination: 2},
		{ID: 2, Origin: 2, Destination: 3},
		{ID: 3, Origin: 3, Destination: 4},
		{ID: 4, Origin: 1, Destination: 5},
		{ID: 5, Origin: 1, Destination: 6},
	}
	junctions := []gateway.JunctionRecord{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}, {ID: 6}}
	junctionLinks := []gateway.JunctionLinkRecord{
		{JunctionID: 1, LinkID: 1, ExitHeading: 0},
		{JunctionID: 1, LinkID: 4, ExitHeading: 90},
		{JunctionID: 1, LinkID: 5, ExitHeading: 270},
		{JunctionID: 2, LinkID: 2, ExitHeading: 0},
		{JunctionID: 2, LinkID: 1, ExitHeading: 180},
		{JunctionID: 3, LinkID: 3, ExitHeading: 0},
		{JunctionID: 3, LinkID: 2, ExitHeading: 180},
		{JunctionID: 4, LinkID: 3, ExitHeading: 180},
		{JunctionID: 5, LinkID: 4, ExitHeading: 270},
		{JunctionID: 6, LinkID: 5, ExitHeading: 90},
	}
	tiles := []gateway.TileRecord{
		{TileID: 1, LinkID: 1},
		{TileID: 2, LinkID: 2},
		{TileID: 3, LinkID: 3},
		{TileID: 4, LinkID: 4},
		{TileID: 5, LinkID: 5},
	}
	segments := []gateway.SegmentRecord{
		{TileID: 1, H: 0},
		{TileID: 2, H: 0},
		{TileID: 3, H: 0},
		{TileID: 4, H: 90},
		{TileID: 5, H: 270},
	}

	gw := gateway.NewMemory(nil, links, junctions, junctionLinks, tiles, segments)
	return network.Load(gw)
}

// danglingNetwork is two junctions joined by a link whose far end then
// trails off into a link with no recorded destination, exercising the
// "upcoming junction absent" termination path.
func danglingNetwork() *network.Network {
	links := []gateway.LinkRecord{
		{ID: 1, Origin: 1, Destination: 2},
		{ID: 2, Origin: 2, Destination: 0},
	}
	junctions := []gateway.JunctionRecord{{ID: 1}, {ID: 2}}
	junctionLinks := []gateway.JunctionLinkRecord{
		{JunctionID: 1, LinkID: 1, ExitHeading: 0},
		{JunctionID: 2, LinkID: 2, ExitHeading: 0},
		{JunctionID: 2, LinkID: 1, ExitHeading: 180},
	}
	tiles := []gateway.TileRecord{{TileID: 1, LinkID: 1}, {TileID: 2, LinkID: 2}}
	segments := []gateway.SegmentRecord{{TileID: 1, H: 0}, {TileID: 2, H: 0}}

	gw := gateway.NewMemory(nil, links, junctions, junctionLinks, tiles, segments)
	return network.Load(gw)
}
