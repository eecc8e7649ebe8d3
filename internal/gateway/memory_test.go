package gateway

import "testing"

func TestMemory_RoundTripsRecords(t *testing.T) {
	m := NewMemory(nil,
		[]LinkRecord{{ID: 1, Origin: 1, Destination: 2}},
		[]JunctionRecord{{ID: 1}, {ID: 2}},
		[]JunctionLinkRecord{{JunctionID: 1, LinkID: 1, ExitHeading: 0}},
		[]TileRecord{{TileID: 1, LinkID: 1}},
		[]SegmentRecord{{TileID: 1, H: 0, Type: 0}},
	)

	links, err := m.Links()
	if err != nil || len(links) != 1 {
		t.Fatalf("Links() = %v, %v", links, err)
	}
	junctions, err := m.Junctions()
	if err != nil || len(junctions) != 2 {
		t.Fatalf("Junctions() = %v, %v", junctions, err)
	}
	jl, err := m.JunctionLinks()
	if err != nil || len(jl) != 1 {
		t.Fatalf("JunctionLinks() = %v, %v", jl, err)
	}
	tiles, err := m.Tiles()
	if err != nil || len(tiles) != 1 {
		t.Fatalf("Tiles() = %v, %v", tiles, err)
	}
	segments, err := m.Segments()
	if err != nil || len(segments) != 1 {
		t.Fatalf("Segments() = %v, %v", segments, err)
	}
}

func TestMemory_NilLoggerDefaultsToNop(t *testing.T) {
	m := NewMemory(nil, nil, nil, nil, nil, nil)
	if links, err := m.Links(); err != nil || len(links) != 0 {
		t.Fatalf("Links() = %v, %v", links, err)
	}
}
