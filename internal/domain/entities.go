package domain

// SegmentType classifies the geometric shape of a Segment. The reference
// curve module (see Curve) only distinguishes "straight" from everything
// else.
type SegmentType int

const (
	StraightSegment SegmentType = iota
	UnknownSegment
)

// Segment is one posed piece of a Tile, carrying an inertial pose
// (x, y, z, h, p, r) where h/p/r are heading/pitch/roll in degrees.
type Segment struct {
	TileID  uint16
	X, Y, Z float64
	H, P, R float64
	Type    SegmentType
}

// Tile is an ordered decomposition of a Link into posed Segments.
type Tile struct {
	ID       uint16
	LinkID   uint16
	Segments []Segment
}

// Exit is a directed adjacency from a Junction: the Link it leaves along,
// and the absolute compass heading (degrees, 0=North, CCW, normalised to
// [0,360)) of that departure.
type Exit struct {
	LinkID      uint16
	ExitHeading uint32
}

// NoExit is the sentinel index returned by the resolver when no exit
// satisfies a query.
const NoExit = -1

// Junction is a point where two or more links meet, identified by a
// 1-based id. Its Exits are ordered by ExitHeading ascending — the load
// order from the external source.
type Junction struct {
	ID    uint32
	Exits []Exit
}

// Link is a single directional road, identified by a 1-based id, joining
// an Origin junction to a Destination junction. It is traversable in
// either direction; Origin/Destination only give the nominal direction
// used to interpret Route.TravDir. Either endpoint may be absent (0 means
// "no such junction" — junction ids are 1-based, so 0 never names a real
// junction).
type Link struct {
	ID          uint16
	Origin      uint32
	Destination uint32
	Tiles       []Tile
}

// HasOrigin reports whether l has a recorded origin junction.
func (l Link) HasOrigin() bool { return l.Origin != 0 }

// HasDestination reports whether l has a recorded destination junction.
func (l Link) HasDestination() bool { return l.Destination != 0 }

// OtherEndpoint returns the junction at the far end of l from from, and
// whether one exists. If from matches neither endpoint (or the far
// endpoint is absent), ok is false.
func (l Link) OtherEndpoint(from uint32) (junction uint32, ok bool) {
	switch from {
	case l.Origin:
		return l.Destination, l.HasDestination()
	case l.Destination:
		return l.Origin, l.HasOrigin()
	default:
		return 0, false
	}
}

// FirstSegment returns the first segment of l in link-authored order (the
// first segment of its first tile), and whether one exists.
func (l Link) FirstSegment() (Segment, bool) {
	for _, t := range l.Tiles {
		if len(t.Segments) > 0 {
			return t.Segments[0], true
		}
	}
	return Segment{}, false
}

// LastSegment returns the last segment of l in link-authored order (the
// last segment of its last tile), and whether one exists.
func (l Link) LastSegment() (Segment, bool) {
	for i := len(l.Tiles) - 1; i >= 0; i-- {
		segs := l.Tiles[i].Segments
		if len(segs) > 0 {
			return segs[len(segs)-1], true
		}
	}
	return Segment{}, false
}
