package domain

// reciprocal returns the opposite compass heading of h: the direction one
// would leave along if reversing.
func reciprocal(h uint32) uint32 {
	return (h + 180) % 360
}

// normalise reduces i by repeated steps of 360 until it lies in [0,360).
func normalise(i int) uint32 {
	i %= 360
	if i < 0 {
		i += 360
	}
	return uint32(i)
}

// hemisphere returns 0 for headings in the northern half-plane straddling
// 0° ([0,90) ∪ [270,360)), 1 otherwise. Used to break ties between two
// exits equidistant in angle but on opposite sides.
func hemisphere(h uint32) int {
	if h < 90 || h >= 270 {
		return 0
	}
	return 1
}

// angularDistance is the absolute difference between two headings folded
// into [0,180].
func angularDistance(a, b uint32) uint32 {
	var d uint32
	if a > b {
		d = a - b
	} else {
		d = b - a
	}
	if d > 180 {
		d = 360 - d
	}
	return d
}

// FindEntry returns the index of the exit whose heading most closely
// matches the reciprocal of arrivalHeading — the exit one would have
// departed along to arrive travelling in that direction. Ties break to
// the lowest index.
func (j Junction) FindEntry(arrivalHeading uint32) int {
	target := reciprocal(arrivalHeading)
	best := -1
	var bestDist uint32
	for i, e := range j.Exits {
		d := angularDistance(e.ExitHeading, target)
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best == -1 {
		return NoExit
	}
	return best
}

// FindExitFromHeading returns the index of the exit whose heading most
// closely matches desiredHeading, restricted to exits in the same
// hemisphere as desiredHeading. Returns NoExit if no such exit exists.
func (j Junction) FindExitFromHeading(desiredHeading uint32) int {
	hemi := hemisphere(desiredHeading)
	best := -1
	var bestDist uint32
	for i, e := range j.Exits {
		if hemisphere(e.ExitHeading) != hemi {
			continue
		}
		d := angularDistance(e.ExitHeading, desiredHeading)
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best == -1 {
		return NoExit
	}
	return best
}

// FindRelativeExit returns the index n positions before entryIndex in the
// junction's exit order: (entryIndex - n) mod len(Exits), with the modulus
// folded into [0, len(Exits)). n=0 returns entryIndex itself. Exits are
// ordered by ascending heading and headings grow counter-clockwise, so
// each step of n moves one exit clockwise.
func (j Junction) FindRelativeExit(entryIndex int, n uint8) int {
	if len(j.Exits) == 0 {
		return NoExit
	}
	size := len(j.Exits)
	idx := (entryIndex - int(n)) % size
	if idx < 0 {
		idx += size
	}
	return idx
}

// FindExitFromTurnDirection synthesises an absolute desired heading
// relative to the reciprocal of the entry exit (the direction the
// traveller is heading into the junction) and delegates to
// FindExitFromHeading.
func (j Junction) FindExitFromTurnDirection(entryIndex int, turn TurnDirection) int {
	if entryIndex < 0 || entryIndex >= len(j.Exits) {
		return NoExit
	}
	into := reciprocal(j.Exits[entryIndex].ExitHeading)
	var desired uint32
	switch turn {
	case Straight:
		desired = normalise(int(into))
	case Left:
		desired = normalise(int(into) + 90)
	case Right:
		desired = normalise(int(into) - 90)
	case UTurn:
		desired = normalise(int(into) + 180)
	default:
		return NoExit
	}
	return j.FindExitFromHeading(desired)
}

// compassHeadings maps each CompassDirection to its fixed heading in this
// system's CCW-from-North convention (East=270°, West=90°). This mapping
// is preserved exactly per the design notes; see DESIGN.md.
var compassHeadings = map[CompassDirection]uint32{
	North:     0,
	NorthWest: 45,
	West:      90,
	SouthWest: 135,
	South:     180,
	SouthEast: 225,
	East:      270,
	NorthEast: 315,
}

// FindExitFromCompass maps dir to its fixed heading and delegates to
// FindExitFromHeading.
func (j Junction) FindExitFromCompass(dir CompassDirection) int {
	h, ok := compassHeadings[dir]
	if !ok {
		return NoExit
	}
	return j.FindExitFromHeading(h)
}
