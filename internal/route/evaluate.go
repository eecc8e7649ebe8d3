package route

import (
	"math"

	"roadnet/internal/domain"
	"roadnet/internal/network"
)

// Hop is one step taken during evaluation: the junction reached and the
// index of the exit chosen there.
type Hop struct {
	JunctionID uint32
	ExitIndex  int
}

// Evaluate walks r through n junction by junction, following the chosen
// exit's link at each step, and returns the ordered hops actually taken.
// Evaluation stops early — returning the hops taken so far — when the
// upcoming junction is absent, or continues to the next pattern when the
// chosen exit is "none".
func Evaluate(n *network.Network, r domain.Route) []Hop {
	link, ok := n.GetLink(r.StartLink)
	if !ok {
		return nil
	}
	travDir := r.TravDir

	var hops []Hop
	for _, tp := range r.Patterns {
		limit := tp.Multiplicity.Count
		for i := uint32(0); tp.Multiplicity.Always || i < limit; i++ {
			heading, upcomingID, present := arrival(link, travDir)
			if !present {
				return hops
			}
			upcoming, ok := n.GetJunction(upcomingID)
			if !ok {
				return hops
			}

			entry := upcoming.FindEntry(heading)
			exitIdx := dispatchTurn(upcoming, entry, tp.Turn)
			if exitIdx == domain.NoExit {
				break
			}
			hops = append(hops, Hop{JunctionID: upcomingID, ExitIndex: exitIdx})

			chosen := upcoming.Exits[exitIdx]
			newLink, ok := n.GetLink(chosen.LinkID)
			if !ok {
				return hops
			}
			if newLink.Origin == upcomingID {
				travDir = 1
			}
			if newLink.Destination == upcomingID {
				travDir = -1
			}
			link = newLink
		}
	}
	return hops
}

// arrival computes the arriving heading and upcoming junction id for link
// under travDir, and whether that junction is present.
func arrival(link domain.Link, travDir int32) (heading uint32, upcomingID uint32, present bool) {
	if travDir == 1 {
		upcomingID = link.Destination
		present = link.HasDestination()
		if seg, ok := link.LastSegment(); ok {
			heading = headingFromDegrees(seg.H)
		}
		return
	}
	upcomingID = link.Origin
	present = link.HasOrigin()
	if seg, ok := link.FirstSegment(); ok {
		heading = headingFromDegrees(seg.H + 180)
	}
	return
}

func headingFromDegrees(h float64) uint32 {
	i := int(math.Round(h)) % 360
	if i < 0 {
		i += 360
	}
	return uint32(i)
}

func dispatchTurn(j domain.Junction, entry int, turn domain.Turn) int {
	switch t := turn.(type) {
	case domain.RelativeTurn:
		return j.FindExitFromTurnDirection(entry, t.Direction)
	case domain.CompassTurn:
		return j.FindExitFromCompass(t.Direction)
	case domain.ExitTurn:
		return j.FindRelativeExit(entry, t.N)
	case domain.HeadingTurn:
		return j.FindExitFromHeading(t.Heading)
	default:
		return domain.NoExit
	}
}
