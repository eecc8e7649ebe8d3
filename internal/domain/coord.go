package domain

// InertialCoord is a position in the world (inertial) frame.
type InertialCoord struct {
	X, Y, Z float64
}

// LogicalCoord is a position relative to a LogicalAddress: Offset is
// lateral displacement from the link's centreline, Distance is the
// along-link distance, and Loft is vertical displacement.
type LogicalCoord struct {
	Addr     LogicalAddress
	Offset   float64
	Distance float64
	Loft     float64
}
