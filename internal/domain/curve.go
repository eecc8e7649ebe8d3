package domain

// Curve is the reference geometric-curve module: a placeholder. Real
// curve evaluation (spirals, clothoids, elevation profiles) belongs to a
// production geometry engine; this core only needs "infinite straight"
// behaviour, so both conversions are stubs that copy the three scalars
// through unchanged.
type Curve struct {
	Points []InertialCoord
}

// LogicalToInertial converts a LogicalCoord to an InertialCoord. Stub: x
// takes offset, y takes distance, z takes loft.
func (c Curve) LogicalToInertial(lc LogicalCoord) InertialCoord {
	return InertialCoord{X: lc.Offset, Y: lc.Distance, Z: lc.Loft}
}

// InertialToLogical converts an InertialCoord to a LogicalCoord anchored
// at addr. Stub: offset takes x, distance takes y, loft takes z.
func (c Curve) InertialToLogical(addr LogicalAddress, ic InertialCoord) LogicalCoord {
	return LogicalCoord{Addr: addr, Distance: ic.Y, Offset: ic.X, Loft: ic.Z}
}
