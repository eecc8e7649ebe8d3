package telemetry

import "go.opentelemetry.io/otel/attribute"

// JunctionAttributes returns span attributes identifying a junction.
func JunctionAttributes(prefix string, junctionID uint32) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int64(prefix+".id", int64(junctionID)),
	}
}

// HopAttributes returns span attributes describing a routing-table hop.
func HopAttributes(prefix string, junction, dest uint32, exitHeading uint32) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int64(prefix+".junction", int64(junction)),
		attribute.Int64(prefix+".dest_junction", int64(dest)),
		attribute.Int64(prefix+".exit_heading", int64(exitHeading)),
	}
}

// CountAttributes returns span attributes for a simple named count, used
// to record the size of a loaded collection or a produced result set.
func CountAttributes(name string, n int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int(name+".count", n),
	}
}
