package gateway

import (
	"sync"

	"roadnet/internal/logger"
)

// Memory is an in-memory Gateways implementation backed by fixed slices
// of records. It is concurrency-safe for read access and is the "fixture"
// data-source mode: tests and the CLI's fixture: mode construct one
// directly from a set of records rather than a database connection.
type Memory struct {
	lgr logger.Logger
	mu  sync.RWMutex

	links         []LinkRecord
	junctions     []JunctionRecord
	junctionLinks []JunctionLinkRecord
	tiles         []TileRecord
	segments      []SegmentRecord
}

// NewMemory builds a Memory gateway from already-materialised records.
func NewMemory(
	lgr logger.Logger,
	links []LinkRecord,
	junctions []JunctionRecord,
	junctionLinks []JunctionLinkRecord,
	tiles []TileRecord,
	segments []SegmentRecord,
) *Memory {
	if lgr == nil {
		lgr = &logger.NopLogger{}
	}
	m := &Memory{
		lgr:           lgr,
		links:         links,
		junctions:     junctions,
		junctionLinks: junctionLinks,
		tiles:         tiles,
		segments:      segments,
	}
	m.lgr.Debug("memory gateway initialized",
		logger.F("links", len(links)),
		logger.F("junctions", len(junctions)),
		logger.F("junction_links", len(junctionLinks)),
		logger.F("tiles", len(tiles)),
		logger.F("segments", len(segments)),
	)
	return m
}

func (m *Memory) Links() ([]LinkRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.lgr.Debug("Links: snapshot retrieved", logger.F("count", len(m.links)))
	return m.links, nil
}

func (m *Memory) Junctions() ([]JunctionRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.lgr.Debug("Junctions: snapshot retrieved", logger.F("count", len(m.junctions)))
	return m.junctions, nil
}

func (m *Memory) JunctionLinks() ([]JunctionLinkRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.lgr.Debug("JunctionLinks: snapshot retrieved", logger.F("count", len(m.junctionLinks)))
	return m.junctionLinks, nil
}

func (m *Memory) Tiles() ([]TileRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.lgr.Debug("Tiles: snapshot retrieved", logger.F("count", len(m.tiles)))
	return m.tiles, nil
}

func (m *Memory) Segments() ([]SegmentRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.lgr.Debug("Segments: snapshot retrieved", logger.F("count", len(m.segments)))
	return m.segments, nil
}
