// Package sqlgateway implements the gateway contracts against a relational
// store via pgx, for deployments that keep the road network in Postgres
// rather than the fixture-backed in-memory gateway.
package sqlgateway

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"roadnet/internal/gateway"
	"roadnet/internal/logger"
)

// SQLGateway implements gateway.Gateways against a connection pool. Each
// method issues one query; callers construct a fresh Network from the
// results once at startup (see spec.md §5 — the network is read-only after
// construction, so no caching layer is needed here).
type SQLGateway struct {
	pool *pgxpool.Pool
	lgr  logger.Logger
}

// Connect opens a pool against dsn and returns a SQLGateway backed by it.
func Connect(ctx context.Context, dsn string, lgr logger.Logger) (*SQLGateway, error) {
	if lgr == nil {
		lgr = &logger.NopLogger{}
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	lgr.Info("sqlgateway: connected")
	return &SQLGateway{pool: pool, lgr: lgr}, nil
}

// Close releases the underlying connection pool.
func (g *SQLGateway) Close() { g.pool.Close() }

func (g *SQLGateway) Links() ([]gateway.LinkRecord, error) {
	rows, err := g.pool.Query(context.Background(), `SELECT id, origin, destination FROM links`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []gateway.LinkRecord
	for rows.Next() {
		var r gateway.LinkRecord
		if err := rows.Scan(&r.ID, &r.Origin, &r.Destination); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	g.lgr.Debug("Links: queried", logger.F("count", len(out)))
	return out, rows.Err()
}

func (g *SQLGateway) Junctions() ([]gateway.JunctionRecord, error) {
	rows, err := g.pool.Query(context.Background(), `SELECT id FROM junctions`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []gateway.JunctionRecord
	for rows.Next() {
		var r gateway.JunctionRecord
		if err := rows.Scan(&r.ID); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	g.lgr.Debug("Junctions: queried", logger.F("count", len(out)))
	return out, rows.Err()
}

// JunctionLinks selects ordered by (junc_id, exit) per spec.md §6, the
// order the junction_links stream is defined to have. Network sorts each
// junction's exits by ExitHeading again at load time; that sort is not
// stable, so the order of exits with equal headings is not defined.
func (g *SQLGateway) JunctionLinks() ([]gateway.JunctionLinkRecord, error) {
	rows, err := g.pool.Query(context.Background(),
		`SELECT junc_id, link_id, exit FROM junction_links ORDER BY junc_id, exit`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []gateway.JunctionLinkRecord
	for rows.Next() {
		var r gateway.JunctionLinkRecord
		if err := rows.Scan(&r.JunctionID, &r.LinkID, &r.ExitHeading); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	g.lgr.Debug("JunctionLinks: queried", logger.F("count", len(out)))
	return out, rows.Err()
}

func (g *SQLGateway) Tiles() ([]gateway.TileRecord, error) {
	rows, err := g.pool.Query(context.Background(), `SELECT tile_id, link_id FROM tiles`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []gateway.TileRecord
	for rows.Next() {
		var r gateway.TileRecord
		if err := rows.Scan(&r.TileID, &r.LinkID); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	g.lgr.Debug("Tiles: queried", logger.F("count", len(out)))
	return out, rows.Err()
}

func (g *SQLGateway) Segments() ([]gateway.SegmentRecord, error) {
	rows, err := g.pool.Query(context.Background(),
		`SELECT tile_id, x, y, z, h, p, r, type FROM segments`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []gateway.SegmentRecord
	for rows.Next() {
		var rec gateway.SegmentRecord
		if err := rows.Scan(&rec.TileID, &rec.X, &rec.Y, &rec.Z, &rec.H, &rec.P, &rec.R, &rec.Type); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	g.lgr.Debug("Segments: queried", logger.F("count", len(out)))
	return out, rows.Err()
}
