// Package discovery resolves the address of the road-network data source
// (typically a Postgres host) from one of a handful of configured modes,
// rather than requiring a hardcoded address.
package discovery

import (
	"context"
	"fmt"
	"net"
	"strings"

	"roadnet/internal/config"
	"roadnet/internal/logger"
)

// Resolve returns the list of candidate "host:port" addresses for cfg's
// mode. An empty result (not an error) means resolution ran but found
// nothing; callers decide whether that is fatal.
func Resolve(ctx context.Context, cfg config.DiscoveryConfig, lgr logger.Logger) ([]string, error) {
	if lgr == nil {
		lgr = &logger.NopLogger{}
	}
	switch cfg.Mode {
	case "static":
		return cfg.Peers, nil
	case "dns":
		return resolveDNS(ctx, cfg, lgr)
	case "route53":
		return resolveRoute53(ctx, cfg, lgr)
	default:
		return nil, fmt.Errorf("discovery: unsupported mode %q", cfg.Mode)
	}
}

// resolveDNS performs an SRV lookup for _<service>._tcp.<dnsName> via the
// standard library resolver.
func resolveDNS(ctx context.Context, cfg config.DiscoveryConfig, lgr logger.Logger) ([]string, error) {
	_, addrs, err := net.DefaultResolver.LookupSRV(ctx, cfg.Service, "tcp", cfg.DNSName)
	if err != nil {
		lgr.Warn("discovery: SRV lookup failed", logger.F("dnsName", cfg.DNSName), logger.F("err", err))
		return nil, nil
	}
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		target := strings.TrimSuffix(a.Target, ".")
		out = append(out, fmt.Sprintf("%s:%d", target, a.Port))
	}
	if len(out) == 0 {
		lgr.Warn("discovery: SRV lookup returned no records", logger.F("dnsName", cfg.DNSName))
	}
	return out, nil
}
