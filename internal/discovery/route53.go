package discovery

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"

	"roadnet/internal/config"
	"roadnet/internal/logger"
)

// resolveRoute53 lists the SRV records under cfg.Route53.DomainSuffix in
// the given hosted zone and returns their targets as "host:port" pairs.
// This mirrors the teacher's Route53Registrar but reads instead of
// upserting — discovery finds the data store, it does not register one.
func resolveRoute53(ctx context.Context, cfg config.DiscoveryConfig, lgr logger.Logger) ([]string, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("discovery: loading AWS config: %w", err)
	}
	client := route53.NewFromConfig(awsCfg)

	recordName := strings.TrimSuffix(cfg.Route53.DomainSuffix, ".") + "."
	out, err := client.ListResourceRecordSets(ctx, &route53.ListResourceRecordSetsInput{
		HostedZoneId:    aws.String(cfg.Route53.HostedZoneID),
		StartRecordName: aws.String(recordName),
		StartRecordType: types.RRTypeSrv,
		MaxItems:        aws.Int32(100),
	})
	if err != nil {
		lgr.Warn("discovery: route53 lookup failed", logger.F("err", err))
		return nil, nil
	}

	var addrs []string
	for _, rs := range out.ResourceRecordSets {
		if rs.Type != types.RRTypeSrv || aws.ToString(rs.Name) != recordName {
			continue
		}
		for _, rr := range rs.ResourceRecords {
			// SRV record value: "priority weight port target."
			fields := strings.Fields(aws.ToString(rr.Value))
			if len(fields) != 4 {
				continue
			}
			target := strings.TrimSuffix(fields[3], ".")
			addrs = append(addrs, fmt.Sprintf("%s:%s", target, fields[2]))
		}
	}
	if len(addrs) == 0 {
		lgr.Warn("discovery: route53 lookup returned no SRV records", logger.F("name", recordName))
	}
	return addrs, nil
}
