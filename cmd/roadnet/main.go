package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"roadnet/internal/config"
	"roadnet/internal/discovery"
	"roadnet/internal/gateway"
	"roadnet/internal/gateway/sqlgateway"
	"roadnet/internal/logger"
	zapfactory "roadnet/internal/logger/zap"
	"roadnet/internal/network"
	"roadnet/internal/route"
	"roadnet/internal/telemetry"
)

var defaultConfigPath = "config/roadnet.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to configuration file")
	routeStr := flag.String("route", "", "evaluate this route string and exit, instead of starting the interactive shell")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load configuration from %q: %v", *configPath, err)
	}
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	var lgr logger.Logger
	if cfg.Logger.Active {
		zapLog, err := zapfactory.New(cfg.Logger)
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() { _ = zapLog.Sync() }()
		lgr = zapfactory.NewZapAdapter(zapLog)
	} else {
		lgr = &logger.NopLogger{}
	}
	cfg.LogConfig(lgr)

	shutdown := telemetry.InitTracer(cfg.Telemetry, "roadnet")
	defer shutdown(context.Background())

	gw, err := buildGateway(cfg, lgr)
	if err != nil {
		lgr.Error("failed to build gateway", logger.F("err", err))
		fmt.Fprintf(os.Stderr, "failed to build gateway: %v\n", err)
		os.Exit(1)
	}

	n := network.Load(gw, network.WithLogger(lgr.Named("network")))
	lgr.Info("network loaded")

	if *routeStr != "" {
		runRoute(n, *routeStr)
		return
	}
	runShell(n)
}

// buildGateway resolves the configured data-source host (when needed) and
// constructs the gateway implementation matching dataSource.mode.
func buildGateway(cfg *config.Config, lgr logger.Logger) (gateway.Gateways, error) {
	switch cfg.DataSource.Mode {
	case "fixture":
		return gateway.LoadFixture(cfg.DataSource.FixturePath, lgr.Named("gateway"))
	case "postgres":
		dsn := cfg.DataSource.DSN
		if dsn == "" {
			addrs, err := discovery.Resolve(context.Background(), cfg.Discovery, lgr.Named("discovery"))
			if err != nil {
				return nil, fmt.Errorf("resolving data source: %w", err)
			}
			if len(addrs) == 0 {
				return nil, fmt.Errorf("discovery mode %q found no data source addresses", cfg.Discovery.Mode)
			}
			dsn = fmt.Sprintf("postgres://%s", addrs[0])
		}
		return sqlgateway.Connect(context.Background(), dsn, lgr.Named("gateway"))
	default:
		return nil, fmt.Errorf("unsupported dataSource.mode: %s", cfg.DataSource.Mode)
	}
}

func runRoute(n *network.Network, routeStr string) {
	r := route.Parse(routeStr)
	hops := route.Evaluate(n, r)
	for _, h := range hops {
		fmt.Printf("(%d,%d)\n", h.JunctionID, h.ExitIndex)
	}
}

// runShell starts an interactive liner-based prompt accepting "route",
// "query" and "dump" commands, in the teacher's command-dispatch style.
func runShell(n *network.Network) {
	fmt.Println("roadnet interactive shell")
	fmt.Println("Available commands: route <route-string> | query <junction> <source> <dest> <to-dest> | dump | exit")

	l := liner.NewLiner()
	defer l.Close()
	l.SetCtrlCAborts(true)

	for {
		input, err := l.Prompt("roadnet> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				fmt.Println("Aborted")
				continue
			}
			break
		}
		l.AppendHistory(input)

		args := strings.Fields(input)
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "route":
			if len(args) < 2 {
				fmt.Println("Usage: route <route-string>")
				continue
			}
			routeStr := strings.Join(args[1:], " ")
			runRoute(n, routeStr)

		case "query":
			if len(args) != 5 {
				fmt.Println("Usage: query <junction> <source> <dest> <to-dest: true|false>")
				continue
			}
			junction, err1 := strconv.ParseUint(args[1], 10, 32)
			source, err2 := strconv.ParseUint(args[2], 10, 32)
			dest, err3 := strconv.ParseUint(args[3], 10, 32)
			toDest, err4 := strconv.ParseBool(args[4])
			if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
				fmt.Println("Usage: query <junction> <source> <dest> <to-dest: true|false>")
				continue
			}
			hop, ok := n.Route(uint32(junction), uint32(source), uint32(dest), toDest)
			if !ok {
				fmt.Println("no route")
				continue
			}
			fmt.Printf("junction=%d dest_junction=%d exit_heading=%d\n", hop.Junction, hop.DestJunction, hop.ExitHeading)

		case "dump":
			fmt.Printf("routing table: %d hops\n", len(n.Routing()))
			for h := range n.Routing() {
				fmt.Printf("  %d -> %d via heading %d\n", h.Junction, h.DestJunction, h.ExitHeading)
			}

		case "exit", "quit":
			fmt.Println("Bye!")
			return

		default:
			fmt.Printf("Unknown command: %s\n", args[0])
		}
	}
}
