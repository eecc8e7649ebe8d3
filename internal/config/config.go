package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"roadnet/internal/configloader"
	"roadnet/internal/logger"
)

type TracingConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Exporter string `yaml:"exporter"`
	Endpoint string `yaml:"endpoint"`
}

type TelemetryConfig struct {
	Tracing TracingConfig `yaml:"tracing"`
}

type FileLoggerConfig struct {
	Path       string `yaml:"path"`
	MaxSize    int    `yaml:"maxSize"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAge     int    `yaml:"maxAge"`
	Compress   bool   `yaml:"compress"`
}

type LoggerConfig struct {
	Active   bool             `yaml:"active"`
	Level    string           `yaml:"level"`
	Encoding string           `yaml:"encoding"`
	Mode     string           `yaml:"mode"`
	File     FileLoggerConfig `yaml:"file"`
}

// Route53Config names the hosted zone and record suffix a "route53"
// discovery mode reads an existing SRV record from.
type Route53Config struct {
	HostedZoneID string `yaml:"hostedZoneId"`
	DomainSuffix string `yaml:"domainSuffix"`
}

// DiscoveryConfig selects how the address of the backing data store is
// resolved before the gateways connect to it.
type DiscoveryConfig struct {
	Mode     string        `yaml:"mode"` // static, dns, route53
	Peers    []string      `yaml:"peers"`
	DNSName  string        `yaml:"dnsName"`
	Service  string        `yaml:"service"`
	Route53  Route53Config `yaml:"route53"`
}

// DataSourceConfig describes where the network's record streams come from.
type DataSourceConfig struct {
	Mode        string `yaml:"mode"` // fixture, postgres
	FixturePath string `yaml:"fixturePath"`
	DSN         string `yaml:"dsn"`
}

type Config struct {
	Logger     LoggerConfig      `yaml:"logger"`
	DataSource DataSourceConfig  `yaml:"dataSource"`
	Discovery  DiscoveryConfig   `yaml:"discovery"`
	Telemetry  TelemetryConfig   `yaml:"telemetry"`
}

// LoadConfig loads the configuration from a YAML file at the given path.
//
// This function performs only syntactic parsing of the YAML file. To
// validate the configuration structure and check for missing or invalid
// fields, call cfg.Validate() after loading.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ApplyEnvOverrides applies environment variable overrides to the
// configuration. Supported overrides:
//
//	ROADNET_DATASOURCE_MODE    -> cfg.DataSource.Mode
//	ROADNET_DATASOURCE_FIXTURE -> cfg.DataSource.FixturePath
//	ROADNET_DATASOURCE_DSN     -> cfg.DataSource.DSN
//	ROADNET_DISCOVERY_MODE     -> cfg.Discovery.Mode
//	ROADNET_DISCOVERY_PEERS    -> cfg.Discovery.Peers (comma-separated list)
//	ROADNET_DISCOVERY_DNSNAME  -> cfg.Discovery.DNSName
//	ROADNET_TRACE_ENABLED      -> cfg.Telemetry.Tracing.Enabled
//	ROADNET_TRACE_EXPORTER     -> cfg.Telemetry.Tracing.Exporter
//	ROADNET_TRACE_ENDPOINT     -> cfg.Telemetry.Tracing.Endpoint
//	ROADNET_LOGGER_ENABLED     -> cfg.Logger.Active
//	ROADNET_LOGGER_LEVEL       -> cfg.Logger.Level
//	ROADNET_LOGGER_ENCODING    -> cfg.Logger.Encoding
//	ROADNET_LOGGER_MODE        -> cfg.Logger.Mode
//	ROADNET_LOGGER_FILE_PATH   -> cfg.Logger.File.Path
//	ROADNET_LOGGER_FILE_MAXSIZE -> cfg.Logger.File.MaxSize
func (cfg *Config) ApplyEnvOverrides() {
	configloader.OverrideString(&cfg.DataSource.Mode, "ROADNET_DATASOURCE_MODE")
	configloader.OverrideString(&cfg.DataSource.FixturePath, "ROADNET_DATASOURCE_FIXTURE")
	configloader.OverrideString(&cfg.DataSource.DSN, "ROADNET_DATASOURCE_DSN")

	configloader.OverrideString(&cfg.Discovery.Mode, "ROADNET_DISCOVERY_MODE")
	configloader.OverrideStringSlice(&cfg.Discovery.Peers, "ROADNET_DISCOVERY_PEERS")
	configloader.OverrideString(&cfg.Discovery.DNSName, "ROADNET_DISCOVERY_DNSNAME")

	configloader.OverrideBool(&cfg.Telemetry.Tracing.Enabled, "ROADNET_TRACE_ENABLED")
	configloader.OverrideString(&cfg.Telemetry.Tracing.Exporter, "ROADNET_TRACE_EXPORTER")
	configloader.OverrideString(&cfg.Telemetry.Tracing.Endpoint, "ROADNET_TRACE_ENDPOINT")

	configloader.OverrideBool(&cfg.Logger.Active, "ROADNET_LOGGER_ENABLED")
	configloader.OverrideString(&cfg.Logger.Level, "ROADNET_LOGGER_LEVEL")
	configloader.OverrideString(&cfg.Logger.Encoding, "ROADNET_LOGGER_ENCODING")
	configloader.OverrideString(&cfg.Logger.Mode, "ROADNET_LOGGER_MODE")
	configloader.OverrideString(&cfg.Logger.File.Path, "ROADNET_LOGGER_FILE_PATH")
	configloader.OverrideInt(&cfg.Logger.File.MaxSize, "ROADNET_LOGGER_FILE_MAXSIZE")
}

// Validate performs structural validation of the loaded configuration. All
// detected issues are accumulated and returned as a single error. If the
// configuration is valid, Validate returns nil.
func (cfg *Config) Validate() error {
	var errs []string

	switch cfg.Logger.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("invalid logger.level: %s", cfg.Logger.Level))
	}
	switch cfg.Logger.Encoding {
	case "console", "json":
	default:
		errs = append(errs, fmt.Sprintf("invalid logger.encoding: %s", cfg.Logger.Encoding))
	}
	switch cfg.Logger.Mode {
	case "stdout":
	case "file":
		if cfg.Logger.File.Path == "" {
			errs = append(errs, "logger.file.path is required when mode=file")
		}
		if cfg.Logger.File.MaxSize < 0 || cfg.Logger.File.MaxBackups < 0 || cfg.Logger.File.MaxAge < 0 {
			errs = append(errs, "logger.file.* values must be non-negative")
		}
	default:
		errs = append(errs, fmt.Sprintf("invalid logger.mode: %s", cfg.Logger.Mode))
	}

	switch cfg.DataSource.Mode {
	case "fixture":
		if cfg.DataSource.FixturePath == "" {
			errs = append(errs, "dataSource.fixturePath is required when dataSource.mode=fixture")
		}
	case "postgres":
		if cfg.DataSource.DSN == "" && cfg.Discovery.Mode == "static" && len(cfg.Discovery.Peers) == 0 {
			errs = append(errs, "dataSource.dsn or discovery.peers is required when dataSource.mode=postgres")
		}
	default:
		errs = append(errs, fmt.Sprintf("invalid dataSource.mode: %s (must be fixture or postgres)", cfg.DataSource.Mode))
	}

	switch cfg.Discovery.Mode {
	case "static":
		// peers are optional: a direct dataSource.dsn may suffice
	case "dns":
		if cfg.Discovery.DNSName == "" {
			errs = append(errs, "discovery.dnsName is required in mode=dns")
		}
	case "route53":
		if cfg.Discovery.Route53.HostedZoneID == "" {
			errs = append(errs, "discovery.route53.hostedZoneId is required in mode=route53")
		}
		if cfg.Discovery.Route53.DomainSuffix == "" {
			errs = append(errs, "discovery.route53.domainSuffix is required in mode=route53")
		}
	default:
		errs = append(errs, fmt.Sprintf("invalid discovery.mode: %s (must be static, dns or route53)", cfg.Discovery.Mode))
	}

	if cfg.Telemetry.Tracing.Enabled {
		switch cfg.Telemetry.Tracing.Exporter {
		case "stdout", "otlp":
		default:
			errs = append(errs, fmt.Sprintf("invalid telemetry.tracing.exporter: %s", cfg.Telemetry.Tracing.Exporter))
		}
		if cfg.Telemetry.Tracing.Exporter == "otlp" && cfg.Telemetry.Tracing.Endpoint == "" {
			errs = append(errs, "telemetry.tracing.endpoint is required when exporter=otlp")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// LogConfig prints the loaded configuration at DEBUG level. Useful for
// debugging startup issues and verifying the configuration was parsed
// correctly.
func (cfg *Config) LogConfig(lgr logger.Logger) {
	lgr.Debug("loaded configuration",
		logger.F("logger.active", cfg.Logger.Active),
		logger.F("logger.level", cfg.Logger.Level),
		logger.F("logger.encoding", cfg.Logger.Encoding),
		logger.F("logger.mode", cfg.Logger.Mode),
		logger.F("logger.file.path", cfg.Logger.File.Path),

		logger.F("dataSource.mode", cfg.DataSource.Mode),
		logger.F("dataSource.fixturePath", cfg.DataSource.FixturePath),

		logger.F("discovery.mode", cfg.Discovery.Mode),
		logger.F("discovery.peers", cfg.Discovery.Peers),
		logger.F("discovery.dnsName", cfg.Discovery.DNSName),

		logger.F("telemetry.tracing.enabled", cfg.Telemetry.Tracing.Enabled),
		logger.F("telemetry.tracing.exporter", cfg.Telemetry.Tracing.Exporter),
		logger.F("telemetry.tracing.endpoint", cfg.Telemetry.Tracing.Endpoint),
	)
}
