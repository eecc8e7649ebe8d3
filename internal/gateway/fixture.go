package gateway

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"roadnet/internal/logger"
)

// fixtureFile is the on-disk shape of a YAML fixture: the same five
// record streams the SQL gateway would otherwise query.
type fixtureFile struct {
	Links         []LinkRecord         `yaml:"links"`
	Junctions     []JunctionRecord     `yaml:"junctions"`
	JunctionLinks []JunctionLinkRecord `yaml:"junctionLinks"`
	Tiles         []TileRecord         `yaml:"tiles"`
	Segments      []SegmentRecord      `yaml:"segments"`
}

// LoadFixture reads a YAML fixture file and returns a Memory gateway
// populated from it, for the "fixture" data-source mode.
func LoadFixture(path string, lgr logger.Logger) (*Memory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gateway: reading fixture %q: %w", path, err)
	}
	var f fixtureFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("gateway: parsing fixture %q: %w", path, err)
	}
	return NewMemory(lgr, f.Links, f.Junctions, f.JunctionLinks, f.Tiles, f.Segments), nil
}
