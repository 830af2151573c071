package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileSchema is the YAML shape of a catalog override file. Either
// section may be omitted to keep the built-in table.
type fileSchema struct {
	Sectors []SectorSpec `yaml:"sectors"`
	Ores    []string     `yaml:"ores"`
}

// Load reads a catalog override from a YAML file. Omitted sections fall
// back to the built-in defaults; whatever is supplied is validated the
// same way the defaults are.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var f fileSchema
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	sectors := f.Sectors
	if len(sectors) == 0 {
		sectors = defaultSectors
	}
	ores := f.Ores
	if len(ores) == 0 {
		ores = defaultOres
	}

	c, err := New(sectors, ores)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return c, nil
}
