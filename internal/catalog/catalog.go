// Package catalog holds the static configuration tables the pipeline
// consults: the priority-ordered sector list and the ore vocabulary.
// Both are immutable after construction.
package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/appengine-ltd/gps-sort/internal/gps"
)

// SectorSpec is the raw form a sector is configured in: an importable
// GPS line for the sector center (the name encodes the radius, e.g.
// "Auroria Planet - (R250km)"), the abbreviation used in coordinate
// names, and the display header for output sections.
type SectorSpec struct {
	Coordinate string `yaml:"coordinate"`
	Abbr       string `yaml:"abbr"`
	Header     string `yaml:"header"`
}

// Sector is a processed sector table entry.
type Sector struct {
	Abbr   string
	Header string
	Center *gps.Coordinate
	Radius int // meters
}

// Catalog is the immutable sector table plus ore vocabulary. Sector
// order is priority order: a coordinate belongs to the first sector
// containing it, so inner sectors must precede outer sectors sharing
// their center. Ore order defines both validity and sort priority.
type Catalog struct {
	sectors []Sector
	ores    []string

	sectorIdx map[string]int
	oreIdx    map[string]int
}

var radiusRE = regexp.MustCompile(`\(R(\d+)km\)`)

// New builds a Catalog from sector specs and an ore vocabulary,
// validating both tables.
func New(specs []SectorSpec, ores []string) (*Catalog, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("sector table is empty")
	}
	if len(ores) == 0 {
		return nil, fmt.Errorf("ore vocabulary is empty")
	}

	c := &Catalog{
		sectorIdx: make(map[string]int, len(specs)),
		oreIdx:    make(map[string]int, len(ores)),
	}

	for i, spec := range specs {
		sector, err := processSector(spec)
		if err != nil {
			return nil, err
		}
		if _, dup := c.sectorIdx[sector.Abbr]; dup {
			return nil, fmt.Errorf("duplicate sector abbreviation %q", sector.Abbr)
		}
		c.sectors = append(c.sectors, sector)
		c.sectorIdx[sector.Abbr] = i
	}

	for i, ore := range ores {
		code := strings.ToUpper(strings.TrimSpace(ore))
		if code == "" {
			return nil, fmt.Errorf("blank ore code at position %d", i)
		}
		if _, dup := c.oreIdx[code]; dup {
			return nil, fmt.Errorf("duplicate ore code %q", code)
		}
		c.ores = append(c.ores, code)
		c.oreIdx[code] = i
	}

	return c, nil
}

func processSector(spec SectorSpec) (Sector, error) {
	if spec.Abbr == "" {
		return Sector{}, fmt.Errorf("sector %q has no abbreviation", spec.Coordinate)
	}
	center, err := gps.ParseLine(spec.Coordinate)
	if err != nil || center == nil {
		return Sector{}, fmt.Errorf("bad sector coordinate for %s: %v", spec.Abbr, err)
	}
	center.Sector = spec.Abbr

	m := radiusRE.FindStringSubmatch(center.Name)
	if m == nil {
		return Sector{}, fmt.Errorf("unexpected sector GPS name: %s", center.Name)
	}
	km, err := strconv.Atoi(m[1])
	if err != nil {
		return Sector{}, fmt.Errorf("bad radius in sector GPS name %q: %w", center.Name, err)
	}

	return Sector{
		Abbr:   spec.Abbr,
		Header: spec.Header,
		Center: center,
		Radius: km * 1000,
	}, nil
}

// FindSector classifies a coordinate, returning the abbreviation of the
// first sector whose radius exceeds the distance to its center. A
// coordinate outside every sector is a fatal condition for the run.
func (c *Catalog) FindSector(coord *gps.Coordinate) (string, error) {
	for _, sector := range c.sectors {
		if gps.Distance(sector.Center, coord) < sector.Radius {
			return sector.Abbr, nil
		}
	}
	return "", fmt.Errorf("no sector found for coordinate: %s", coord.GPS())
}

// Sectors returns the sector table in priority order.
func (c *Catalog) Sectors() []Sector { return c.sectors }

// Ores returns the ore vocabulary in priority order.
func (c *Catalog) Ores() []string { return c.ores }

// SectorIndex returns the table position of a sector abbreviation, or
// -1 when unknown.
func (c *Catalog) SectorIndex(abbr string) int {
	if i, ok := c.sectorIdx[abbr]; ok {
		return i
	}
	return -1
}

// ValidSector reports whether abbr names a configured sector.
func (c *Catalog) ValidSector(abbr string) bool {
	_, ok := c.sectorIdx[abbr]
	return ok
}

// Header returns the display header for a sector abbreviation, or ""
// when unknown.
func (c *Catalog) Header(abbr string) string {
	if i, ok := c.sectorIdx[abbr]; ok {
		return c.sectors[i].Header
	}
	return ""
}

// OreIndex returns the vocabulary position of an ore code, or -1 when
// unknown.
func (c *Catalog) OreIndex(code string) int {
	if i, ok := c.oreIdx[code]; ok {
		return i
	}
	return -1
}

// ValidOre reports whether code appears in the ore vocabulary.
func (c *Catalog) ValidOre(code string) bool {
	_, ok := c.oreIdx[code]
	return ok
}
