package catalog

import (
	"strings"
	"testing"

	"github.com/appengine-ltd/gps-sort/internal/gps"
)

func TestDefaultCatalogLoads(t *testing.T) {
	c := Default()
	if got := len(c.Sectors()); got != 20 {
		t.Fatalf("expected 20 sectors, got %d", got)
	}
	if got := len(c.Ores()); got != 10 {
		t.Fatalf("expected 10 ores, got %d", got)
	}
	if c.Ores()[0] != "U" || c.Ores()[9] != "FE" {
		t.Fatalf("unexpected ore priority order: %v", c.Ores())
	}
}

func TestFindSectorInnerBeforeOuter(t *testing.T) {
	c := Default()

	// At the Auroria center both Planet and Space contain the point;
	// table order must pick the inner Planet sector.
	at := &gps.Coordinate{X: -2894701.55, Y: 1033798.5, Z: 2003378.29}
	sector, err := c.FindSector(at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sector != "AP" {
		t.Fatalf("expected AP, got %s", sector)
	}

	// 400 km out along x only Auroria Space contains the point.
	out := &gps.Coordinate{X: -2894701.55 + 400000, Y: 1033798.5, Z: 2003378.29}
	sector, err = c.FindSector(out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sector != "AS" {
		t.Fatalf("expected AS, got %s", sector)
	}
}

func TestFindSectorHubBeforeContainers(t *testing.T) {
	c := Default()
	sector, err := c.FindSector(&gps.Coordinate{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sector != "HB" {
		t.Fatalf("expected HB at the origin, got %s", sector)
	}
}

func TestFindSectorOutsideAllIsFatal(t *testing.T) {
	c := Default()
	far := &gps.Coordinate{Name: "lost", X: 50000000, Y: 50000000, Z: 50000000}
	if _, err := c.FindSector(far); err == nil {
		t.Fatal("expected error for coordinate outside all sectors")
	}
}

func TestNewRejectsBadTables(t *testing.T) {
	good := SectorSpec{
		Coordinate: "GPS:Test - (R250km):0:0:0:#FFFFFF00:",
		Abbr:       "TT",
		Header:     "Test",
	}
	tests := []struct {
		name    string
		sectors []SectorSpec
		ores    []string
	}{
		{name: "empty sectors", sectors: nil, ores: []string{"FE"}},
		{name: "empty ores", sectors: []SectorSpec{good}, ores: nil},
		{
			name: "no radius in name",
			sectors: []SectorSpec{{
				Coordinate: "GPS:Test Zone:0:0:0:#FFFFFF00:",
				Abbr:       "TT",
			}},
			ores: []string{"FE"},
		},
		{name: "duplicate abbr", sectors: []SectorSpec{good, good}, ores: []string{"FE"}},
		{name: "duplicate ore", sectors: []SectorSpec{good}, ores: []string{"FE", "fe"}},
		{name: "blank ore", sectors: []SectorSpec{good}, ores: []string{" "}},
	}
	for _, tc := range tests {
		if _, err := New(tc.sectors, tc.ores); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestNewUpperCasesOres(t *testing.T) {
	c, err := New(defaultSectors[:1], []string{"fe", "ni"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.ValidOre("FE") || c.OreIndex("NI") != 1 {
		t.Fatalf("lowercase ores not canonicalized: %v", c.Ores())
	}
	if c.ValidOre("fe") {
		t.Fatal("vocabulary lookups are upper-case only")
	}
}

func TestSectorLookups(t *testing.T) {
	c := Default()
	if got := c.SectorIndex("CB"); got != 19 {
		t.Fatalf("SectorIndex(CB)=%d want=19", got)
	}
	if got := c.SectorIndex("XX"); got != -1 {
		t.Fatalf("SectorIndex(XX)=%d want=-1", got)
	}
	if got := c.Header("AP"); got != "Auroria Planet PvE" {
		t.Fatalf("Header(AP)=%q", got)
	}
	if !c.ValidSector("RM") || c.ValidSector("rm") {
		t.Fatal("sector lookups are case sensitive abbreviations")
	}
}

func TestRadiusParsedFromName(t *testing.T) {
	c := Default()
	for _, s := range c.Sectors() {
		if s.Radius <= 0 {
			t.Fatalf("sector %s has no radius", s.Abbr)
		}
		if !strings.Contains(s.Center.Name, "km)") {
			t.Fatalf("sector %s center name lost its radius: %q", s.Abbr, s.Center.Name)
		}
	}
	if hub := c.Sectors()[15]; hub.Abbr != "HB" || hub.Radius != 500000 {
		t.Fatalf("unexpected Hub entry: %+v", hub)
	}
}
