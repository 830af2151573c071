// Package output orders the assembled clusters and serializes them
// back into the importable GPS line format.
package output

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/appengine-ltd/gps-sort/internal/catalog"
	"github.com/appengine-ltd/gps-sort/internal/gps"
)

// preamble heads every output file, after the dated first line.
const preamble = `# You can easily add GPSs to your list by making an LCD, opening the text edit
# by hitting 'F', and pasting your desired GPSs into it.  Then go into your GPS
# list, and turn them on.
#
# Order of Precedence:
#   U (Uranium)
#   PT (Platnium)
#   AU (Gold)
#   AG (Silver)
#   ICE
#   MG (Magnesium)
#   CO (Cobalt)
#   NI (Nickel)
#   SI (Silicon)
#   FE (Iron)`

// Write emits the cluster list. Clusters are ordered by descending
// sector-table index (outer sectors first), resources within a cluster
// by ore priority, and a sector header line precedes the first emitted
// cluster whose header differs from the previous one. Clusters that
// collected no resources are omitted.
func Write(w io.Writer, clusters []*gps.Coordinate, cat *catalog.Catalog, now time.Time) error {
	ordered := make([]*gps.Coordinate, len(clusters))
	copy(ordered, clusters)
	sort.SliceStable(ordered, func(i, j int) bool {
		return cat.SectorIndex(ordered[i].Sector) > cat.SectorIndex(ordered[j].Sector)
	})

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# Up-to-date as of %s\n#\n", now.Format("2006.01.02"))
	fmt.Fprintf(bw, "%s\n\n", preamble)

	currentHeader := ""
	for _, c := range ordered {
		if len(c.Resources) == 0 {
			continue
		}
		if h := cat.Header(c.Sector); h != "" && h != currentHeader {
			fmt.Fprintf(bw, "\n# %s:\n\n", h)
			currentHeader = h
		}

		fmt.Fprintln(bw, c.GPS())
		sortResources(c.Resources, cat)
		for _, r := range c.Resources {
			fmt.Fprintln(bw, r.GPS())
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

// sortResources orders a cluster's resources by the vocabulary
// priority of the ore token following the sector token. Names are
// canonical by the time this runs, so the second field is always the
// highest-priority ore in the label.
func sortResources(resources []*gps.Coordinate, cat *catalog.Catalog) {
	sort.SliceStable(resources, func(i, j int) bool {
		return oreRank(resources[i], cat) < oreRank(resources[j], cat)
	})
}

func oreRank(c *gps.Coordinate, cat *catalog.Catalog) int {
	fields := strings.Fields(c.Name)
	if len(fields) < 2 {
		return len(cat.Ores())
	}
	if i := cat.OreIndex(fields[1]); i >= 0 {
		return i
	}
	return len(cat.Ores())
}
