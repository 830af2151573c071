// Package gps models Space Engineers GPS coordinate records and the
// line protocol used to import and export them.
package gps

import (
	"math"
	"strconv"
	"strings"
)

// ClusterPrefix marks a coordinate as a cluster marker rather than a
// resource marker.
const ClusterPrefix = "Cluster"

// Coordinate is one GPS marker. Cluster markers additionally carry the
// resources grouped under them once assembly has run.
type Coordinate struct {
	Name   string
	X      float64
	Y      float64
	Z      float64
	Colour string
	Notes  string

	// Sector is the abbreviation of the sector the coordinate sits in,
	// assigned once during classification.
	Sector string

	// Duplicate is set by duplicate resolution and never unset.
	Duplicate bool

	// Resources is populated on cluster markers during assembly.
	Resources []*Coordinate
}

// IsCluster reports whether the coordinate is a cluster marker.
func (c *Coordinate) IsCluster() bool {
	return strings.HasPrefix(c.Name, ClusterPrefix)
}

// GPS serializes the coordinate back into the importable line format.
// Colour and notes round-trip verbatim.
func (c *Coordinate) GPS() string {
	var b strings.Builder
	b.WriteString("GPS:")
	b.WriteString(c.Name)
	b.WriteByte(':')
	b.WriteString(formatAxis(c.X))
	b.WriteByte(':')
	b.WriteString(formatAxis(c.Y))
	b.WriteByte(':')
	b.WriteString(formatAxis(c.Z))
	b.WriteByte(':')
	b.WriteString(c.Colour)
	b.WriteByte(':')
	b.WriteString(c.Notes)
	b.WriteByte(':')
	return b.String()
}

func formatAxis(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Distance returns the straight-line distance between two coordinates,
// rounded to the nearest whole meter.
func Distance(a, b *Coordinate) int {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dz := b.Z - a.Z
	return int(math.Round(math.Sqrt(dx*dx + dy*dy + dz*dz)))
}
