// Package cluster groups resource markers under cluster markers,
// synthesizing a cluster wherever a resource has none near enough.
package cluster

import (
	"math"
	"math/rand/v2"
	"strings"

	"go.uber.org/zap"

	"github.com/appengine-ltd/gps-sort/internal/gps"
)

var folderReplacer = strings.NewReplacer(" ", "_", "(", "", ")", "", ",", "")

// FolderName sanitizes a marker name into the folder-style tag carried
// in the notes field: spaces become underscores, parentheses and commas
// are stripped.
func FolderName(name string) string {
	return folderReplacer.Replace(name)
}

// Assemble attaches every resource to the nearest same-sector cluster
// within maxDistance meters. A resource with no cluster in range gets a
// freshly synthesized cluster at its own position; synthesized clusters
// are recentered afterwards to the centroid of everything they
// collected. Returns the cluster list including synthesized entries.
func Assemble(clusters, resources []*gps.Coordinate, maxDistance int, log *zap.Logger) []*gps.Coordinate {
	if log == nil {
		log = zap.NewNop()
	}

	for _, c := range clusters {
		c.Notes = FolderName(c.Name)
	}

	var synthesized []*gps.Coordinate

	for _, r := range resources {
		distance, nearest := nearestCluster(r, clusters)
		if nearest == nil || distance > maxDistance {
			nearest = synthesize(r)
			clusters = append(clusters, nearest)
			synthesized = append(synthesized, nearest)
			log.Info("synthesized cluster for unassigned resource",
				zap.String("cluster", nearest.Name),
				zap.String("resource", r.Name),
				zap.String("sector", r.Sector))
		}

		r.Notes = nearest.Notes
		nearest.Resources = append(nearest.Resources, r)
	}

	// Synthesized clusters start at their first resource's position;
	// once membership is complete, move them to the centroid.
	for _, c := range synthesized {
		recenter(c)
	}

	return clusters
}

// nearestCluster returns the closest cluster in the resource's sector,
// or (0, nil) when the sector has no clusters at all.
func nearestCluster(resource *gps.Coordinate, clusters []*gps.Coordinate) (int, *gps.Coordinate) {
	var nearest *gps.Coordinate
	nearestDistance := 0
	for _, c := range clusters {
		if c.Sector != resource.Sector {
			continue
		}
		d := gps.Distance(resource, c)
		if nearest == nil || d < nearestDistance {
			nearest = c
			nearestDistance = d
		}
	}
	return nearestDistance, nearest
}

// synthesize creates a cluster marker at the resource's position with a
// random four-letter name. Name collisions are not checked; they are
// rare and cosmetically harmless.
func synthesize(resource *gps.Coordinate) *gps.Coordinate {
	letters := make([]byte, 4)
	for i := range letters {
		letters[i] = byte('A' + rand.IntN(26))
	}
	name := gps.ClusterPrefix + " " + string(letters)

	return &gps.Coordinate{
		Name:   name,
		X:      resource.X,
		Y:      resource.Y,
		Z:      resource.Z,
		Colour: resource.Colour,
		Notes:  FolderName(name),
		Sector: resource.Sector,
	}
}

// recenter moves a cluster to the arithmetic mean of its resources,
// each axis rounded to two decimal places.
func recenter(c *gps.Coordinate) {
	if len(c.Resources) == 0 {
		return
	}
	var x, y, z float64
	for _, r := range c.Resources {
		x += r.X
		y += r.Y
		z += r.Z
	}
	n := float64(len(c.Resources))
	c.X = round2(x / n)
	c.Y = round2(y / n)
	c.Z = round2(z / n)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
