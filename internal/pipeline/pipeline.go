// Package pipeline drives the full run: read and classify, split,
// deduplicate, normalize, uniquify, assemble, and emit. Everything is
// single-threaded; the only suspension points are the oracle prompts.
package pipeline

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/appengine-ltd/gps-sort/internal/catalog"
	"github.com/appengine-ltd/gps-sort/internal/cluster"
	"github.com/appengine-ltd/gps-sort/internal/dedupe"
	"github.com/appengine-ltd/gps-sort/internal/gps"
	"github.com/appengine-ltd/gps-sort/internal/name"
	"github.com/appengine-ltd/gps-sort/internal/oracle"
	"github.com/appengine-ltd/gps-sort/internal/output"
)

// Config holds the distance thresholds. Resources within
// ResourceDupDistance meters of each other are duplicate suspects;
// ClusterDupDistance doubles as the cluster-assignment radius.
type Config struct {
	ResourceDupDistance int
	ClusterDupDistance  int
}

// DefaultConfig returns the stock thresholds: 2 km for resources,
// 500 km for clusters.
func DefaultConfig() Config {
	return Config{
		ResourceDupDistance: 2 * 1000,
		ClusterDupDistance:  500 * 1000,
	}
}

// Pipeline owns every record collection for the duration of a run and
// mutates them one stage at a time.
type Pipeline struct {
	cat    *catalog.Catalog
	decide oracle.Oracle
	log    *zap.Logger
	cfg    Config
	now    func() time.Time
}

// New wires a Pipeline. A nil logger disables diagnostics.
func New(cat *catalog.Catalog, decide oracle.Oracle, log *zap.Logger, cfg Config) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		cat:    cat,
		decide: decide,
		log:    log,
		cfg:    cfg,
		now:    time.Now,
	}
}

// ReadCoordinates parses and classifies every line of r. Lines with
// too few fields are skipped with a diagnostic; a non-numeric
// coordinate field or a coordinate outside every sector aborts the
// read.
func (p *Pipeline) ReadCoordinates(r io.Reader) ([]*gps.Coordinate, error) {
	var coords []*gps.Coordinate
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		c, err := gps.ParseLine(scanner.Text())
		if err != nil {
			if errors.Is(err, gps.ErrFieldCount) {
				p.log.Warn("skipping bad coordinate line",
					zap.Int("line", lineNo),
					zap.Error(err))
				continue
			}
			return nil, err
		}
		if c == nil {
			continue
		}

		sector, err := p.cat.FindSector(c)
		if err != nil {
			return nil, err
		}
		c.Sector = sector
		coords = append(coords, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	p.log.Info("coordinates read", zap.Int("count", len(coords)))
	return coords, nil
}

// Process runs the in-memory stages over parsed coordinates and
// returns the assembled cluster list, ready for output.
func (p *Pipeline) Process(coords []*gps.Coordinate) []*gps.Coordinate {
	clusters, resources := split(coords)
	p.log.Info("coordinates split",
		zap.Int("clusters", len(clusters)),
		zap.Int("resources", len(resources)))

	clusters = dedupe.Resolve(clusters, p.cfg.ClusterDupDistance, p.decide)
	resources = dedupe.Resolve(resources, p.cfg.ResourceDupDistance, p.decide)
	p.log.Info("duplicates resolved",
		zap.Int("clusters", len(clusters)),
		zap.Int("resources", len(resources)))

	normalizer := name.New(p.cat, p.log)
	normalizer.FixAll(resources, p.decide)
	name.MakeUnique(resources)

	clusters = cluster.Assemble(clusters, resources, p.cfg.ClusterDupDistance, p.log)
	p.log.Info("clusters assembled", zap.Int("clusters", len(clusters)))

	return clusters
}

// Run executes the whole pipeline from an input stream to an output
// stream. The output is written in a single pass at the end, so any
// failure beforehand produces no output at all.
func (p *Pipeline) Run(r io.Reader, w io.Writer) error {
	coords, err := p.ReadCoordinates(r)
	if err != nil {
		return err
	}
	clusters := p.Process(coords)
	return output.Write(w, clusters, p.cat, p.now())
}

// split partitions coordinates into cluster markers and resource
// markers by name prefix.
func split(coords []*gps.Coordinate) (clusters, resources []*gps.Coordinate) {
	for _, c := range coords {
		if c.IsCluster() {
			clusters = append(clusters, c)
		} else {
			resources = append(resources, c)
		}
	}
	return clusters, resources
}
