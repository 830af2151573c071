// Package dedupe removes near-duplicate coordinates, asking the
// decision oracle which member of each duplicate group to keep.
package dedupe

import (
	"github.com/appengine-ltd/gps-sort/internal/gps"
	"github.com/appengine-ltd/gps-sort/internal/oracle"
)

type member struct {
	coord    *gps.Coordinate
	distance int
}

// Resolve makes one pass over coords in input order. For each record
// not already flagged duplicate it gathers the not-yet-flagged records
// of the same sector strictly within minDistance; groups larger than
// one go to the oracle, and everything but the chosen survivor is
// flagged. Records flagged by an earlier group are excluded from later
// groups, as anchors and as members. Returns the unflagged records.
func Resolve(coords []*gps.Coordinate, minDistance int, decide oracle.Oracle) []*gps.Coordinate {
	for _, anchor := range coords {
		if anchor.Duplicate {
			continue
		}
		group := findGroup(anchor, coords, minDistance)
		if len(group) > 1 {
			adjudicate(group, decide)
		}
	}

	survivors := make([]*gps.Coordinate, 0, len(coords))
	for _, c := range coords {
		if !c.Duplicate {
			survivors = append(survivors, c)
		}
	}
	return survivors
}

// findGroup collects the duplicates of anchor. When any exist the
// anchor itself heads the group with distance zero.
func findGroup(anchor *gps.Coordinate, coords []*gps.Coordinate, minDistance int) []member {
	var dups []member
	for _, c := range coords {
		if c == anchor || c.Duplicate || c.Sector != anchor.Sector {
			continue
		}
		if d := gps.Distance(anchor, c); d < minDistance {
			dups = append(dups, member{coord: c, distance: d})
		}
	}
	if len(dups) == 0 {
		return nil
	}
	return append([]member{{coord: anchor}}, dups...)
}

// adjudicate asks the oracle which group member survives and flags the
// rest. Out-of-range answers are discarded and the oracle is asked
// again; there is no give-up path.
func adjudicate(group []member, decide oracle.Oracle) {
	candidates := make([]oracle.Candidate, len(group))
	for i, m := range group {
		candidates[i] = oracle.Candidate{Label: m.coord.Name, Distance: m.distance}
	}

	keep := -1
	for keep < 0 {
		n := decide.ChooseSurvivor(candidates)
		if n >= 1 && n <= len(group) {
			keep = n - 1
		}
	}

	for i, m := range group {
		if i != keep {
			m.coord.Duplicate = true
		}
	}
}
