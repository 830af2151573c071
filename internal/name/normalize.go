// Package name canonicalizes resource labels against the sector table
// and ore vocabulary, and makes the resulting names unique.
package name

import (
	"regexp"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"go.uber.org/zap"

	"github.com/appengine-ltd/gps-sort/internal/catalog"
	"github.com/appengine-ltd/gps-sort/internal/gps"
	"github.com/appengine-ltd/gps-sort/internal/oracle"
)

// labelRE splits a label into the leading sector/cluster token, the ore
// list, and an optional trailing uniqueness suffix which is discarded.
var labelRE = regexp.MustCompile(`^\s*(\S+)\s+(.+?)(_\d+)?$`)

// oreRE matches one ore entry: a code, optionally followed by a
// free-text size phrase running up to the next comma.
var oreRE = regexp.MustCompile(`\s*([A-Za-z]+)(\s+([^,]+))?`)

type oreEntry struct {
	code string
	size string
}

// Normalizer validates and canonicalizes resource labels.
type Normalizer struct {
	cat *catalog.Catalog
	log *zap.Logger
}

// New builds a Normalizer over the given catalog. A nil logger
// disables diagnostics.
func New(cat *catalog.Catalog, log *zap.Logger) *Normalizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Normalizer{cat: cat, log: log}
}

// Normalize parses a label of the form "<token> <ore-list>[_<digits>]"
// and re-emits it canonically: ores upper-cased, sorted by vocabulary
// priority, joined with " , ", each followed by its size phrase when
// present. sector is the label owner's classified sector; when the
// label's leading word turns out to be an ore code the sector stands in
// for the missing token. Returns ok=false when any token is invalid.
func (n *Normalizer) Normalize(label, sector string) (string, bool) {
	m := labelRE.FindStringSubmatch(label)
	if m == nil {
		return "", false
	}

	token := strings.ToUpper(m[1])
	ores := m[2]

	switch {
	case n.cat.ValidOre(token):
		// The sector token is missing and the leading word is already
		// an ore; fold it back into the ore list.
		if sector == "" {
			return "", false
		}
		ores = m[1] + " " + ores
	case !n.cat.ValidSector(token):
		n.log.Warn("invalid sector in label",
			zap.String("sector", token),
			zap.String("label", label),
			zap.String("suggestion", closest(token, n.sectorAbbrs())))
		return "", false
	}

	entries, ok := n.parseOres(ores, label)
	if !ok || len(entries) == 0 {
		return "", false
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return n.cat.OreIndex(entries[i].code) < n.cat.OreIndex(entries[j].code)
	})

	out := sector
	if out == "" {
		out = token
	}

	var b strings.Builder
	b.WriteString(out)
	for i, e := range entries {
		if i == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(" , ")
		}
		b.WriteString(e.code)
		if e.size != "" {
			b.WriteString(" ")
			b.WriteString(e.size)
		}
	}
	return b.String(), true
}

func (n *Normalizer) parseOres(ores, label string) ([]oreEntry, bool) {
	var entries []oreEntry
	for _, m := range oreRE.FindAllStringSubmatch(ores, -1) {
		code := strings.ToUpper(m[1])
		size := strings.TrimSpace(m[3])

		if !n.cat.ValidOre(code) {
			n.log.Warn("invalid ore in label",
				zap.String("ore", code),
				zap.String("label", label),
				zap.String("suggestion", closest(code, n.cat.Ores())))
			return nil, false
		}
		entries = append(entries, oreEntry{code: code, size: size})
	}
	return entries, true
}

// FixAll normalizes every resource name in place, asking the oracle for
// a replacement whenever a label fails and retrying without bound.
func (n *Normalizer) FixAll(resources []*gps.Coordinate, decide oracle.Oracle) {
	for _, r := range resources {
		label := r.Name
		for {
			canonical, ok := n.Normalize(label, r.Sector)
			if ok {
				r.Name = canonical
				break
			}
			label = decide.ReplacementLabel(label)
		}
	}
}

func (n *Normalizer) sectorAbbrs() []string {
	sectors := n.cat.Sectors()
	abbrs := make([]string, len(sectors))
	for i, s := range sectors {
		abbrs[i] = s.Abbr
	}
	return abbrs
}

// closest returns the candidate nearest the token by edit distance, or
// "" when nothing is close enough to be a plausible typo.
func closest(token string, candidates []string) string {
	best := ""
	bestDist := 0
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(token, c)
		if best == "" || d < bestDist {
			best = c
			bestDist = d
		}
	}
	if best == "" || bestDist > levenshteinLimit(len(best)) {
		return ""
	}
	return best
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
