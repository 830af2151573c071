package name

import (
	"fmt"

	"github.com/appengine-ltd/gps-sort/internal/gps"
)

// MakeUnique suffixes repeated resource names in record order so every
// name is textually unique in the GPS list. The first occurrence keeps
// its name; later occurrences get " _2", " _3", and so on. This runs
// after normalization, so identical deposits share a canonical base
// name.
func MakeUnique(resources []*gps.Coordinate) {
	counters := make(map[string]int)
	for _, r := range resources {
		n, seen := counters[r.Name]
		if seen {
			counters[r.Name] = n + 1
			r.Name = fmt.Sprintf("%s _%d", r.Name, n)
			continue
		}
		counters[r.Name] = 2
	}
}
