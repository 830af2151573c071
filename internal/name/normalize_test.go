package name

import (
	"testing"

	"github.com/appengine-ltd/gps-sort/internal/catalog"
	"github.com/appengine-ltd/gps-sort/internal/gps"
	"github.com/appengine-ltd/gps-sort/internal/oracle"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.SectorSpec{
		{
			Coordinate: "GPS:Test Zone A - (R250km):0:0:0:#FFFFFF00:",
			Abbr:       "ZA",
			Header:     "Test Zone A",
		},
		{
			Coordinate: "GPS:Test Zone B - (R250km):10000000:0:0:#FFFFFF00:",
			Abbr:       "ZB",
			Header:     "Test Zone B",
		},
	}, []string{"U", "FE", "NI"})
	if err != nil {
		t.Fatalf("building catalog: %v", err)
	}
	return cat
}

func TestNormalize(t *testing.T) {
	n := New(testCatalog(t), nil)

	tests := []struct {
		name   string
		label  string
		sector string
		want   string
		ok     bool
	}{
		{name: "already canonical", label: "ZA FE", sector: "ZA", want: "ZA FE", ok: true},
		{name: "lower case ore", label: "ZA fe", sector: "ZA", want: "ZA FE", ok: true},
		{name: "size phrase preserved", label: "ZA fe large", sector: "ZA", want: "ZA FE large", ok: true},
		{name: "missing sector token", label: "fe large", sector: "ZA", want: "ZA FE large", ok: true},
		{name: "sorted by ore priority", label: "ZA FE small, U big", sector: "ZA", want: "ZA U big , FE small", ok: true},
		{name: "three ores", label: "ZA ni, fe, u", sector: "ZA", want: "ZA U , FE , NI", ok: true},
		{name: "suffix stripped", label: "ZA FE _2", sector: "ZA", want: "ZA FE", ok: true},
		{name: "sector substituted for token", label: "ZB FE", sector: "ZA", want: "ZA FE", ok: true},
		{name: "token kept without sector", label: "ZB FE", sector: "", want: "ZB FE", ok: true},
		{name: "idempotent", label: "ZA U big , FE small", sector: "ZA", want: "ZA U big , FE small", ok: true},
		{name: "unknown sector token", label: "XX FE", sector: "ZA", ok: false},
		{name: "unknown ore", label: "ZA AU", sector: "ZA", ok: false},
		{name: "bare sector token", label: "ZA", sector: "ZA", ok: false},
		{name: "bare ore without owner sector", label: "fe", sector: "", ok: false},
		{name: "empty label", label: "", sector: "ZA", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := n.Normalize(tc.label, tc.sector)
			if ok != tc.ok {
				t.Fatalf("Normalize(%q, %q) ok=%v want=%v", tc.label, tc.sector, ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("Normalize(%q, %q)=%q want=%q", tc.label, tc.sector, got, tc.want)
			}
		})
	}
}

func TestNormalizeIsStableUnderRepetition(t *testing.T) {
	n := New(testCatalog(t), nil)

	first, ok := n.Normalize("ZA fe big, u", "ZA")
	if !ok {
		t.Fatal("first pass rejected a valid label")
	}
	second, ok := n.Normalize(first, "ZA")
	if !ok || second != first {
		t.Fatalf("second pass changed the label: %q -> %q", first, second)
	}
}

func TestFixAllRetriesThroughOracle(t *testing.T) {
	n := New(testCatalog(t), nil)

	resources := []*gps.Coordinate{
		{Name: "ZA garbage", Sector: "ZA"},
		{Name: "ZA u", Sector: "ZA"},
	}
	script := &oracle.Script{Labels: []string{"still bad", "ZA fe"}}

	n.FixAll(resources, script)

	if got := resources[0].Name; got != "ZA FE" {
		t.Fatalf("resource 0 name = %q, want %q", got, "ZA FE")
	}
	if got := resources[1].Name; got != "ZA U" {
		t.Fatalf("resource 1 name = %q, want %q", got, "ZA U")
	}
	if len(script.LabelCalls) != 2 {
		t.Fatalf("oracle asked %d times, want 2", len(script.LabelCalls))
	}
	if script.LabelCalls[0] != "ZA garbage" || script.LabelCalls[1] != "still bad" {
		t.Fatalf("oracle saw %v", script.LabelCalls)
	}
}

func TestClosest(t *testing.T) {
	tests := []struct {
		token      string
		candidates []string
		want       string
	}{
		{token: "FW", candidates: []string{"U", "FE", "NI"}, want: "FE"},
		{token: "XQZV", candidates: []string{"U", "FE", "NI"}, want: ""},
		{token: "ZS", candidates: []string{"ZA", "ZB"}, want: "ZA"},
	}
	for _, tc := range tests {
		if got := closest(tc.token, tc.candidates); got != tc.want {
			t.Fatalf("closest(%q, %v)=%q want=%q", tc.token, tc.candidates, got, tc.want)
		}
	}
}
