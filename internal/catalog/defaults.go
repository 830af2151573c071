package catalog

// Coordinates from the ingame "!nexus getsectors true" output, with the
// ':' removed from the radius. Must stay in priority order: all inner
// sectors before outer sectors sharing their center (Auroria Planet
// before Auroria Space), and contained special sectors before their
// containers (The Hub before Roach Motel, Zarion Space before the
// Goldilocks Zone).
var defaultSectors = []SectorSpec{
	{
		Coordinate: "GPS:Auroria Planet - (R250km):-2894701.55:1033798.5:2003378.29:#FFFFFF00:",
		Abbr:       "AP",
		Header:     "Auroria Planet PvE",
	},
	{
		Coordinate: "GPS:Auroria Space - (R750km):-2894701.55:1033798.5:2003378.29:#FFFFFF00:",
		Abbr:       "AS",
		Header:     "Auroria Space PvE",
	},
	{
		Coordinate: "GPS:K.O.T.H - (R250km):5018866.7:-6120757.03:4566088.55:#FFFFFF00:",
		Abbr:       "KH",
		Header:     "K.O.T.H. PvP",
	},
	{
		Coordinate: "GPS:Korrath Planet - (R600km):-917607.09:-232737.66:-9611492.83:#FFFFFF00:",
		Abbr:       "KP",
		Header:     "Korrath Planet PvP",
	},
	{
		Coordinate: "GPS:Korrath Space - (R1000km):-917607.09:-232737.66:-9611492.83:#FFFFFF00:",
		Abbr:       "KS",
		Header:     "Korrath Space PvP",
	},
	{
		Coordinate: "GPS:Paratha Prime Planet - (R250km):2210546.1:0:3529973.22:#FFFFFF00:",
		Abbr:       "PP",
		Header:     "Paratha Planet PvE",
	},
	{
		Coordinate: "GPS:Paratha Prime Space - (R750km):2210546.1:0:3529973.22:#FFFFFF00:",
		Abbr:       "PS",
		Header:     "Paratha Space PvE",
	},
	{
		Coordinate: "GPS:Ravarna Planet - (R250km):6892920.19:266488.22:-163203.33:#FFFFFF00:",
		Abbr:       "RP",
		Header:     "Ravarna Planet PvP",
	},
	{
		Coordinate: "GPS:Ravarna Space - (R750km):6892920.19:266488.22:-163203.33:#FFFFFF00:",
		Abbr:       "RS",
		Header:     "Ravarna Space PvP",
	},
	{
		Coordinate: "GPS:Umbra Planet - (R250km):1190569.51:-8672830.43:-1339138.72:#FFFFFF00:",
		Abbr:       "UP",
		Header:     "Umbra Planet Pv?",
	},
	{
		Coordinate: "GPS:Umbra Space - (R750km):1190569.51:-8672830.43:-1339138.72:#FFFFFF00:",
		Abbr:       "US",
		Header:     "Umbra Space Pv?",
	},
	{
		Coordinate: "GPS:Volcanis Planet - (R250km):-5311681.54:1664010.91:-3307980.03:#FFFFFF00:",
		Abbr:       "VP",
		Header:     "Volcanis Planet PvP",
	},
	{
		Coordinate: "GPS:Volcanis Space - (R750km):-5311681.54:1664010.91:-3307980.03:#FFFFFF00:",
		Abbr:       "VS",
		Header:     "Volcanis Space PvP",
	},
	{
		Coordinate: "GPS:Zarion Planet - (R250km):1088776.01:0:-2619759:#FFFFFF00:",
		Abbr:       "ZP",
		Header:     "Zarion Planet PvE",
	},
	{
		Coordinate: "GPS:Zarion Space - (R750km):1088776.01:0:-2619759:#FFFFFF00:",
		Abbr:       "ZS",
		Header:     "Zarion Space PvE",
	},
	{
		Coordinate: "GPS:The Hub - (R500km):0:0:0:#FFFFFF00:",
		Abbr:       "HB",
		Header:     "The Hub PvE",
	},
	{
		Coordinate: "GPS:Roach Motel - (R1500km):0:0:0:#FFFFFF00:",
		Abbr:       "RM",
		Header:     "Roach Motel PvE",
	},
	{
		Coordinate: "GPS:The Goldilocks Zone - (R5000km):0:0:0:#FFFFFF00:",
		Abbr:       "GZ",
		Header:     "Goldilocks Zone PvE",
	},
	{
		Coordinate: "GPS:Roach Hostel - (R6000km):0:0:0:#FFFFFF00:",
		Abbr:       "RH",
		Header:     "Roach Hostel PvE",
	},
	{
		Coordinate: "GPS:Contested Barrens - (R8500km):0:0:0:#FFFFFF00:",
		Abbr:       "CB",
		Header:     "Contested Barrens PvP",
	},
}

// Ore abbreviations, in priority order.
var defaultOres = []string{
	"U",
	"PT",
	"AU",
	"AG",
	"ICE",
	"MG",
	"CO",
	"NI",
	"SI",
	"FE",
}

// Default returns the built-in catalog. The embedded tables are known
// good, so a validation failure here is a programming error.
func Default() *Catalog {
	c, err := New(defaultSectors, defaultOres)
	if err != nil {
		panic(err)
	}
	return c
}
