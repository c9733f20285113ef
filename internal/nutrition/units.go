package nutrition

import (
	"sort"
	"strings"
)

type Kind string

const (
	KindMass   Kind = "mass"
	KindVolume Kind = "volume"
	KindCount  Kind = "count"
	KindOther  Kind = "other"
)

// unitKinds is the closed set of ingredient units. Mass and volume
// membership here is what drives shopping-list unit normalization, so the
// household measures (xícara, colheres) stay out of the volume kind even
// though they measure volume physically.
var unitKinds = map[string]Kind{
	"g":     KindMass,
	"kg":    KindMass,
	"100g":  KindMass,
	"ml":    KindVolume,
	"l":     KindVolume,
	"100ml": KindVolume,

	"unidade": KindCount,
	"fatia":   KindCount,
	"pedaço":  KindCount,

	"xícara":         KindOther,
	"colher de sopa": KindOther,
	"colher de chá":  KindOther,
	"a gosto":        KindOther,
}

// per100Units are the units whose ingredient nutrient values are stated
// per 100 base units instead of per single unit.
var per100Units = map[string]bool{
	"g":     true,
	"ml":    true,
	"100g":  true,
	"100ml": true,
}

// KindOf classifies a unit label. Unknown labels classify as KindOther.
func KindOf(unit string) Kind {
	if k, ok := unitKinds[NormalizeUnit(unit)]; ok {
		return k
	}
	return KindOther
}

// IsKnownUnit reports whether unit is one of the supported labels.
func IsKnownUnit(unit string) bool {
	_, ok := unitKinds[NormalizeUnit(unit)]
	return ok
}

// KnownUnits returns the supported unit labels, sorted for display.
func KnownUnits() []string {
	units := make([]string, 0, len(unitKinds))
	for u := range unitKinds {
		units = append(units, u)
	}
	sort.Strings(units)
	return units
}

func NormalizeUnit(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}

// BasisMultiplier returns the factor that scales an ingredient's declared
// nutrient record to the given quantity. Nutrition databases state values
// per 100 g/100 ml for the base units, per single unit for everything
// else; this is the one place that exception lives.
func BasisMultiplier(unit string, quantity float64) float64 {
	if per100Units[NormalizeUnit(unit)] {
		return quantity / 100
	}
	return quantity
}
