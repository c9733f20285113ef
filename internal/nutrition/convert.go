package nutrition

import "github.com/davimtg/NutriPlanner-sub000/internal/model"

// builtinConversions are the global, ingredient-independent conversion
// pairs. 100g/100ml are quantity-equivalent aliases of g/ml; only their
// nutrient basis differs, which BasisMultiplier handles.
var builtinConversions = map[[2]string]float64{
	{"g", "kg"}:     0.001,
	{"kg", "g"}:     1000,
	{"ml", "l"}:     0.001,
	{"l", "ml"}:     1000,
	{"100g", "g"}:   1,
	{"g", "100g"}:   1,
	{"100ml", "ml"}: 1,
	{"ml", "100ml"}: 1,
}

// Convert attempts to express quantity of fromUnit in toUnit. Built-in
// mass/volume rules take precedence over user conversions; user
// conversions apply only to the given ingredient and work in both
// directions, first match wins. When nothing applies the original
// quantity is returned with ok=false, never a guess.
func Convert(quantity float64, fromUnit, toUnit string, ingredientID int64, conversions []model.UnitConversion) (float64, bool) {
	from := NormalizeUnit(fromUnit)
	to := NormalizeUnit(toUnit)

	if from == to {
		return quantity, true
	}
	if factor, ok := builtinConversions[[2]string{from, to}]; ok {
		return quantity * factor, true
	}
	for _, c := range conversions {
		if c.IngredientID != ingredientID {
			continue
		}
		a := NormalizeUnit(c.UnitA)
		b := NormalizeUnit(c.UnitB)
		if a == from && b == to && c.QuantityA != 0 {
			return quantity * (c.QuantityB / c.QuantityA), true
		}
		if b == from && a == to && c.QuantityB != 0 {
			return quantity * (c.QuantityA / c.QuantityB), true
		}
	}
	return quantity, false
}
