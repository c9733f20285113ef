package nutrition

import "github.com/davimtg/NutriPlanner-sub000/internal/model"

// Sum adds nutrient records field-wise. Summing nothing yields the zero
// record.
func Sum(vectors ...model.Nutrients) model.Nutrients {
	var out model.Nutrients
	for _, v := range vectors {
		out.EnergyKcal += v.EnergyKcal
		out.ProteinG += v.ProteinG
		out.CarbsG += v.CarbsG
		out.FatG += v.FatG
		out.CholesterolMg += v.CholesterolMg
		out.FiberG += v.FiberG
	}
	return out
}

// Scale multiplies every field by factor. Values are not clamped.
func Scale(v model.Nutrients, factor float64) model.Nutrients {
	return model.Nutrients{
		EnergyKcal:    v.EnergyKcal * factor,
		ProteinG:      v.ProteinG * factor,
		CarbsG:        v.CarbsG * factor,
		FatG:          v.FatG * factor,
		CholesterolMg: v.CholesterolMg * factor,
		FiberG:        v.FiberG * factor,
	}
}
