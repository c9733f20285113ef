package nutrition

import (
	"time"

	"github.com/davimtg/NutriPlanner-sub000/internal/model"
)

// DefaultCategory labels shopping lines whose ingredient has no category.
const DefaultCategory = "Outros"

// ShoppingLine is one consolidated purchase: the total quantity of an
// ingredient in its resolved unit across the requested date range. The
// Purchased flag is caller-managed.
type ShoppingLine struct {
	IngredientID int64
	Name         string
	Quantity     float64
	Unit         string
	Category     string
	Purchased    bool
}

// contribution is one flattened (ingredient, quantity, unit) triple before
// normalization and merging.
type contribution struct {
	ingredient model.Ingredient
	quantity   float64
	unit       string
}

// BuildShoppingList consolidates every planned item of the daily plans
// dated within [from, to] (inclusive, date-only) into one line per
// (ingredient, resolved unit) pair. Recipe items are expanded into their
// ingredient lines scaled to the servings consumed. Quantities whose unit
// cannot be converted to the target unit consolidate under their original
// unit instead of being dropped or zeroed. fallbackCategory labels lines
// whose ingredient declares no category; empty means DefaultCategory.
func BuildShoppingList(plans []model.DailyPlan, from, to time.Time, ingredients IngredientLookup, recipes RecipeLookup, conversions []model.UnitConversion, fallbackCategory string) []ShoppingLine {
	if fallbackCategory == "" {
		fallbackCategory = DefaultCategory
	}
	fromDay := dayOf(from)
	toDay := dayOf(to)

	var triples []contribution
	for _, plan := range plans {
		day, err := time.ParseInLocation("2006-01-02", plan.Date, time.Local)
		if err != nil || day.Before(fromDay) || day.After(toDay) {
			continue
		}
		for _, meal := range plan.Meals {
			for _, item := range meal.Items {
				triples = append(triples, expandItem(item, ingredients, recipes)...)
			}
		}
	}

	type key struct {
		ingredientID int64
		unit         string
	}
	index := map[key]int{}
	lines := make([]ShoppingLine, 0, len(triples))
	for _, t := range triples {
		target := targetUnit(t.ingredient.Unit, t.unit)
		quantity, ok := Convert(t.quantity, t.unit, target, t.ingredient.ID, conversions)
		unit := target
		if !ok {
			quantity = t.quantity
			unit = t.unit
		}

		k := key{ingredientID: t.ingredient.ID, unit: unit}
		if i, seen := index[k]; seen {
			lines[i].Quantity += quantity
			continue
		}
		category := t.ingredient.Category
		if category == "" {
			category = fallbackCategory
		}
		index[k] = len(lines)
		lines = append(lines, ShoppingLine{
			IngredientID: t.ingredient.ID,
			Name:         t.ingredient.Name,
			Quantity:     quantity,
			Unit:         unit,
			Category:     category,
		})
	}
	return lines
}

// expandItem flattens one planned item into ingredient contributions.
// Dangling references and recipes without valid servings are skipped.
func expandItem(item model.PlannedItem, ingredients IngredientLookup, recipes RecipeLookup) []contribution {
	switch item.Kind {
	case model.ItemKindIngredient:
		ing, ok := ingredients(item.RefID)
		if !ok {
			return nil
		}
		return []contribution{{ingredient: ing, quantity: item.Quantity, unit: ing.Unit}}
	case model.ItemKindRecipe:
		r, ok := recipes(item.RefID)
		if !ok || r.Servings <= 0 {
			return nil
		}
		out := make([]contribution, 0, len(r.Lines))
		for _, line := range r.Lines {
			ing, ok := ingredients(line.IngredientID)
			if !ok {
				continue
			}
			quantity := line.Quantity / float64(r.Servings) * item.Quantity
			out = append(out, contribution{ingredient: ing, quantity: quantity, unit: ing.Unit})
		}
		return out
	}
	return nil
}

// targetUnit picks the unit a contribution should consolidate under.
// Weight and volume normalization beat the ingredient's nominal unit so
// that mixed g/kg or ml/l entries for the same ingredient merge.
func targetUnit(ingredientUnit, currentUnit string) string {
	if KindOf(ingredientUnit) == KindMass || KindOf(currentUnit) == KindMass {
		return "g"
	}
	if KindOf(ingredientUnit) == KindVolume || KindOf(currentUnit) == KindVolume {
		return "ml"
	}
	return NormalizeUnit(ingredientUnit)
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
