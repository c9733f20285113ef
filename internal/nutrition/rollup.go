package nutrition

import "github.com/davimtg/NutriPlanner-sub000/internal/model"

// Catalog lookups supplied by the caller. A false result means the
// reference is dangling; roll-ups treat that as a zero contribution
// rather than an error, so deleting a catalog entry never breaks the
// plans that still reference it.
type (
	IngredientLookup func(id int64) (model.Ingredient, bool)
	RecipeLookup     func(id int64) (model.Recipe, bool)
)

// IngredientNutrients returns the nutrients of quantity of an ingredient,
// honoring its per-unit or per-100 declaration basis.
func IngredientNutrients(ing model.Ingredient, quantity float64) model.Nutrients {
	return Scale(ing.Nutrients, BasisMultiplier(ing.Unit, quantity))
}

// RecipeTotal sums the nutrients of every ingredient line of a recipe.
// Lines whose ingredient is missing contribute nothing.
func RecipeTotal(lines []model.RecipeLine, lookup IngredientLookup) model.Nutrients {
	var total model.Nutrients
	for _, line := range lines {
		ing, ok := lookup(line.IngredientID)
		if !ok {
			continue
		}
		total = Sum(total, IngredientNutrients(ing, line.Quantity))
	}
	return total
}

// PerServing divides a recipe total across its servings. A recipe with
// zero or negative servings yields the zero record.
func PerServing(total model.Nutrients, servings int) model.Nutrients {
	if servings <= 0 {
		return model.Nutrients{}
	}
	return Scale(total, 1/float64(servings))
}

// PlannedItemNutrients computes the contribution of one planned item.
// For recipe items Quantity means servings consumed and may be fractional.
func PlannedItemNutrients(item model.PlannedItem, ingredients IngredientLookup, recipes RecipeLookup) model.Nutrients {
	switch item.Kind {
	case model.ItemKindIngredient:
		ing, ok := ingredients(item.RefID)
		if !ok {
			return model.Nutrients{}
		}
		return IngredientNutrients(ing, item.Quantity)
	case model.ItemKindRecipe:
		r, ok := recipes(item.RefID)
		if !ok || r.Servings <= 0 {
			return model.Nutrients{}
		}
		perServing := PerServing(RecipeTotal(r.Lines, ingredients), r.Servings)
		return Scale(perServing, item.Quantity)
	}
	return model.Nutrients{}
}

// MealNutrients sums the contributions of every item in a meal.
func MealNutrients(meal model.Meal, ingredients IngredientLookup, recipes RecipeLookup) model.Nutrients {
	var total model.Nutrients
	for _, item := range meal.Items {
		total = Sum(total, PlannedItemNutrients(item, ingredients, recipes))
	}
	return total
}

// PlanNutrients sums every meal of a daily plan.
func PlanNutrients(plan model.DailyPlan, ingredients IngredientLookup, recipes RecipeLookup) model.Nutrients {
	var total model.Nutrients
	for _, meal := range plan.Meals {
		total = Sum(total, MealNutrients(meal, ingredients, recipes))
	}
	return total
}
