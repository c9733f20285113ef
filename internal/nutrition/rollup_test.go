package nutrition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davimtg/NutriPlanner-sub000/internal/model"
	"github.com/davimtg/NutriPlanner-sub000/internal/nutrition"
)

func catalogLookups(ingredients map[int64]model.Ingredient, recipes map[int64]model.Recipe) (nutrition.IngredientLookup, nutrition.RecipeLookup) {
	li := func(id int64) (model.Ingredient, bool) {
		ing, ok := ingredients[id]
		return ing, ok
	}
	lr := func(id int64) (model.Recipe, bool) {
		r, ok := recipes[id]
		return r, ok
	}
	return li, lr
}

func TestIngredientNutrientsPer100Basis(t *testing.T) {
	rice := model.Ingredient{
		ID:   1,
		Unit: "g",
		Nutrients: model.Nutrients{EnergyKcal: 130, ProteinG: 2.4, CarbsG: 28, FatG: 0.3, CholesterolMg: 0, FiberG: 0.4},
	}

	got := nutrition.IngredientNutrients(rice, 250)
	assert.InDelta(t, 325, got.EnergyKcal, 1e-9, "250 g is 2.5x the per-100g record")
	assert.InDelta(t, 6, got.ProteinG, 1e-9)

	got = nutrition.IngredientNutrients(rice, 100)
	assert.Equal(t, rice.Nutrients, got, "100 g is exactly the declared record")
}

func TestIngredientNutrientsPerUnitBasis(t *testing.T) {
	egg := model.Ingredient{
		ID:        2,
		Unit:      "unidade",
		Nutrients: model.Nutrients{EnergyKcal: 70, ProteinG: 6, FatG: 5, CholesterolMg: 186},
	}

	got := nutrition.IngredientNutrients(egg, 3)
	assert.Equal(t, model.Nutrients{EnergyKcal: 210, ProteinG: 18, FatG: 15, CholesterolMg: 558}, got)
}

func TestRecipeTotalSkipsDanglingIngredients(t *testing.T) {
	ingredients := map[int64]model.Ingredient{
		1: {ID: 1, Unit: "g", Nutrients: model.Nutrients{EnergyKcal: 100}},
	}
	li, _ := catalogLookups(ingredients, nil)

	lines := []model.RecipeLine{
		{IngredientID: 1, Quantity: 200},
		{IngredientID: 999, Quantity: 50},
	}
	got := nutrition.RecipeTotal(lines, li)
	assert.Equal(t, 200.0, got.EnergyKcal, "missing ingredient contributes zero")
}

func TestPerServing(t *testing.T) {
	total := model.Nutrients{EnergyKcal: 800, ProteinG: 40}

	got := nutrition.PerServing(total, 4)
	assert.Equal(t, model.Nutrients{EnergyKcal: 200, ProteinG: 10}, got)

	assert.Equal(t, model.Nutrients{}, nutrition.PerServing(total, 0), "zero servings never divides")
	assert.Equal(t, model.Nutrients{}, nutrition.PerServing(total, -2))
}

func TestPlannedRecipeItemFractionalServings(t *testing.T) {
	ingredients := map[int64]model.Ingredient{
		1: {ID: 1, Unit: "g", Nutrients: model.Nutrients{EnergyKcal: 400}},
	}
	recipes := map[int64]model.Recipe{
		10: {
			ID:       10,
			Servings: 4,
			Lines:    []model.RecipeLine{{IngredientID: 1, Quantity: 200}}, // 800 kcal total
		},
	}
	li, lr := catalogLookups(ingredients, recipes)

	item := model.PlannedItem{Kind: model.ItemKindRecipe, RefID: 10, Quantity: 0.5}
	got := nutrition.PlannedItemNutrients(item, li, lr)
	assert.InDelta(t, 100, got.EnergyKcal, 1e-9, "half a 200 kcal serving")
}

func TestPlannedItemDanglingAndDegenerateReferences(t *testing.T) {
	li, lr := catalogLookups(nil, map[int64]model.Recipe{
		11: {ID: 11, Servings: 0, Lines: []model.RecipeLine{{IngredientID: 1, Quantity: 100}}},
	})

	assert.Equal(t, model.Nutrients{}, nutrition.PlannedItemNutrients(model.PlannedItem{Kind: model.ItemKindIngredient, RefID: 404, Quantity: 2}, li, lr))
	assert.Equal(t, model.Nutrients{}, nutrition.PlannedItemNutrients(model.PlannedItem{Kind: model.ItemKindRecipe, RefID: 404, Quantity: 1}, li, lr))
	assert.Equal(t, model.Nutrients{}, nutrition.PlannedItemNutrients(model.PlannedItem{Kind: model.ItemKindRecipe, RefID: 11, Quantity: 1}, li, lr), "recipe with zero servings contributes zero")
}

func TestRollupAdditivity(t *testing.T) {
	ingredients := map[int64]model.Ingredient{
		1: {ID: 1, Unit: "g", Nutrients: model.Nutrients{EnergyKcal: 130, ProteinG: 2.4}},
		2: {ID: 2, Unit: "unidade", Nutrients: model.Nutrients{EnergyKcal: 70, ProteinG: 6}},
	}
	recipes := map[int64]model.Recipe{
		10: {ID: 10, Servings: 2, Lines: []model.RecipeLine{
			{IngredientID: 1, Quantity: 300},
			{IngredientID: 2, Quantity: 2},
		}},
	}
	li, lr := catalogLookups(ingredients, recipes)

	plan := model.DailyPlan{
		Date: "2026-03-01",
		Meals: []model.Meal{
			{Type: "breakfast", Items: []model.PlannedItem{
				{Kind: model.ItemKindIngredient, RefID: 2, Quantity: 2},
			}},
			{Type: "lunch", Items: []model.PlannedItem{
				{Kind: model.ItemKindRecipe, RefID: 10, Quantity: 1},
				{Kind: model.ItemKindIngredient, RefID: 1, Quantity: 150},
			}},
			{Type: "dinner"},
			{Type: "snack", Items: []model.PlannedItem{
				{Kind: model.ItemKindIngredient, RefID: 404, Quantity: 5},
			}},
		},
	}

	var mealSum model.Nutrients
	for _, meal := range plan.Meals {
		var itemSum model.Nutrients
		for _, item := range meal.Items {
			itemSum = nutrition.Sum(itemSum, nutrition.PlannedItemNutrients(item, li, lr))
		}
		mealTotal := nutrition.MealNutrients(meal, li, lr)
		require.Equal(t, itemSum, mealTotal, "meal %s equals the sum of its items", meal.Type)
		mealSum = nutrition.Sum(mealSum, mealTotal)
	}
	assert.Equal(t, mealSum, nutrition.PlanNutrients(plan, li, lr), "plan total equals sum of meal totals")
}
