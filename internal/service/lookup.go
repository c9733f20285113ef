package service

import (
	"database/sql"
	"fmt"

	"github.com/davimtg/NutriPlanner-sub000/internal/model"
	"github.com/davimtg/NutriPlanner-sub000/internal/nutrition"
)

// loadIngredientLookup snapshots the ingredient catalog into a read-only
// lookup for the nutrition engine.
func loadIngredientLookup(db *sql.DB) (nutrition.IngredientLookup, error) {
	items, err := ListIngredients(db)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]model.Ingredient, len(items))
	for _, ing := range items {
		byID[ing.ID] = ing
	}
	return func(id int64) (model.Ingredient, bool) {
		ing, ok := byID[id]
		return ing, ok
	}, nil
}

// loadRecipeLookup snapshots all recipes with their lines.
func loadRecipeLookup(db *sql.DB) (nutrition.RecipeLookup, error) {
	recipes, err := ListRecipes(db)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]model.Recipe, len(recipes))
	for _, r := range recipes {
		lines, err := recipeLinesByID(db, r.ID)
		if err != nil {
			return nil, err
		}
		r.Lines = lines
		byID[r.ID] = r
	}
	return func(id int64) (model.Recipe, bool) {
		r, ok := byID[id]
		return r, ok
	}, nil
}

func loadConversions(db *sql.DB) ([]model.UnitConversion, error) {
	rows, err := db.Query(`
SELECT id, ingredient_id, unit_a, unit_b, quantity_a, quantity_b, created_at
FROM unit_conversions
ORDER BY id ASC
`)
	if err != nil {
		return nil, fmt.Errorf("list unit conversions: %w", err)
	}
	defer rows.Close()

	items := make([]model.UnitConversion, 0)
	for rows.Next() {
		var c model.UnitConversion
		if err := rows.Scan(&c.ID, &c.IngredientID, &c.UnitA, &c.UnitB, &c.QuantityA, &c.QuantityB, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan unit conversion: %w", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate unit conversions: %w", err)
	}
	return items, nil
}
