package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/davimtg/NutriPlanner-sub000/internal/model"
	"github.com/davimtg/NutriPlanner-sub000/internal/nutrition"
)

type RecipeInput struct {
	Name         string
	Instructions string
	Servings     int
}

const recipeColumns = `id, name, instructions, servings,
  total_energy_kcal, total_protein_g, total_carbs_g, total_fat_g, total_cholesterol_mg, total_fiber_g,
  serving_energy_kcal, serving_protein_g, serving_carbs_g, serving_fat_g, serving_cholesterol_mg, serving_fiber_g,
  created_at, updated_at`

func CreateRecipe(db *sql.DB, in RecipeInput) (int64, error) {
	if err := validateRecipeInput(in); err != nil {
		return 0, err
	}
	res, err := db.Exec(`
INSERT INTO recipes(name, instructions, servings)
VALUES(?, ?, ?)
`, strings.TrimSpace(in.Name), strings.TrimSpace(in.Instructions), in.Servings)
	if err != nil {
		return 0, fmt.Errorf("create recipe: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve recipe id: %w", err)
	}
	return id, nil
}

func ListRecipes(db *sql.DB) ([]model.Recipe, error) {
	rows, err := db.Query(`SELECT ` + recipeColumns + ` FROM recipes ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	items := make([]model.Recipe, 0)
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}
	return items, nil
}

func ResolveRecipe(db *sql.DB, idOrName string) (*model.Recipe, error) {
	idOrName = strings.TrimSpace(idOrName)
	if idOrName == "" {
		return nil, fmt.Errorf("recipe identifier is required")
	}
	var row *sql.Row
	if id, err := parseIDLoose(idOrName); err == nil {
		row = db.QueryRow(`SELECT `+recipeColumns+` FROM recipes WHERE id = ?`, id)
	} else {
		row = db.QueryRow(`SELECT `+recipeColumns+` FROM recipes WHERE LOWER(name) = ?`, normalizeName(idOrName))
	}
	r, err := scanRecipe(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("recipe %q not found", idOrName)
	}
	if err != nil {
		return nil, fmt.Errorf("resolve recipe %q: %w", idOrName, err)
	}
	lines, err := recipeLinesByID(db, r.ID)
	if err != nil {
		return nil, err
	}
	r.Lines = lines
	return &r, nil
}

func UpdateRecipe(db *sql.DB, idOrName string, in RecipeInput) error {
	if err := validateRecipeInput(in); err != nil {
		return err
	}
	recipe, err := ResolveRecipe(db, idOrName)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
UPDATE recipes SET name = ?, instructions = ?, servings = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, strings.TrimSpace(in.Name), strings.TrimSpace(in.Instructions), in.Servings, recipe.ID)
	if err != nil {
		return fmt.Errorf("update recipe %q: %w", idOrName, err)
	}
	// Servings may have changed, which shifts the per-serving cache.
	return RecalculateRecipeNutrients(db, recipe.ID)
}

func DeleteRecipe(db *sql.DB, idOrName string) error {
	recipe, err := ResolveRecipe(db, idOrName)
	if err != nil {
		return err
	}
	if _, err := db.Exec(`DELETE FROM recipes WHERE id = ?`, recipe.ID); err != nil {
		return fmt.Errorf("delete recipe %q: %w", idOrName, err)
	}
	// Planned items referencing the recipe now dangle and contribute
	// zero everywhere, so plan caches must follow.
	return RecalculateAllPlans(db)
}

func AddRecipeLine(db *sql.DB, recipeIdentifier, ingredientIdentifier string, quantity float64) (int64, error) {
	if quantity <= 0 {
		return 0, fmt.Errorf("line quantity must be > 0")
	}
	recipe, err := ResolveRecipe(db, recipeIdentifier)
	if err != nil {
		return 0, err
	}
	ing, err := ResolveIngredient(db, ingredientIdentifier)
	if err != nil {
		return 0, err
	}
	var position int
	if err := db.QueryRow(`SELECT COALESCE(MAX(position), 0) + 1 FROM recipe_lines WHERE recipe_id = ?`, recipe.ID).Scan(&position); err != nil {
		return 0, fmt.Errorf("next line position: %w", err)
	}
	res, err := db.Exec(`
INSERT INTO recipe_lines(recipe_id, ingredient_id, quantity, position)
VALUES(?, ?, ?, ?)
`, recipe.ID, ing.ID, quantity, position)
	if err != nil {
		return 0, fmt.Errorf("add recipe line: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve recipe line id: %w", err)
	}
	if err := RecalculateRecipeNutrients(db, recipe.ID); err != nil {
		return 0, err
	}
	return id, nil
}

func UpdateRecipeLine(db *sql.DB, lineID int64, quantity float64) error {
	if lineID <= 0 {
		return fmt.Errorf("line id must be > 0")
	}
	if quantity <= 0 {
		return fmt.Errorf("line quantity must be > 0")
	}
	var recipeID int64
	if err := db.QueryRow(`SELECT recipe_id FROM recipe_lines WHERE id = ?`, lineID).Scan(&recipeID); err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("recipe line %d not found", lineID)
		}
		return fmt.Errorf("resolve recipe line %d: %w", lineID, err)
	}
	if _, err := db.Exec(`
UPDATE recipe_lines SET quantity = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
`, quantity, lineID); err != nil {
		return fmt.Errorf("update recipe line %d: %w", lineID, err)
	}
	return RecalculateRecipeNutrients(db, recipeID)
}

func DeleteRecipeLine(db *sql.DB, lineID int64) error {
	if lineID <= 0 {
		return fmt.Errorf("line id must be > 0")
	}
	var recipeID int64
	if err := db.QueryRow(`SELECT recipe_id FROM recipe_lines WHERE id = ?`, lineID).Scan(&recipeID); err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("recipe line %d not found", lineID)
		}
		return fmt.Errorf("resolve recipe line %d: %w", lineID, err)
	}
	if _, err := db.Exec(`DELETE FROM recipe_lines WHERE id = ?`, lineID); err != nil {
		return fmt.Errorf("delete recipe line %d: %w", lineID, err)
	}
	return RecalculateRecipeNutrients(db, recipeID)
}

func recipeLinesByID(db *sql.DB, recipeID int64) ([]model.RecipeLine, error) {
	rows, err := db.Query(`
SELECT id, recipe_id, ingredient_id, quantity, position, created_at, updated_at
FROM recipe_lines
WHERE recipe_id = ?
ORDER BY position ASC, id ASC
`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("list recipe lines: %w", err)
	}
	defer rows.Close()

	items := make([]model.RecipeLine, 0)
	for rows.Next() {
		var line model.RecipeLine
		if err := rows.Scan(&line.ID, &line.RecipeID, &line.IngredientID, &line.Quantity, &line.Position, &line.CreatedAt, &line.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan recipe line: %w", err)
		}
		items = append(items, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipe lines: %w", err)
	}
	return items, nil
}

// RecalculateRecipeNutrients rebuilds the cached total and per-serving
// nutrient columns of one recipe from its current lines. Lines referencing
// deleted ingredients contribute zero.
func RecalculateRecipeNutrients(db *sql.DB, recipeID int64) error {
	lines, err := recipeLinesByID(db, recipeID)
	if err != nil {
		return err
	}
	var servings int
	if err := db.QueryRow(`SELECT servings FROM recipes WHERE id = ?`, recipeID).Scan(&servings); err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("recipe %d not found", recipeID)
		}
		return fmt.Errorf("resolve recipe %d servings: %w", recipeID, err)
	}
	lookup, err := loadIngredientLookup(db)
	if err != nil {
		return err
	}

	total := nutrition.RecipeTotal(lines, lookup)
	perServing := nutrition.PerServing(total, servings)

	_, err = db.Exec(`
UPDATE recipes SET
  total_energy_kcal = ?, total_protein_g = ?, total_carbs_g = ?, total_fat_g = ?, total_cholesterol_mg = ?, total_fiber_g = ?,
  serving_energy_kcal = ?, serving_protein_g = ?, serving_carbs_g = ?, serving_fat_g = ?, serving_cholesterol_mg = ?, serving_fiber_g = ?,
  updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, total.EnergyKcal, total.ProteinG, total.CarbsG, total.FatG, total.CholesterolMg, total.FiberG,
		perServing.EnergyKcal, perServing.ProteinG, perServing.CarbsG, perServing.FatG, perServing.CholesterolMg, perServing.FiberG,
		recipeID)
	if err != nil {
		return fmt.Errorf("update recipe %d totals: %w", recipeID, err)
	}
	// Recipe totals feed meal and plan caches.
	return recalculatePlansUsingRecipe(db, recipeID)
}

// recalculateRecipesUsingIngredient refreshes the cached totals of every
// recipe with a line for the given ingredient, then the plan caches.
func recalculateRecipesUsingIngredient(db *sql.DB, ingredientID int64) error {
	rows, err := db.Query(`SELECT DISTINCT recipe_id FROM recipe_lines WHERE ingredient_id = ?`, ingredientID)
	if err != nil {
		return fmt.Errorf("find recipes using ingredient %d: %w", ingredientID, err)
	}
	defer rows.Close()

	var recipeIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("scan recipe id: %w", err)
		}
		recipeIDs = append(recipeIDs, id)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate recipe ids: %w", err)
	}
	for _, id := range recipeIDs {
		if err := RecalculateRecipeNutrients(db, id); err != nil {
			return err
		}
	}
	// The ingredient may also be planned directly.
	return RecalculateAllPlans(db)
}

func scanRecipe(row rowScanner) (model.Recipe, error) {
	var r model.Recipe
	err := row.Scan(&r.ID, &r.Name, &r.Instructions, &r.Servings,
		&r.TotalNutrients.EnergyKcal, &r.TotalNutrients.ProteinG, &r.TotalNutrients.CarbsG, &r.TotalNutrients.FatG, &r.TotalNutrients.CholesterolMg, &r.TotalNutrients.FiberG,
		&r.PerServing.EnergyKcal, &r.PerServing.ProteinG, &r.PerServing.CarbsG, &r.PerServing.FatG, &r.PerServing.CholesterolMg, &r.PerServing.FiberG,
		&r.CreatedAt, &r.UpdatedAt)
	if err == sql.ErrNoRows {
		return r, err
	}
	if err != nil {
		return r, fmt.Errorf("scan recipe: %w", err)
	}
	return r, nil
}

func validateRecipeInput(in RecipeInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("recipe name is required")
	}
	if in.Servings <= 0 {
		return fmt.Errorf("servings must be > 0")
	}
	return nil
}
