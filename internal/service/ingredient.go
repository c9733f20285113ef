package service

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/davimtg/NutriPlanner-sub000/internal/model"
	"github.com/davimtg/NutriPlanner-sub000/internal/nutrition"
)

type IngredientInput struct {
	Name      string
	Unit      string
	Nutrients model.Nutrients
	Category  string
	Brand     string
	Price     float64
}

const ingredientColumns = `id, name, unit, energy_kcal, protein_g, carbs_g, fat_g, cholesterol_mg, fiber_g, category, brand, price, created_at, updated_at`

func CreateIngredient(db *sql.DB, in IngredientInput) (int64, error) {
	if err := validateIngredientInput(in); err != nil {
		return 0, err
	}
	res, err := db.Exec(`
INSERT INTO ingredients(name, unit, energy_kcal, protein_g, carbs_g, fat_g, cholesterol_mg, fiber_g, category, brand, price)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, strings.TrimSpace(in.Name), nutrition.NormalizeUnit(in.Unit),
		in.Nutrients.EnergyKcal, in.Nutrients.ProteinG, in.Nutrients.CarbsG, in.Nutrients.FatG, in.Nutrients.CholesterolMg, in.Nutrients.FiberG,
		strings.TrimSpace(in.Category), strings.TrimSpace(in.Brand), in.Price)
	if err != nil {
		return 0, fmt.Errorf("create ingredient: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve ingredient id: %w", err)
	}
	return id, nil
}

func ListIngredients(db *sql.DB) ([]model.Ingredient, error) {
	rows, err := db.Query(`SELECT ` + ingredientColumns + ` FROM ingredients ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()

	items := make([]model.Ingredient, 0)
	for rows.Next() {
		ing, err := scanIngredient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, ing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ingredients: %w", err)
	}
	return items, nil
}

func IngredientByID(db *sql.DB, id int64) (*model.Ingredient, error) {
	row := db.QueryRow(`SELECT `+ingredientColumns+` FROM ingredients WHERE id = ?`, id)
	ing, err := scanIngredient(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ing, nil
}

func ResolveIngredient(db *sql.DB, idOrName string) (*model.Ingredient, error) {
	idOrName = strings.TrimSpace(idOrName)
	if idOrName == "" {
		return nil, fmt.Errorf("ingredient identifier is required")
	}
	var row *sql.Row
	if id, err := parseIDLoose(idOrName); err == nil {
		row = db.QueryRow(`SELECT `+ingredientColumns+` FROM ingredients WHERE id = ?`, id)
	} else {
		row = db.QueryRow(`SELECT `+ingredientColumns+` FROM ingredients WHERE LOWER(name) = ?`, normalizeName(idOrName))
	}
	ing, err := scanIngredient(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("ingredient %q not found", idOrName)
	}
	if err != nil {
		return nil, fmt.Errorf("resolve ingredient %q: %w", idOrName, err)
	}
	return &ing, nil
}

func UpdateIngredient(db *sql.DB, idOrName string, in IngredientInput) error {
	if err := validateIngredientInput(in); err != nil {
		return err
	}
	ing, err := ResolveIngredient(db, idOrName)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
UPDATE ingredients SET
  name = ?, unit = ?, energy_kcal = ?, protein_g = ?, carbs_g = ?, fat_g = ?, cholesterol_mg = ?, fiber_g = ?,
  category = ?, brand = ?, price = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, strings.TrimSpace(in.Name), nutrition.NormalizeUnit(in.Unit),
		in.Nutrients.EnergyKcal, in.Nutrients.ProteinG, in.Nutrients.CarbsG, in.Nutrients.FatG, in.Nutrients.CholesterolMg, in.Nutrients.FiberG,
		strings.TrimSpace(in.Category), strings.TrimSpace(in.Brand), in.Price, ing.ID)
	if err != nil {
		return fmt.Errorf("update ingredient %q: %w", idOrName, err)
	}
	// Nutrient values or the declaration basis may have changed, so every
	// recipe that uses this ingredient needs fresh cached totals.
	return recalculateRecipesUsingIngredient(db, ing.ID)
}

func DeleteIngredient(db *sql.DB, idOrName string) error {
	ing, err := ResolveIngredient(db, idOrName)
	if err != nil {
		return err
	}
	if _, err := db.Exec(`DELETE FROM ingredients WHERE id = ?`, ing.ID); err != nil {
		return fmt.Errorf("delete ingredient %q: %w", idOrName, err)
	}
	// Recipe lines referencing the deleted ingredient stay behind as
	// dangling references and now contribute zero.
	return recalculateRecipesUsingIngredient(db, ing.ID)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIngredient(row rowScanner) (model.Ingredient, error) {
	var ing model.Ingredient
	err := row.Scan(&ing.ID, &ing.Name, &ing.Unit,
		&ing.Nutrients.EnergyKcal, &ing.Nutrients.ProteinG, &ing.Nutrients.CarbsG, &ing.Nutrients.FatG, &ing.Nutrients.CholesterolMg, &ing.Nutrients.FiberG,
		&ing.Category, &ing.Brand, &ing.Price, &ing.CreatedAt, &ing.UpdatedAt)
	if err == sql.ErrNoRows {
		return ing, err
	}
	if err != nil {
		return ing, fmt.Errorf("scan ingredient: %w", err)
	}
	return ing, nil
}

func validateIngredientInput(in IngredientInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("ingredient name is required")
	}
	if !nutrition.IsKnownUnit(in.Unit) {
		return fmt.Errorf("unsupported unit %q (supported: %s)", in.Unit, strings.Join(nutrition.KnownUnits(), ", "))
	}
	if err := validateNutrients(in.Nutrients); err != nil {
		return err
	}
	return validateNonNegativeFloat("price", in.Price)
}

func parseIDLoose(value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("not numeric")
	}
	return id, nil
}
