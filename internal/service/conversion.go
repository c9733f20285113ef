package service

import (
	"database/sql"
	"fmt"

	"github.com/davimtg/NutriPlanner-sub000/internal/model"
	"github.com/davimtg/NutriPlanner-sub000/internal/nutrition"
)

type ConversionInput struct {
	Ingredient string
	UnitA      string
	UnitB      string
	QuantityA  float64
	QuantityB  float64
}

// AddConversion records "QuantityA UnitA equals QuantityB UnitB" for one
// ingredient, e.g. 1 unidade of egg equals 50 g.
func AddConversion(db *sql.DB, in ConversionInput) (int64, error) {
	ing, err := ResolveIngredient(db, in.Ingredient)
	if err != nil {
		return 0, err
	}
	unitA := nutrition.NormalizeUnit(in.UnitA)
	unitB := nutrition.NormalizeUnit(in.UnitB)
	if unitA == "" || unitB == "" {
		return 0, fmt.Errorf("both units are required")
	}
	if unitA == unitB {
		return 0, fmt.Errorf("units must differ")
	}
	if in.QuantityA <= 0 || in.QuantityB <= 0 {
		return 0, fmt.Errorf("conversion quantities must be > 0")
	}
	res, err := db.Exec(`
INSERT INTO unit_conversions(ingredient_id, unit_a, unit_b, quantity_a, quantity_b)
VALUES(?, ?, ?, ?, ?)
`, ing.ID, unitA, unitB, in.QuantityA, in.QuantityB)
	if err != nil {
		return 0, fmt.Errorf("add unit conversion: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve unit conversion id: %w", err)
	}
	return id, nil
}

func ListConversions(db *sql.DB, ingredientIdentifier string) ([]model.UnitConversion, error) {
	if ingredientIdentifier == "" {
		return loadConversions(db)
	}
	ing, err := ResolveIngredient(db, ingredientIdentifier)
	if err != nil {
		return nil, err
	}
	all, err := loadConversions(db)
	if err != nil {
		return nil, err
	}
	items := make([]model.UnitConversion, 0, len(all))
	for _, c := range all {
		if c.IngredientID == ing.ID {
			items = append(items, c)
		}
	}
	return items, nil
}

func DeleteConversion(db *sql.DB, id int64) error {
	if id <= 0 {
		return fmt.Errorf("conversion id must be > 0")
	}
	res, err := db.Exec(`DELETE FROM unit_conversions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete unit conversion %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("unit conversion %d not found", id)
	}
	return nil
}

// ConvertQuantity exposes the unit resolver as a standalone utility, e.g.
// for validating a manual unit entry. ok=false means no built-in rule and
// no user conversion applied; the quantity comes back unchanged. An empty
// ingredient identifier limits resolution to the built-in rules.
func ConvertQuantity(db *sql.DB, quantity float64, fromUnit, toUnit, ingredientIdentifier string) (float64, bool, error) {
	if ingredientIdentifier == "" {
		converted, ok := nutrition.Convert(quantity, fromUnit, toUnit, 0, nil)
		return converted, ok, nil
	}
	ing, err := ResolveIngredient(db, ingredientIdentifier)
	if err != nil {
		return 0, false, err
	}
	conversions, err := loadConversions(db)
	if err != nil {
		return 0, false, err
	}
	converted, ok := nutrition.Convert(quantity, fromUnit, toUnit, ing.ID, conversions)
	return converted, ok, nil
}
