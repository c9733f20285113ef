package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/davimtg/NutriPlanner-sub000/internal/model"
	"github.com/davimtg/NutriPlanner-sub000/internal/nutrition"
)

type PlannedItemInput struct {
	MealType     string
	Kind         string
	Ref          string
	Quantity     float64
	NameOverride string
}

// EnsureDailyPlan returns the plan for the given date, synthesizing an
// empty plan with all meal slots on first access.
func EnsureDailyPlan(db *sql.DB, date string) (*model.DailyPlan, error) {
	if _, err := parseDate(date); err != nil {
		return nil, err
	}
	plan, err := planByDate(db, date)
	if err != nil {
		return nil, err
	}
	if plan != nil {
		return plan, nil
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin plan tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`INSERT INTO daily_plans(plan_date) VALUES(?)`, date)
	if err != nil {
		return nil, fmt.Errorf("create daily plan: %w", err)
	}
	planID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("resolve daily plan id: %w", err)
	}
	for _, mealType := range model.MealTypes {
		if _, err := tx.Exec(`INSERT INTO meals(plan_id, meal_type) VALUES(?, ?)`, planID, mealType); err != nil {
			return nil, fmt.Errorf("create %s meal: %w", mealType, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit plan tx: %w", err)
	}
	return planByDate(db, date)
}

// AddPlannedItem plans an ingredient quantity or recipe servings into one
// meal of the given date. The plan is created on first use.
func AddPlannedItem(db *sql.DB, date string, in PlannedItemInput) (int64, error) {
	if !isValidMealType(in.MealType) {
		return 0, fmt.Errorf("unknown meal type %q (expected %s)", in.MealType, strings.Join(model.MealTypes, ", "))
	}
	if in.Quantity <= 0 {
		return 0, fmt.Errorf("quantity must be > 0")
	}

	var refID int64
	switch in.Kind {
	case model.ItemKindIngredient:
		ing, err := ResolveIngredient(db, in.Ref)
		if err != nil {
			return 0, err
		}
		refID = ing.ID
	case model.ItemKindRecipe:
		r, err := ResolveRecipe(db, in.Ref)
		if err != nil {
			return 0, err
		}
		refID = r.ID
	default:
		return 0, fmt.Errorf("unknown item kind %q (expected ingredient or recipe)", in.Kind)
	}

	plan, err := EnsureDailyPlan(db, date)
	if err != nil {
		return 0, err
	}
	mealID, err := mealIDFor(db, plan.ID, in.MealType)
	if err != nil {
		return 0, err
	}

	var position int
	if err := db.QueryRow(`SELECT COALESCE(MAX(position), 0) + 1 FROM planned_items WHERE meal_id = ?`, mealID).Scan(&position); err != nil {
		return 0, fmt.Errorf("next item position: %w", err)
	}
	res, err := db.Exec(`
INSERT INTO planned_items(meal_id, kind, ref_id, quantity, name_override, position)
VALUES(?, ?, ?, ?, ?, ?)
`, mealID, in.Kind, refID, in.Quantity, strings.TrimSpace(in.NameOverride), position)
	if err != nil {
		return 0, fmt.Errorf("add planned item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve planned item id: %w", err)
	}
	if err := RecalculatePlanNutrients(db, plan.ID); err != nil {
		return 0, err
	}
	return id, nil
}

func UpdatePlannedItemQuantity(db *sql.DB, itemID int64, quantity float64) error {
	if itemID <= 0 {
		return fmt.Errorf("item id must be > 0")
	}
	if quantity <= 0 {
		return fmt.Errorf("quantity must be > 0")
	}
	planID, err := planIDForItem(db, itemID)
	if err != nil {
		return err
	}
	if _, err := db.Exec(`
UPDATE planned_items SET quantity = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
`, quantity, itemID); err != nil {
		return fmt.Errorf("update planned item %d: %w", itemID, err)
	}
	return RecalculatePlanNutrients(db, planID)
}

func RemovePlannedItem(db *sql.DB, itemID int64) error {
	if itemID <= 0 {
		return fmt.Errorf("item id must be > 0")
	}
	planID, err := planIDForItem(db, itemID)
	if err != nil {
		return err
	}
	if _, err := db.Exec(`DELETE FROM planned_items WHERE id = ?`, itemID); err != nil {
		return fmt.Errorf("remove planned item %d: %w", itemID, err)
	}
	return RecalculatePlanNutrients(db, planID)
}

// RecalculatePlanNutrients recomputes the cached totals of a plan strictly
// bottom-up: every meal cache first, then the plan cache from the fresh
// meal values.
func RecalculatePlanNutrients(db *sql.DB, planID int64) error {
	plan, err := planByID(db, planID)
	if err != nil {
		return err
	}
	if plan == nil {
		return fmt.Errorf("daily plan %d not found", planID)
	}
	ingredients, err := loadIngredientLookup(db)
	if err != nil {
		return err
	}
	recipes, err := loadRecipeLookup(db)
	if err != nil {
		return err
	}

	var planTotal model.Nutrients
	for _, meal := range plan.Meals {
		mealTotal := nutrition.MealNutrients(meal, ingredients, recipes)
		if _, err := db.Exec(`
UPDATE meals SET energy_kcal = ?, protein_g = ?, carbs_g = ?, fat_g = ?, cholesterol_mg = ?, fiber_g = ?
WHERE id = ?
`, mealTotal.EnergyKcal, mealTotal.ProteinG, mealTotal.CarbsG, mealTotal.FatG, mealTotal.CholesterolMg, mealTotal.FiberG, meal.ID); err != nil {
			return fmt.Errorf("update %s meal totals: %w", meal.Type, err)
		}
		planTotal = nutrition.Sum(planTotal, mealTotal)
	}
	if _, err := db.Exec(`
UPDATE daily_plans SET energy_kcal = ?, protein_g = ?, carbs_g = ?, fat_g = ?, cholesterol_mg = ?, fiber_g = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, planTotal.EnergyKcal, planTotal.ProteinG, planTotal.CarbsG, planTotal.FatG, planTotal.CholesterolMg, planTotal.FiberG, planID); err != nil {
		return fmt.Errorf("update plan totals: %w", err)
	}
	return nil
}

// RecalculateAllPlans refreshes every plan cache. Used after catalog
// mutations whose reach across plans is not tracked.
func RecalculateAllPlans(db *sql.DB) error {
	rows, err := db.Query(`SELECT id FROM daily_plans`)
	if err != nil {
		return fmt.Errorf("list daily plans: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("scan plan id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate plan ids: %w", err)
	}
	for _, id := range ids {
		if err := RecalculatePlanNutrients(db, id); err != nil {
			return err
		}
	}
	return nil
}

func recalculatePlansUsingRecipe(db *sql.DB, recipeID int64) error {
	rows, err := db.Query(`
SELECT DISTINCT m.plan_id
FROM planned_items pi
JOIN meals m ON m.id = pi.meal_id
WHERE pi.kind = 'recipe' AND pi.ref_id = ?
`, recipeID)
	if err != nil {
		return fmt.Errorf("find plans using recipe %d: %w", recipeID, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("scan plan id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate plan ids: %w", err)
	}
	for _, id := range ids {
		if err := RecalculatePlanNutrients(db, id); err != nil {
			return err
		}
	}
	return nil
}

// PlanForDate returns the stored plan for a date with its meals and items,
// or nil when no plan exists yet.
func PlanForDate(db *sql.DB, date string) (*model.DailyPlan, error) {
	if _, err := parseDate(date); err != nil {
		return nil, err
	}
	return planByDate(db, date)
}

func planByDate(db *sql.DB, date string) (*model.DailyPlan, error) {
	row := db.QueryRow(`
SELECT id, plan_date, energy_kcal, protein_g, carbs_g, fat_g, cholesterol_mg, fiber_g, created_at, updated_at
FROM daily_plans WHERE plan_date = ?
`, date)
	return scanPlanWithMeals(db, row)
}

func planByID(db *sql.DB, id int64) (*model.DailyPlan, error) {
	row := db.QueryRow(`
SELECT id, plan_date, energy_kcal, protein_g, carbs_g, fat_g, cholesterol_mg, fiber_g, created_at, updated_at
FROM daily_plans WHERE id = ?
`, id)
	return scanPlanWithMeals(db, row)
}

func scanPlanWithMeals(db *sql.DB, row *sql.Row) (*model.DailyPlan, error) {
	var p model.DailyPlan
	err := row.Scan(&p.ID, &p.Date,
		&p.Nutrients.EnergyKcal, &p.Nutrients.ProteinG, &p.Nutrients.CarbsG, &p.Nutrients.FatG, &p.Nutrients.CholesterolMg, &p.Nutrients.FiberG,
		&p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan daily plan: %w", err)
	}
	meals, err := mealsForPlan(db, p.ID)
	if err != nil {
		return nil, err
	}
	p.Meals = meals
	return &p, nil
}

// mealsForPlan loads the plan's meals with their items, in the fixed
// meal-type order.
func mealsForPlan(db *sql.DB, planID int64) ([]model.Meal, error) {
	rows, err := db.Query(`
SELECT id, plan_id, meal_type, energy_kcal, protein_g, carbs_g, fat_g, cholesterol_mg, fiber_g
FROM meals WHERE plan_id = ?
`, planID)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	defer rows.Close()

	byType := make(map[string]model.Meal, len(model.MealTypes))
	for rows.Next() {
		var m model.Meal
		if err := rows.Scan(&m.ID, &m.PlanID, &m.Type,
			&m.Nutrients.EnergyKcal, &m.Nutrients.ProteinG, &m.Nutrients.CarbsG, &m.Nutrients.FatG, &m.Nutrients.CholesterolMg, &m.Nutrients.FiberG); err != nil {
			return nil, fmt.Errorf("scan meal: %w", err)
		}
		byType[m.Type] = m
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meals: %w", err)
	}

	meals := make([]model.Meal, 0, len(model.MealTypes))
	for _, mealType := range model.MealTypes {
		m, ok := byType[mealType]
		if !ok {
			continue
		}
		items, err := itemsForMeal(db, m.ID)
		if err != nil {
			return nil, err
		}
		m.Items = items
		meals = append(meals, m)
	}
	return meals, nil
}

func itemsForMeal(db *sql.DB, mealID int64) ([]model.PlannedItem, error) {
	rows, err := db.Query(`
SELECT id, meal_id, kind, ref_id, quantity, name_override, position, created_at, updated_at
FROM planned_items
WHERE meal_id = ?
ORDER BY position ASC, id ASC
`, mealID)
	if err != nil {
		return nil, fmt.Errorf("list planned items: %w", err)
	}
	defer rows.Close()

	items := make([]model.PlannedItem, 0)
	for rows.Next() {
		var it model.PlannedItem
		if err := rows.Scan(&it.ID, &it.MealID, &it.Kind, &it.RefID, &it.Quantity, &it.NameOverride, &it.Position, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan planned item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate planned items: %w", err)
	}
	return items, nil
}

func mealIDFor(db *sql.DB, planID int64, mealType string) (int64, error) {
	var id int64
	if err := db.QueryRow(`SELECT id FROM meals WHERE plan_id = ? AND meal_type = ?`, planID, mealType).Scan(&id); err != nil {
		if err == sql.ErrNoRows {
			return 0, fmt.Errorf("meal %q not found for plan %d", mealType, planID)
		}
		return 0, fmt.Errorf("resolve %s meal: %w", mealType, err)
	}
	return id, nil
}

func planIDForItem(db *sql.DB, itemID int64) (int64, error) {
	var planID int64
	err := db.QueryRow(`
SELECT m.plan_id FROM planned_items pi JOIN meals m ON m.id = pi.meal_id WHERE pi.id = ?
`, itemID).Scan(&planID)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("planned item %d not found", itemID)
	}
	if err != nil {
		return 0, fmt.Errorf("resolve planned item %d: %w", itemID, err)
	}
	return planID, nil
}
