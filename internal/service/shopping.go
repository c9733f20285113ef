package service

import (
	"database/sql"
	"fmt"

	"github.com/davimtg/NutriPlanner-sub000/internal/model"
	"github.com/davimtg/NutriPlanner-sub000/internal/nutrition"
)

// GenerateShoppingList consolidates every planned item between fromDate
// and toDate (inclusive) and persists the result as a snapshot list.
// fallbackCategory labels lines whose ingredient has no category; empty
// uses the built-in default.
func GenerateShoppingList(db *sql.DB, fromDate, toDate, fallbackCategory string) (int64, []nutrition.ShoppingLine, error) {
	from, err := parseDate(fromDate)
	if err != nil {
		return 0, nil, err
	}
	to, err := parseDate(toDate)
	if err != nil {
		return 0, nil, err
	}
	if from.After(to) {
		return 0, nil, fmt.Errorf("from date must be <= to date")
	}

	plans, err := plansInRange(db, fromDate, toDate)
	if err != nil {
		return 0, nil, err
	}
	ingredients, err := loadIngredientLookup(db)
	if err != nil {
		return 0, nil, err
	}
	recipes, err := loadRecipeLookup(db)
	if err != nil {
		return 0, nil, err
	}
	conversions, err := loadConversions(db)
	if err != nil {
		return 0, nil, err
	}

	lines := nutrition.BuildShoppingList(plans, from, to, ingredients, recipes, conversions, fallbackCategory)

	tx, err := db.Begin()
	if err != nil {
		return 0, nil, fmt.Errorf("begin shopping list tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`INSERT INTO shopping_lists(from_date, to_date) VALUES(?, ?)`, fromDate, toDate)
	if err != nil {
		return 0, nil, fmt.Errorf("create shopping list: %w", err)
	}
	listID, err := res.LastInsertId()
	if err != nil {
		return 0, nil, fmt.Errorf("resolve shopping list id: %w", err)
	}
	for _, line := range lines {
		if _, err := tx.Exec(`
INSERT INTO shopping_items(list_id, ingredient_id, name, quantity, unit, category, purchased)
VALUES(?, ?, ?, ?, ?, ?, 0)
`, listID, line.IngredientID, line.Name, line.Quantity, line.Unit, line.Category); err != nil {
			return 0, nil, fmt.Errorf("save shopping line %q: %w", line.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, nil, fmt.Errorf("commit shopping list tx: %w", err)
	}
	return listID, lines, nil
}

func ListShoppingLists(db *sql.DB) ([]model.ShoppingList, error) {
	rows, err := db.Query(`SELECT id, from_date, to_date, created_at FROM shopping_lists ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list shopping lists: %w", err)
	}
	defer rows.Close()

	items := make([]model.ShoppingList, 0)
	for rows.Next() {
		var l model.ShoppingList
		if err := rows.Scan(&l.ID, &l.FromDate, &l.ToDate, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan shopping list: %w", err)
		}
		items = append(items, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shopping lists: %w", err)
	}
	return items, nil
}

func ShoppingListItems(db *sql.DB, listID int64) ([]model.ShoppingItem, error) {
	rows, err := db.Query(`
SELECT id, list_id, ingredient_id, name, quantity, unit, category, purchased
FROM shopping_items
WHERE list_id = ?
ORDER BY category ASC, name ASC
`, listID)
	if err != nil {
		return nil, fmt.Errorf("list shopping items: %w", err)
	}
	defer rows.Close()

	items := make([]model.ShoppingItem, 0)
	for rows.Next() {
		var it model.ShoppingItem
		if err := rows.Scan(&it.ID, &it.ListID, &it.IngredientID, &it.Name, &it.Quantity, &it.Unit, &it.Category, &it.Purchased); err != nil {
			return nil, fmt.Errorf("scan shopping item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shopping items: %w", err)
	}
	return items, nil
}

// MarkPurchased flips the caller-managed purchased flag of one line.
func MarkPurchased(db *sql.DB, itemID int64, purchased bool) error {
	if itemID <= 0 {
		return fmt.Errorf("item id must be > 0")
	}
	res, err := db.Exec(`UPDATE shopping_items SET purchased = ? WHERE id = ?`, purchased, itemID)
	if err != nil {
		return fmt.Errorf("mark shopping item %d: %w", itemID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("shopping item %d not found", itemID)
	}
	return nil
}

// plansInRange loads the plans dated within [fromDate, toDate] with their
// meals and items. Dates are compared lexically, which is safe for the
// YYYY-MM-DD layout.
func plansInRange(db *sql.DB, fromDate, toDate string) ([]model.DailyPlan, error) {
	rows, err := db.Query(`
SELECT id FROM daily_plans WHERE plan_date >= ? AND plan_date <= ? ORDER BY plan_date ASC
`, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("list plans in range: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan plan id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate plan ids: %w", err)
	}

	plans := make([]model.DailyPlan, 0, len(ids))
	for _, id := range ids {
		plan, err := planByID(db, id)
		if err != nil {
			return nil, err
		}
		if plan != nil {
			plans = append(plans, *plan)
		}
	}
	return plans, nil
}
