package model

import "time"

// Nutrients holds the fixed nutrient profile tracked for every entity.
// For an ingredient the values are stated relative to its unit: per 100
// base units when the unit is g, ml, 100g or 100ml, per single unit
// otherwise. Everywhere else the values are absolute totals.
type Nutrients struct {
	EnergyKcal    float64
	ProteinG      float64
	CarbsG        float64
	FatG          float64
	CholesterolMg float64
	FiberG        float64
}

type Ingredient struct {
	ID        int64
	Name      string
	Unit      string
	Nutrients Nutrients
	Category  string
	Brand     string
	Price     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Recipe struct {
	ID             int64
	Name           string
	Instructions   string
	Servings       int
	Lines          []RecipeLine
	TotalNutrients Nutrients
	PerServing     Nutrients
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RecipeLine references an ingredient with a quantity expressed in that
// ingredient's own unit. Position is display order only.
type RecipeLine struct {
	ID           int64
	RecipeID     int64
	IngredientID int64
	Quantity     float64
	Position     int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Planned item kinds.
const (
	ItemKindIngredient = "ingredient"
	ItemKindRecipe     = "recipe"
)

// PlannedItem is one entry of a meal. For ingredient items Quantity is in
// the ingredient's own unit; for recipe items it is servings consumed and
// may be fractional.
type PlannedItem struct {
	ID           int64
	MealID       int64
	Kind         string
	RefID        int64
	Quantity     float64
	NameOverride string
	Position     int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Meal struct {
	ID        int64
	PlanID    int64
	Type      string
	Nutrients Nutrients
	Items     []PlannedItem
}

// MealTypes is the fixed ordered set of meals every daily plan carries.
var MealTypes = []string{"breakfast", "lunch", "dinner", "snack"}

type DailyPlan struct {
	ID        int64
	Date      string
	Nutrients Nutrients
	Meals     []Meal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UnitConversion states "QuantityA of UnitA equals QuantityB of UnitB" for
// one specific ingredient. It is directionless.
type UnitConversion struct {
	ID           int64
	IngredientID int64
	UnitA        string
	UnitB        string
	QuantityA    float64
	QuantityB    float64
	CreatedAt    time.Time
}

type ShoppingList struct {
	ID        int64
	FromDate  string
	ToDate    string
	CreatedAt time.Time
}

type ShoppingItem struct {
	ID           int64
	ListID       int64
	IngredientID int64
	Name         string
	Quantity     float64
	Unit         string
	Category     string
	Purchased    bool
}
