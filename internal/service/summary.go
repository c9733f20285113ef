package service

import (
	"database/sql"

	"github.com/davimtg/NutriPlanner-sub000/internal/model"
)

type MealSummary struct {
	Type      string          `json:"type"`
	Nutrients model.Nutrients `json:"nutrients"`
	Items     int             `json:"items"`
}

type DayStatus struct {
	Date      string          `json:"date"`
	Nutrients model.Nutrients `json:"nutrients"`
	Meals     []MealSummary   `json:"meals"`
}

// DaySummary reports the cached nutrient totals of one date. A date with
// no stored plan reads as an empty day, all zeros.
func DaySummary(db *sql.DB, date string) (*DayStatus, error) {
	if _, err := parseDate(date); err != nil {
		return nil, err
	}
	status := &DayStatus{Date: date}

	plan, err := planByDate(db, date)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		for _, mealType := range model.MealTypes {
			status.Meals = append(status.Meals, MealSummary{Type: mealType})
		}
		return status, nil
	}

	status.Nutrients = plan.Nutrients
	for _, meal := range plan.Meals {
		status.Meals = append(status.Meals, MealSummary{
			Type:      meal.Type,
			Nutrients: meal.Nutrients,
			Items:     len(meal.Items),
		})
	}
	return status, nil
}
