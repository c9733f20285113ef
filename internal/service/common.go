package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/davimtg/NutriPlanner-sub000/internal/model"
)

const dateLayout = "2006-01-02"

func validateNonNegativeFloat(name string, value float64) error {
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}

func validateNutrients(n model.Nutrients) error {
	if err := validateNonNegativeFloat("energy", n.EnergyKcal); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("protein", n.ProteinG); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("carbs", n.CarbsG); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("fat", n.FatG); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("cholesterol", n.CholesterolMg); err != nil {
		return err
	}
	return validateNonNegativeFloat("fiber", n.FiberG)
}

func normalizeName(name string) string {
	return strings.TrimSpace(strings.ToLower(name))
}

func parseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", value)
	}
	return t, nil
}

func isValidMealType(mealType string) bool {
	for _, m := range model.MealTypes {
		if m == mealType {
			return true
		}
	}
	return false
}
