package service_test

import (
	"math"
	"testing"

	"github.com/davimtg/NutriPlanner-sub000/internal/service"
)

func TestCreateAndResolveIngredient(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	id := mustCreateIngredient(t, sqldb, ricePer100g())

	byID, err := service.ResolveIngredient(sqldb, "1")
	if err != nil {
		t.Fatalf("resolve by id: %v", err)
	}
	if byID.ID != id || byID.Name != "Arroz" {
		t.Fatalf("unexpected ingredient: %+v", byID)
	}
	if byID.Unit != "g" {
		t.Fatalf("expected unit g, got %q", byID.Unit)
	}
	if math.Abs(byID.Nutrients.EnergyKcal-130) > 1e-9 {
		t.Fatalf("expected 130 kcal, got %.2f", byID.Nutrients.EnergyKcal)
	}

	byName, err := service.ResolveIngredient(sqldb, "arroz")
	if err != nil {
		t.Fatalf("resolve by name: %v", err)
	}
	if byName.ID != id {
		t.Fatalf("expected id %d, got %d", id, byName.ID)
	}
}

func TestCreateIngredientRejectsUnknownUnit(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	in := ricePer100g()
	in.Unit = "oz"
	if _, err := service.CreateIngredient(sqldb, in); err == nil {
		t.Fatalf("expected unsupported unit error")
	}
}

func TestCreateIngredientRejectsNegativeNutrients(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	in := ricePer100g()
	in.Nutrients.ProteinG = -1
	if _, err := service.CreateIngredient(sqldb, in); err == nil {
		t.Fatalf("expected negative protein error")
	}
}

func TestUpdateIngredientRefreshesRecipeCaches(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	mustCreateIngredient(t, sqldb, ricePer100g())
	mustCreateRecipe(t, sqldb, service.RecipeInput{Name: "Arroz simples", Servings: 2})
	if _, err := service.AddRecipeLine(sqldb, "Arroz simples", "Arroz", 200); err != nil {
		t.Fatalf("add line: %v", err)
	}

	in := ricePer100g()
	in.Nutrients.EnergyKcal = 260
	if err := service.UpdateIngredient(sqldb, "Arroz", in); err != nil {
		t.Fatalf("update ingredient: %v", err)
	}

	r, err := service.ResolveRecipe(sqldb, "Arroz simples")
	if err != nil {
		t.Fatalf("resolve recipe: %v", err)
	}
	if math.Abs(r.TotalNutrients.EnergyKcal-520) > 1e-9 {
		t.Fatalf("expected recipe total 520 kcal after update, got %.2f", r.TotalNutrients.EnergyKcal)
	}
}

func TestDeleteIngredientLeavesRecipeWithZeroContribution(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	mustCreateIngredient(t, sqldb, ricePer100g())
	mustCreateIngredient(t, sqldb, eggPerUnit())
	mustCreateRecipe(t, sqldb, service.RecipeInput{Name: "Mistura", Servings: 1})
	if _, err := service.AddRecipeLine(sqldb, "Mistura", "Arroz", 100); err != nil {
		t.Fatalf("add rice line: %v", err)
	}
	if _, err := service.AddRecipeLine(sqldb, "Mistura", "Ovo", 2); err != nil {
		t.Fatalf("add egg line: %v", err)
	}

	if err := service.DeleteIngredient(sqldb, "Ovo"); err != nil {
		t.Fatalf("delete ingredient: %v", err)
	}

	r, err := service.ResolveRecipe(sqldb, "Mistura")
	if err != nil {
		t.Fatalf("resolve recipe: %v", err)
	}
	if len(r.Lines) != 2 {
		t.Fatalf("expected dangling line to remain, got %d lines", len(r.Lines))
	}
	if math.Abs(r.TotalNutrients.EnergyKcal-130) > 1e-9 {
		t.Fatalf("expected 130 kcal from rice only, got %.2f", r.TotalNutrients.EnergyKcal)
	}
}
