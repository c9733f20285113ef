package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/davimtg/NutriPlanner-sub000/internal/db"
	"github.com/davimtg/NutriPlanner-sub000/internal/model"
	"github.com/davimtg/NutriPlanner-sub000/internal/service"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nutriplan.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })
	return sqldb
}

func mustCreateIngredient(t *testing.T, sqldb *sql.DB, in service.IngredientInput) int64 {
	t.Helper()
	id, err := service.CreateIngredient(sqldb, in)
	if err != nil {
		t.Fatalf("create ingredient %q: %v", in.Name, err)
	}
	return id
}

func mustCreateRecipe(t *testing.T, sqldb *sql.DB, in service.RecipeInput) int64 {
	t.Helper()
	id, err := service.CreateRecipe(sqldb, in)
	if err != nil {
		t.Fatalf("create recipe %q: %v", in.Name, err)
	}
	return id
}

func ricePer100g() service.IngredientInput {
	return service.IngredientInput{
		Name: "Arroz",
		Unit: "g",
		Nutrients: model.Nutrients{
			EnergyKcal: 130,
			ProteinG:   2.4,
			CarbsG:     28,
			FatG:       0.3,
			FiberG:     0.4,
		},
		Category: "Grãos",
	}
}

func eggPerUnit() service.IngredientInput {
	return service.IngredientInput{
		Name: "Ovo",
		Unit: "unidade",
		Nutrients: model.Nutrients{
			EnergyKcal:    70,
			ProteinG:      6,
			FatG:          5,
			CholesterolMg: 186,
		},
		Category: "Ovos",
	}
}
