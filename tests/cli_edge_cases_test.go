package tests

import (
	"path/filepath"
	"testing"
)

func TestCLIRejectsUnknownUnit(t *testing.T) {
	binPath := buildNutriplanBinary(t)
	dbPath := filepath.Join(t.TempDir(), "nutriplan.db")
	initDB(t, binPath, dbPath)

	_, stderr, exit := runNutriplan(t, binPath, dbPath,
		"ingredient", "add",
		"--name", "x",
		"--unit", "parsec",
		"--energy", "1",
	)
	if exit == 0 {
		t.Fatalf("expected unknown unit to be rejected, stderr=%s", stderr)
	}
}

func TestCLIRejectsNegativeNutrients(t *testing.T) {
	binPath := buildNutriplanBinary(t)
	dbPath := filepath.Join(t.TempDir(), "nutriplan.db")
	initDB(t, binPath, dbPath)

	_, stderr, exit := runNutriplan(t, binPath, dbPath,
		"ingredient", "add",
		"--name", "x",
		"--unit", "g",
		"--energy", "-10",
	)
	if exit == 0 {
		t.Fatalf("expected negative energy to be rejected, stderr=%s", stderr)
	}
}

func TestCLIRejectsZeroServings(t *testing.T) {
	binPath := buildNutriplanBinary(t)
	dbPath := filepath.Join(t.TempDir(), "nutriplan.db")
	initDB(t, binPath, dbPath)

	_, stderr, exit := runNutriplan(t, binPath, dbPath,
		"recipe", "add",
		"--name", "x",
		"--servings", "0",
	)
	if exit == 0 {
		t.Fatalf("expected zero servings to be rejected, stderr=%s", stderr)
	}
}

func TestCLIRejectsUnknownMealType(t *testing.T) {
	binPath := buildNutriplanBinary(t)
	dbPath := filepath.Join(t.TempDir(), "nutriplan.db")
	initDB(t, binPath, dbPath)

	mustRun(t, binPath, dbPath,
		"ingredient", "add",
		"--name", "Arroz",
		"--unit", "g",
		"--energy", "130",
	)

	_, stderr, exit := runNutriplan(t, binPath, dbPath,
		"plan", "add", "2026-03-02",
		"--meal", "brunch",
		"--kind", "ingredient",
		"--ref", "Arroz",
		"--quantity", "100",
	)
	if exit == 0 {
		t.Fatalf("expected unknown meal type to be rejected, stderr=%s", stderr)
	}
}

func TestCLIRejectsInvertedShoppingRange(t *testing.T) {
	binPath := buildNutriplanBinary(t)
	dbPath := filepath.Join(t.TempDir(), "nutriplan.db")
	initDB(t, binPath, dbPath)

	_, stderr, exit := runNutriplan(t, binPath, dbPath,
		"shopping", "build", "--from", "2026-03-05", "--to", "2026-03-01",
	)
	if exit == 0 {
		t.Fatalf("expected inverted range to be rejected, stderr=%s", stderr)
	}
}
