package tests

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestWeekOfMealsFlow(t *testing.T) {
	binPath := buildNutriplanBinary(t)
	dbPath := filepath.Join(t.TempDir(), "nutriplan.db")
	initDB(t, binPath, dbPath)

	mustRun(t, binPath, dbPath,
		"ingredient", "add",
		"--name", "Arroz",
		"--unit", "g",
		"--energy", "130",
		"--protein", "2.7",
		"--carbs", "28",
		"--fat", "0.3",
		"--category", "Grãos",
	)
	mustRun(t, binPath, dbPath,
		"ingredient", "add",
		"--name", "Ovo",
		"--unit", "unidade",
		"--energy", "70",
		"--protein", "6",
		"--fat", "5",
		"--cholesterol", "186",
		"--category", "Ovos",
	)

	mustRun(t, binPath, dbPath,
		"recipe", "add",
		"--name", "Arroz com Ovo",
		"--servings", "2",
	)
	mustRun(t, binPath, dbPath, "recipe", "line", "add", "Arroz com Ovo", "Arroz", "--quantity", "200")
	mustRun(t, binPath, dbPath, "recipe", "line", "add", "Arroz com Ovo", "Ovo", "--quantity", "2")

	// 200 g rice (260 kcal) + 2 eggs (140 kcal) over 2 servings.
	out := mustRun(t, binPath, dbPath, "recipe", "show", "Arroz com Ovo")
	if !strings.Contains(out, "Total: 400.0 kcal") {
		t.Fatalf("recipe total mismatch:\n%s", out)
	}
	if !strings.Contains(out, "Per serving: 200.0 kcal") {
		t.Fatalf("recipe per-serving mismatch:\n%s", out)
	}

	mustRun(t, binPath, dbPath,
		"plan", "add", "2026-03-02",
		"--meal", "breakfast",
		"--kind", "ingredient",
		"--ref", "Ovo",
		"--quantity", "2",
	)
	mustRun(t, binPath, dbPath,
		"plan", "add", "2026-03-02",
		"--meal", "lunch",
		"--kind", "recipe",
		"--ref", "Arroz com Ovo",
		"--quantity", "1",
	)
	mustRun(t, binPath, dbPath,
		"plan", "add", "2026-03-03",
		"--meal", "dinner",
		"--kind", "ingredient",
		"--ref", "Arroz",
		"--quantity", "150",
	)

	// 140 kcal of eggs plus one 200 kcal serving of the recipe.
	out = mustRun(t, binPath, dbPath, "day", "2026-03-02")
	if !strings.Contains(out, "Total: 340.0 kcal") {
		t.Fatalf("day total mismatch:\n%s", out)
	}

	out = mustRun(t, binPath, dbPath, "shopping", "build", "--from", "2026-03-02", "--to", "2026-03-03")
	if !strings.Contains(out, "2 items") {
		t.Fatalf("expected 2 consolidated items:\n%s", out)
	}

	// Rice: 150 g planned directly plus 200/2 g from one recipe serving.
	// Eggs: 2 planned directly plus 2/2 from the recipe.
	out = mustRun(t, binPath, dbPath, "shopping", "show", "1")
	if !strings.Contains(out, "250.00 g Arroz") {
		t.Fatalf("rice consolidation mismatch:\n%s", out)
	}
	if !strings.Contains(out, "3.00 unidade Ovo") {
		t.Fatalf("egg consolidation mismatch:\n%s", out)
	}
	if !strings.Contains(out, "Grãos:") || !strings.Contains(out, "Ovos:") {
		t.Fatalf("expected category headers:\n%s", out)
	}

	mustRun(t, binPath, dbPath, "shopping", "check", "1")
	out = mustRun(t, binPath, dbPath, "shopping", "show", "1")
	if !strings.Contains(out, "[x]") {
		t.Fatalf("expected a checked item:\n%s", out)
	}
}

func TestConversionFlow(t *testing.T) {
	binPath := buildNutriplanBinary(t)
	dbPath := filepath.Join(t.TempDir(), "nutriplan.db")
	initDB(t, binPath, dbPath)

	mustRun(t, binPath, dbPath,
		"ingredient", "add",
		"--name", "Farinha",
		"--unit", "g",
		"--energy", "364",
		"--category", "Grãos",
	)
	mustRun(t, binPath, dbPath,
		"conversion", "add",
		"--ingredient", "Farinha",
		"--unit-a", "xícara",
		"--unit-b", "g",
		"--quantity-a", "1",
		"--quantity-b", "120",
	)

	out := mustRun(t, binPath, dbPath, "convert", "2", "xícara", "g", "--ingredient", "Farinha")
	if !strings.Contains(out, "240.00 g") {
		t.Fatalf("user conversion mismatch:\n%s", out)
	}

	// Built-in factors need no ingredient context.
	out = mustRun(t, binPath, dbPath, "convert", "1.5", "kg", "g")
	if !strings.Contains(out, "1500.00 g") {
		t.Fatalf("builtin conversion mismatch:\n%s", out)
	}

	_, stderr, exit := runNutriplan(t, binPath, dbPath, "convert", "1", "xícara", "ml")
	if exit == 0 {
		t.Fatalf("expected unresolvable conversion to fail")
	}
	if !strings.Contains(stderr, "no conversion") {
		t.Fatalf("unexpected error output: %s", stderr)
	}
}
