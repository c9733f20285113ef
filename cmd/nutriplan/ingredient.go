package nutriplan

import (
	"database/sql"
	"fmt"

	"github.com/davimtg/NutriPlanner-sub000/internal/model"
	"github.com/davimtg/NutriPlanner-sub000/internal/service"
	"github.com/spf13/cobra"
)

var ingredientCmd = &cobra.Command{
	Use:   "ingredient",
	Short: "Manage the ingredient catalog",
}

var (
	ingredientName        string
	ingredientUnit        string
	ingredientEnergy      float64
	ingredientProtein     float64
	ingredientCarbs       float64
	ingredientFat         float64
	ingredientCholesterol float64
	ingredientFiber       float64
	ingredientCategory    string
	ingredientBrand       string
	ingredientPrice       float64
)

func ingredientInputFromFlags() service.IngredientInput {
	return service.IngredientInput{
		Name: ingredientName,
		Unit: ingredientUnit,
		Nutrients: model.Nutrients{
			EnergyKcal:    ingredientEnergy,
			ProteinG:      ingredientProtein,
			CarbsG:        ingredientCarbs,
			FatG:          ingredientFat,
			CholesterolMg: ingredientCholesterol,
			FiberG:        ingredientFiber,
		},
		Category: ingredientCategory,
		Brand:    ingredientBrand,
		Price:    ingredientPrice,
	}
}

var ingredientAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an ingredient",
	Long:  "Add an ingredient. Nutrients are per 100 g/ml for the g, ml, 100g and 100ml units, per single unit otherwise.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.CreateIngredient(sqldb, ingredientInputFromFlags())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created ingredient %d\n", id)
			return nil
		})
	},
}

var ingredientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List ingredients",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.ListIngredients(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tUNIT\tKCAL\tP\tC\tF\tCATEGORY")
			for _, ing := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%.1f\t%.1f\t%.1f\t%.1f\t%s\n",
					ing.ID, ing.Name, ing.Unit, ing.Nutrients.EnergyKcal, ing.Nutrients.ProteinG, ing.Nutrients.CarbsG, ing.Nutrients.FatG, ing.Category)
			}
			return nil
		})
	},
}

var ingredientShowCmd = &cobra.Command{
	Use:   "show <id|name>",
	Short: "Show ingredient details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			ing, err := service.ResolveIngredient(sqldb, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ID: %d\nName: %s\nUnit: %s\nEnergy: %.1f kcal\nProtein: %.1fg\nCarbs: %.1fg\nFat: %.1fg\nCholesterol: %.1fmg\nFiber: %.1fg\nCategory: %s\nBrand: %s\nPrice: %.2f\n",
				ing.ID, ing.Name, ing.Unit, ing.Nutrients.EnergyKcal, ing.Nutrients.ProteinG, ing.Nutrients.CarbsG, ing.Nutrients.FatG, ing.Nutrients.CholesterolMg, ing.Nutrients.FiberG, ing.Category, ing.Brand, ing.Price)
			return nil
		})
	},
}

var ingredientUpdateCmd = &cobra.Command{
	Use:   "update <id|name>",
	Short: "Update an ingredient",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.UpdateIngredient(sqldb, args[0], ingredientInputFromFlags()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated ingredient %q\n", args[0])
			return nil
		})
	},
}

var ingredientDeleteCmd = &cobra.Command{
	Use:   "delete <id|name>",
	Short: "Delete an ingredient",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteIngredient(sqldb, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted ingredient %q\n", args[0])
			return nil
		})
	},
}

func addIngredientFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ingredientName, "name", "", "Ingredient name")
	cmd.Flags().StringVar(&ingredientUnit, "unit", "", "Unit (g, kg, ml, l, unidade, xícara, colher de sopa, colher de chá, fatia, pedaço, a gosto, 100g, 100ml)")
	cmd.Flags().Float64Var(&ingredientEnergy, "energy", 0, "Energy in kcal")
	cmd.Flags().Float64Var(&ingredientProtein, "protein", 0, "Protein in g")
	cmd.Flags().Float64Var(&ingredientCarbs, "carbs", 0, "Carbohydrates in g")
	cmd.Flags().Float64Var(&ingredientFat, "fat", 0, "Fat in g")
	cmd.Flags().Float64Var(&ingredientCholesterol, "cholesterol", 0, "Cholesterol in mg")
	cmd.Flags().Float64Var(&ingredientFiber, "fiber", 0, "Dietary fiber in g")
	cmd.Flags().StringVar(&ingredientCategory, "category", "", "Shopping category")
	cmd.Flags().StringVar(&ingredientBrand, "brand", "", "Brand")
	cmd.Flags().Float64Var(&ingredientPrice, "price", 0, "Price per unit")
}

func init() {
	addIngredientFlags(ingredientAddCmd)
	addIngredientFlags(ingredientUpdateCmd)
	ingredientCmd.AddCommand(ingredientAddCmd, ingredientListCmd, ingredientShowCmd, ingredientUpdateCmd, ingredientDeleteCmd)
	rootCmd.AddCommand(ingredientCmd)
}
