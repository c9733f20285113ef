package nutriplan

import (
	"database/sql"
	"fmt"

	"github.com/davimtg/NutriPlanner-sub000/internal/service"
	"github.com/spf13/cobra"
)

var recipeCmd = &cobra.Command{
	Use:   "recipe",
	Short: "Manage recipes and their ingredient lines",
}

var (
	recipeName         string
	recipeInstructions string
	recipeServings     int
	recipeLineQuantity float64
)

var recipeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a recipe",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.CreateRecipe(sqldb, service.RecipeInput{
				Name:         recipeName,
				Instructions: recipeInstructions,
				Servings:     recipeServings,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created recipe %d\n", id)
			return nil
		})
	},
}

var recipeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recipes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			recipes, err := service.ListRecipes(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tSERVINGS\tKCAL/SERVING")
			for _, r := range recipes {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%d\t%.1f\n", r.ID, r.Name, r.Servings, r.PerServing.EnergyKcal)
			}
			return nil
		})
	},
}

var recipeShowCmd = &cobra.Command{
	Use:   "show <id|name>",
	Short: "Show a recipe with its lines and nutrient totals",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			r, err := service.ResolveRecipe(sqldb, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID: %d\nName: %s\nServings: %d\n", r.ID, r.Name, r.Servings)
			if r.Instructions != "" {
				fmt.Fprintf(out, "Instructions: %s\n", r.Instructions)
			}
			fmt.Fprintln(out, "Lines:")
			for _, line := range r.Lines {
				label := fmt.Sprintf("ingredient %d", line.IngredientID)
				if ing, err := service.IngredientByID(sqldb, line.IngredientID); err == nil && ing != nil {
					label = fmt.Sprintf("%s (%s)", ing.Name, ing.Unit)
				}
				fmt.Fprintf(out, "  [%d] %.2f x %s\n", line.ID, line.Quantity, label)
			}
			fmt.Fprintf(out, "Total: %.1f kcal, %.1fg protein, %.1fg carbs, %.1fg fat\n",
				r.TotalNutrients.EnergyKcal, r.TotalNutrients.ProteinG, r.TotalNutrients.CarbsG, r.TotalNutrients.FatG)
			fmt.Fprintf(out, "Per serving: %.1f kcal, %.1fg protein, %.1fg carbs, %.1fg fat\n",
				r.PerServing.EnergyKcal, r.PerServing.ProteinG, r.PerServing.CarbsG, r.PerServing.FatG)
			return nil
		})
	},
}

var recipeUpdateCmd = &cobra.Command{
	Use:   "update <id|name>",
	Short: "Update a recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			err := service.UpdateRecipe(sqldb, args[0], service.RecipeInput{
				Name:         recipeName,
				Instructions: recipeInstructions,
				Servings:     recipeServings,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated recipe %q\n", args[0])
			return nil
		})
	},
}

var recipeDeleteCmd = &cobra.Command{
	Use:   "delete <id|name>",
	Short: "Delete a recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteRecipe(sqldb, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted recipe %q\n", args[0])
			return nil
		})
	},
}

var recipeLineCmd = &cobra.Command{
	Use:   "line",
	Short: "Manage recipe ingredient lines",
}

var recipeLineAddCmd = &cobra.Command{
	Use:   "add <recipe id|name> <ingredient id|name>",
	Short: "Add an ingredient line to a recipe",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.AddRecipeLine(sqldb, args[0], args[1], recipeLineQuantity)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added line %d\n", id)
			return nil
		})
	},
}

var recipeLineListCmd = &cobra.Command{
	Use:   "list <recipe id|name>",
	Short: "List the ingredient lines of a recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			r, err := service.ResolveRecipe(sqldb, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tQUANTITY\tINGREDIENT")
			for _, line := range r.Lines {
				label := fmt.Sprintf("ingredient %d", line.IngredientID)
				if ing, err := service.IngredientByID(sqldb, line.IngredientID); err == nil && ing != nil {
					label = fmt.Sprintf("%s (%s)", ing.Name, ing.Unit)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%.2f\t%s\n", line.ID, line.Quantity, label)
			}
			return nil
		})
	},
}

var recipeLineUpdateCmd = &cobra.Command{
	Use:   "update <line id>",
	Short: "Change the quantity of a recipe line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			lineID, err := parseInt64Arg("line id", args[0])
			if err != nil {
				return err
			}
			if err := service.UpdateRecipeLine(sqldb, lineID, recipeLineQuantity); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated line %d\n", lineID)
			return nil
		})
	},
}

var recipeLineDeleteCmd = &cobra.Command{
	Use:   "delete <line id>",
	Short: "Remove a line from its recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			lineID, err := parseInt64Arg("line id", args[0])
			if err != nil {
				return err
			}
			if err := service.DeleteRecipeLine(sqldb, lineID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted line %d\n", lineID)
			return nil
		})
	},
}

var recipeRecalcCmd = &cobra.Command{
	Use:   "recalc <id|name>",
	Short: "Recompute a recipe's cached nutrient totals",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			r, err := service.ResolveRecipe(sqldb, args[0])
			if err != nil {
				return err
			}
			if err := service.RecalculateRecipeNutrients(sqldb, r.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recalculated recipe %d\n", r.ID)
			return nil
		})
	},
}

func addRecipeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&recipeName, "name", "", "Recipe name")
	cmd.Flags().StringVar(&recipeInstructions, "instructions", "", "Preparation instructions")
	cmd.Flags().IntVar(&recipeServings, "servings", 1, "Number of servings the recipe yields")
}

func init() {
	addRecipeFlags(recipeAddCmd)
	addRecipeFlags(recipeUpdateCmd)
	recipeLineAddCmd.Flags().Float64Var(&recipeLineQuantity, "quantity", 0, "Quantity in the ingredient's unit")
	recipeLineUpdateCmd.Flags().Float64Var(&recipeLineQuantity, "quantity", 0, "Quantity in the ingredient's unit")
	recipeLineCmd.AddCommand(recipeLineAddCmd, recipeLineListCmd, recipeLineUpdateCmd, recipeLineDeleteCmd)
	recipeCmd.AddCommand(recipeAddCmd, recipeListCmd, recipeShowCmd, recipeUpdateCmd, recipeDeleteCmd, recipeLineCmd, recipeRecalcCmd)
	rootCmd.AddCommand(recipeCmd)
}
