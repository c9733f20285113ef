package nutriplan

import (
	"database/sql"
	"fmt"

	"github.com/davimtg/NutriPlanner-sub000/internal/service"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage daily meal plans",
}

var (
	planMealType     string
	planItemKind     string
	planItemRef      string
	planItemQuantity float64
	planNameOverride string
)

var planAddCmd = &cobra.Command{
	Use:   "add <date>",
	Short: "Add an ingredient or recipe to a meal on a date (YYYY-MM-DD)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.AddPlannedItem(sqldb, args[0], service.PlannedItemInput{
				MealType:     planMealType,
				Kind:         planItemKind,
				Ref:          planItemRef,
				Quantity:     planItemQuantity,
				NameOverride: planNameOverride,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Planned item %d on %s (%s)\n", id, args[0], planMealType)
			return nil
		})
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show <date>",
	Short: "Show the plan for a date with per-meal nutrient totals",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			plan, err := service.PlanForDate(sqldb, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if plan == nil {
				fmt.Fprintf(out, "No plan for %s\n", args[0])
				return nil
			}
			fmt.Fprintf(out, "Plan for %s\n", plan.Date)
			for _, meal := range plan.Meals {
				fmt.Fprintf(out, "%s: %.1f kcal, %.1fg protein, %.1fg carbs, %.1fg fat\n",
					meal.Type, meal.Nutrients.EnergyKcal, meal.Nutrients.ProteinG, meal.Nutrients.CarbsG, meal.Nutrients.FatG)
				for _, item := range meal.Items {
					name := item.NameOverride
					if name == "" {
						name = fmt.Sprintf("%s %d", item.Kind, item.RefID)
					}
					fmt.Fprintf(out, "  [%d] %.2f x %s\n", item.ID, item.Quantity, name)
				}
			}
			fmt.Fprintf(out, "Total: %.1f kcal, %.1fg protein, %.1fg carbs, %.1fg fat, %.1fmg cholesterol, %.1fg fiber\n",
				plan.Nutrients.EnergyKcal, plan.Nutrients.ProteinG, plan.Nutrients.CarbsG, plan.Nutrients.FatG, plan.Nutrients.CholesterolMg, plan.Nutrients.FiberG)
			return nil
		})
	},
}

var planUpdateCmd = &cobra.Command{
	Use:   "update <item id>",
	Short: "Change the quantity of a planned item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			itemID, err := parseInt64Arg("item id", args[0])
			if err != nil {
				return err
			}
			if err := service.UpdatePlannedItemQuantity(sqldb, itemID, planItemQuantity); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated planned item %d\n", itemID)
			return nil
		})
	},
}

var planRemoveCmd = &cobra.Command{
	Use:   "remove <item id>",
	Short: "Remove a planned item from its meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			itemID, err := parseInt64Arg("item id", args[0])
			if err != nil {
				return err
			}
			if err := service.RemovePlannedItem(sqldb, itemID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed planned item %d\n", itemID)
			return nil
		})
	},
}

func init() {
	planAddCmd.Flags().StringVar(&planMealType, "meal", "", "Meal type (breakfast, lunch, dinner, snack)")
	planAddCmd.Flags().StringVar(&planItemKind, "kind", "ingredient", "Item kind (ingredient or recipe)")
	planAddCmd.Flags().StringVar(&planItemRef, "ref", "", "Ingredient or recipe id or name")
	planAddCmd.Flags().Float64Var(&planItemQuantity, "quantity", 0, "Quantity (ingredient unit, or servings for recipes)")
	planAddCmd.Flags().StringVar(&planNameOverride, "name", "", "Display name override")
	planUpdateCmd.Flags().Float64Var(&planItemQuantity, "quantity", 0, "New quantity")
	planCmd.AddCommand(planAddCmd, planShowCmd, planUpdateCmd, planRemoveCmd)
	rootCmd.AddCommand(planCmd)
}
