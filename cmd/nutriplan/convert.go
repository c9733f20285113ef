package nutriplan

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/davimtg/NutriPlanner-sub000/internal/service"
	"github.com/spf13/cobra"
)

var conversionCmd = &cobra.Command{
	Use:   "conversion",
	Short: "Manage per-ingredient unit conversions",
}

var (
	conversionIngredient string
	conversionUnitA      string
	conversionUnitB      string
	conversionQuantityA  float64
	conversionQuantityB  float64
)

var conversionAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an equivalence between two units for an ingredient",
	Long:  "Record that quantity-a of unit-a equals quantity-b of unit-b for one ingredient, e.g. 1 xícara = 200 g.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.AddConversion(sqldb, service.ConversionInput{
				Ingredient: conversionIngredient,
				UnitA:      conversionUnitA,
				UnitB:      conversionUnitB,
				QuantityA:  conversionQuantityA,
				QuantityB:  conversionQuantityB,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created conversion %d\n", id)
			return nil
		})
	},
}

var conversionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List unit conversions, optionally for one ingredient",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			conversions, err := service.ListConversions(sqldb, conversionIngredient)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tINGREDIENT\tEQUIVALENCE")
			for _, c := range conversions {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%d\t%.2f %s = %.2f %s\n",
					c.ID, c.IngredientID, c.QuantityA, c.UnitA, c.QuantityB, c.UnitB)
			}
			return nil
		})
	},
}

var conversionDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a unit conversion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			id, err := parseInt64Arg("conversion id", args[0])
			if err != nil {
				return err
			}
			if err := service.DeleteConversion(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted conversion %d\n", id)
			return nil
		})
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert <quantity> <from unit> <to unit>",
	Short: "Convert a quantity between units",
	Long:  "Convert a quantity using built-in factors (g/kg, ml/l) and, with --ingredient, that ingredient's recorded equivalences.",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			quantity, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parse quantity %q: %w", args[0], err)
			}
			converted, ok, err := service.ConvertQuantity(sqldb, quantity, args[1], args[2], conversionIngredient)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no conversion from %q to %q", args[1], args[2])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.2f %s = %.2f %s\n", quantity, args[1], converted, args[2])
			return nil
		})
	},
}

func init() {
	conversionAddCmd.Flags().StringVar(&conversionIngredient, "ingredient", "", "Ingredient id or name")
	conversionAddCmd.Flags().StringVar(&conversionUnitA, "unit-a", "", "First unit")
	conversionAddCmd.Flags().StringVar(&conversionUnitB, "unit-b", "", "Second unit")
	conversionAddCmd.Flags().Float64Var(&conversionQuantityA, "quantity-a", 1, "Quantity in the first unit")
	conversionAddCmd.Flags().Float64Var(&conversionQuantityB, "quantity-b", 0, "Equivalent quantity in the second unit")
	conversionListCmd.Flags().StringVar(&conversionIngredient, "ingredient", "", "Filter by ingredient id or name")
	convertCmd.Flags().StringVar(&conversionIngredient, "ingredient", "", "Ingredient whose recorded equivalences may be used")
	conversionCmd.AddCommand(conversionAddCmd, conversionListCmd, conversionDeleteCmd)
	rootCmd.AddCommand(conversionCmd, convertCmd)
}
