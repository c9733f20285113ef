package nutriplan

import (
	"database/sql"
	"fmt"

	"github.com/davimtg/NutriPlanner-sub000/internal/nutrition"
	"github.com/davimtg/NutriPlanner-sub000/internal/service"
	"github.com/spf13/cobra"
)

var shoppingCmd = &cobra.Command{
	Use:   "shopping",
	Short: "Build and manage shopping lists from planned days",
}

var (
	shoppingFrom     string
	shoppingTo       string
	shoppingCategory string
)

var shoppingBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Consolidate planned ingredients over a date range into a shopping list",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			fallback := shoppingCategory
			if fallback == "" {
				cfg, err := loadConfigFile()
				if err != nil {
					return err
				}
				fallback = cfg.DefaultCategory
			}
			if fallback == "" {
				fallback = nutrition.DefaultCategory
			}
			id, lines, err := service.GenerateShoppingList(sqldb, shoppingFrom, shoppingTo, fallback)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created shopping list %d (%d items)\n", id, len(lines))
			return nil
		})
	},
}

var shoppingListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved shopping lists",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			lists, err := service.ListShoppingLists(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tFROM\tTO\tCREATED")
			for _, l := range lists {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\n", l.ID, l.FromDate, l.ToDate, l.CreatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		})
	},
}

var shoppingShowCmd = &cobra.Command{
	Use:   "show <list id>",
	Short: "Show a shopping list grouped by category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			listID, err := parseInt64Arg("list id", args[0])
			if err != nil {
				return err
			}
			items, err := service.ShoppingListItems(sqldb, listID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			category := ""
			for _, item := range items {
				if item.Category != category {
					category = item.Category
					fmt.Fprintf(out, "%s:\n", category)
				}
				mark := " "
				if item.Purchased {
					mark = "x"
				}
				fmt.Fprintf(out, "  [%s] %d: %.2f %s %s\n", mark, item.ID, item.Quantity, item.Unit, item.Name)
			}
			return nil
		})
	},
}

var shoppingCheckCmd = &cobra.Command{
	Use:   "check <item id>",
	Short: "Mark a shopping item purchased",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return markShoppingItem(cmd, args[0], true)
	},
}

var shoppingUncheckCmd = &cobra.Command{
	Use:   "uncheck <item id>",
	Short: "Mark a shopping item not purchased",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return markShoppingItem(cmd, args[0], false)
	},
}

func markShoppingItem(cmd *cobra.Command, arg string, purchased bool) error {
	return withDB(func(sqldb *sql.DB) error {
		itemID, err := parseInt64Arg("item id", arg)
		if err != nil {
			return err
		}
		if err := service.MarkPurchased(sqldb, itemID, purchased); err != nil {
			return err
		}
		state := "unchecked"
		if purchased {
			state = "checked"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Item %d %s\n", itemID, state)
		return nil
	})
}

func init() {
	shoppingBuildCmd.Flags().StringVar(&shoppingFrom, "from", "", "Start date (YYYY-MM-DD, inclusive)")
	shoppingBuildCmd.Flags().StringVar(&shoppingTo, "to", "", "End date (YYYY-MM-DD, inclusive)")
	shoppingBuildCmd.Flags().StringVar(&shoppingCategory, "fallback-category", "", "Category for uncategorized ingredients")
	shoppingCmd.AddCommand(shoppingBuildCmd, shoppingListCmd, shoppingShowCmd, shoppingCheckCmd, shoppingUncheckCmd)
	rootCmd.AddCommand(shoppingCmd)
}
