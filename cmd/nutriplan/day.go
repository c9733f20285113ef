package nutriplan

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/davimtg/NutriPlanner-sub000/internal/service"
	"github.com/spf13/cobra"
)

var dayCmd = &cobra.Command{
	Use:   "day [date]",
	Short: "Show the nutrient summary for a day (default today)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := time.Now().Format("2006-01-02")
		if len(args) == 1 {
			date = args[0]
		}
		return withDB(func(sqldb *sql.DB) error {
			status, err := service.DaySummary(sqldb, date)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Summary for %s\n", status.Date)
			for _, meal := range status.Meals {
				fmt.Fprintf(out, "%s (%d items): %.1f kcal, %.1fg protein, %.1fg carbs, %.1fg fat\n",
					meal.Type, meal.Items, meal.Nutrients.EnergyKcal, meal.Nutrients.ProteinG, meal.Nutrients.CarbsG, meal.Nutrients.FatG)
			}
			fmt.Fprintf(out, "Total: %.1f kcal, %.1fg protein, %.1fg carbs, %.1fg fat, %.1fmg cholesterol, %.1fg fiber\n",
				status.Nutrients.EnergyKcal, status.Nutrients.ProteinG, status.Nutrients.CarbsG, status.Nutrients.FatG, status.Nutrients.CholesterolMg, status.Nutrients.FiberG)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(dayCmd)
}
