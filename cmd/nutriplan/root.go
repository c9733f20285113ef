package nutriplan

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "nutriplan",
	Short: "nutriplan plans meals and builds shopping lists from your terminal",
	Long:  "nutriplan is a local-first diet planner: catalog ingredients and recipes with nutrient profiles, plan meals per day, and consolidate a shopping list for any date range.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
