package nutriplan

import (
	"fmt"

	"github.com/davimtg/NutriPlanner-sub000/internal/app"
	"github.com/davimtg/NutriPlanner-sub000/internal/config"
	"github.com/davimtg/NutriPlanner-sub000/internal/nutrition"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit the config file",
}

var (
	configDBPath          string
	configDefaultCategory string
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := app.DefaultConfigPath()
		if err != nil {
			return err
		}
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		effectiveDB, err := resolveDBPath()
		if err != nil {
			return err
		}
		category := cfg.DefaultCategory
		if category == "" {
			category = nutrition.DefaultCategory
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Config file: %s\n", path)
		fmt.Fprintf(out, "Database: %s\n", effectiveDB)
		fmt.Fprintf(out, "Default category: %s\n", category)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update configuration values",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := app.DefaultConfigPath()
		if err != nil {
			return err
		}
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("db-path") {
			cfg.DBPath = configDBPath
		}
		if cmd.Flags().Changed("default-category") {
			cfg.DefaultCategory = configDefaultCategory
		}
		if err := app.EnsureDBDir(path); err != nil {
			return err
		}
		if err := config.Save(path, cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
		return nil
	},
}

func init() {
	configSetCmd.Flags().StringVar(&configDBPath, "db-path", "", "Database file location")
	configSetCmd.Flags().StringVar(&configDefaultCategory, "default-category", "", "Category for uncategorized shopping items")
	configCmd.AddCommand(configShowCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}
