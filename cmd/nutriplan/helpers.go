package nutriplan

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/davimtg/NutriPlanner-sub000/internal/app"
	"github.com/davimtg/NutriPlanner-sub000/internal/config"
	"github.com/davimtg/NutriPlanner-sub000/internal/db"
)

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

// resolveDBPath picks the database location: the --db flag wins, then the
// config file's db_path, then the per-user default.
func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	cfg, err := loadConfigFile()
	if err != nil {
		return "", err
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, nil
	}
	return app.DefaultDBPath()
}

func loadConfigFile() (config.Config, error) {
	path, err := app.DefaultConfigPath()
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(path)
}

func parseInt64Arg(name, value string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return v, nil
}
