package main

import (
	"github.com/reuben-baek/gamestore/config"
	"github.com/reuben-baek/gamestore/infra"
	"github.com/reuben-baek/gamestore/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	var cfgFile string
	root := &cobra.Command{
		Use:          "gamestore",
		Short:        "GameStore catalog service",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (yaml, json or toml)")

	root.AddCommand(newServeCommand(&cfgFile))
	root.AddCommand(newMigrateCommand(&cfgFile))

	if err := root.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

// bootstrap loads configuration, sets up logging and opens the database.
func bootstrap(cfgFile string) (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	if err := logging.Setup(cfg.Log); err != nil {
		return nil, nil, err
	}
	db, err := infra.OpenDatabase(cfg.DB.DSN, cfg.DB.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}
