package main

import (
	"github.com/reuben-baek/gamestore/infra"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newMigrateCommand(cfgFile *string) *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the catalog schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := bootstrap(*cfgFile)
			if err != nil {
				return err
			}
			if err := infra.AutoMigrate(db); err != nil {
				return err
			}
			logrus.Info("migrate: schema up to date")
			if !seed {
				return nil
			}
			_, err = infra.Seed(cmd.Context(), infra.NewUnitOfWorkFactory(db).New())
			return err
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "insert reference genres, platforms and games when absent")
	return cmd
}
