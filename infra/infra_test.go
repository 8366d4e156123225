package infra_test

import (
	"context"
	"testing"

	"github.com/reuben-baek/gamestore/infra"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	logrus.SetLevel(logrus.DebugLevel)
}

// newSeededDB returns a fresh in-memory catalog with the reference rows.
func newSeededDB(t *testing.T) (*gorm.DB, *infra.UnitOfWorkFactory) {
	t.Helper()
	db, err := infra.OpenDatabase("file::memory:", "warn")
	require.Nil(t, err)
	require.Nil(t, infra.AutoMigrate(db))

	unitOfWorks := infra.NewUnitOfWorkFactory(db)
	_, err = infra.Seed(context.Background(), unitOfWorks.New())
	require.Nil(t, err)
	return db, unitOfWorks
}
