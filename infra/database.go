package infra

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/reuben-baek/gamestore/domain"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const DefaultDSN = "file:gamestore.db?_foreign_keys=on"

// OpenDatabase opens a gorm.DB for dsn. postgres:// and postgresql:// DSNs use
// the postgres driver; anything else is handed to sqlite. Foreign keys are
// switched on for sqlite since restrict and cascade rules depend on them.
func OpenDatabase(dsn string, logLevel string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: newGormLogger(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		db, err := gorm.Open(postgres.Open(dsn), config)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return db, nil
	}

	if dsn == "" {
		dsn = DefaultDSN
	}
	if strings.HasPrefix(dsn, "sqlite:///") {
		dsn = "file:" + strings.TrimPrefix(dsn, "sqlite:///")
	}
	if !strings.Contains(dsn, "_foreign_keys") {
		if strings.Contains(dsn, "?") {
			dsn += "&_foreign_keys=on"
		} else {
			dsn += "?_foreign_keys=on"
		}
	}
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if strings.Contains(dsn, ":memory:") {
		// every sqlite connection gets its own in-memory database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	logrus.Infof("OpenDatabase: sqlite [%s]", dsn)
	return db, nil
}

func newGormLogger(level string) logger.Interface {
	logLevel := logger.Warn
	switch strings.ToLower(level) {
	case "silent":
		logLevel = logger.Silent
	case "error":
		logLevel = logger.Error
	case "info":
		logLevel = logger.Info
	}
	return logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold:             100 * time.Millisecond,
		LogLevel:                  logLevel,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Genre{},
		&domain.Platform{},
		&domain.Game{},
		&domain.GameGenre{},
		&domain.GamePlatform{},
	)
}
