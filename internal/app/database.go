package app

import (
	"fmt"
	"time"

	"github.com/kenpath/agribpp/config"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func getDatabase(cfg config.DBConfig, debug bool) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=Asia/Kolkata",
		cfg.Host, cfg.Port, cfg.User, cfg.Passwd, cfg.Name)

	loglevel := logger.Error
	if debug {
		loglevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(loglevel),
	})
	if err != nil {
		zap.S().Panicf("database connection failed: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		zap.S().Panicf("failed to obtain sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxConn)
	sqlDB.SetMaxIdleConns(cfg.IdleConn)
	sqlDB.SetConnMaxIdleTime(30 * time.Second)

	return db
}
