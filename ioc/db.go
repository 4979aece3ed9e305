package ioc

import (
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
	"github.com/to404hanga/task_tracker/config"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

func InitDB() *gorm.DB {
	var cfg config.DBConfig
	if err := viper.UnmarshalKey(cfg.Key(), &cfg); err != nil {
		log.Panicf("unmarshal db config failed: %v", err)
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		TranslateError: true,
		Logger: glogger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), glogger.Config{
			SlowThreshold:             time.Duration(cfg.SlowThreshold) * time.Millisecond,
			LogLevel:                  glogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		log.Panicf("open db failed: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Panicf("get sql.DB failed: %v", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	return db
}
